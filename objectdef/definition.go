// Package objectdef reads the XML object-description format used by the map
// editor: object files describe placeable objects as either a fixed image
// per facing direction or a set of named actions with per-direction
// animations. A file holds either a single <object> document, or an <atlas>
// document concatenated with bare <object> elements behind a type="atlas"
// processing instruction.
package objectdef

// ImageOrigin tells whether an image reference points at a standalone file
// or at a sub-rectangle of a shared atlas sheet.
type ImageOrigin int

const (
	OriginImage ImageOrigin = iota
	OriginAtlas
)

// AnimationKind tags how an action encodes its animations: one sprite atlas
// shared by all directions, or explicit frame file lists per direction.
type AnimationKind int

const (
	KindMultiFrame AnimationKind = iota
	KindSingleAtlas
)

// ImageReference identifies one image of a static object.
type ImageReference struct {
	Source    string // absolute path to the image file
	Origin    ImageOrigin
	AtlasName string // logical name of the atlas sheet, atlas origin only
	X         int    // sub-rectangle within the atlas, atlas origin only
	Y         int
	Width     int
	Height    int
}

// ObjectDefinition is one placeable object. Exactly one of DirectionImages
// and Actions is populated, selected by IsStatic.
type ObjectDefinition struct {
	ID              string
	IsStatic        bool
	DirectionImages map[int]ImageReference      // static objects
	Actions         map[string]ActionDefinition // dynamic objects
}

// ActionDefinition groups the animations of one named action. Kind is
// decided by the first animation element of the action only; if an action
// mixes kinds the rest follow the first. Exactly one of Directions and
// Atlas is populated.
type ActionDefinition struct {
	Kind       AnimationKind
	Directions map[int]FrameAnimation // KindMultiFrame
	Atlas      *AtlasAnimation        // KindSingleAtlas
}

// FrameAnimation is a per-direction animation given as an ordered list of
// frame image files. Order is playback order. The offsets are carried
// through from the source format but not consumed anywhere yet.
type FrameAnimation struct {
	Direction int
	Frames    []string // absolute paths, in playback order
	Delay     string
	XOffset   string
	YOffset   string
}

// AtlasAnimation is an animation whose frames are cells of one atlas sheet,
// laid out row-major with Width x Height cells. Frame rectangles are not
// computed here; consumers derive them from the per-direction frame counts.
type AtlasAnimation struct {
	Image      string // absolute path to the atlas sheet
	Width      int    // frame cell width within the atlas
	Height     int    // frame cell height within the atlas
	Directions map[int]AtlasDirection
}

// AtlasDirection holds the per-direction delay and frame count of an atlas
// animation.
type AtlasDirection struct {
	Delay      string
	FrameCount int
}

// AtlasEntry is one named source image bound into a shared atlas sheet.
// Coordinates are kept as the raw attribute text; they are validated when an
// object image is reconciled against the atlas.
type AtlasEntry struct {
	Source    string // the source name objects refer to
	AtlasName string // name attribute of the enclosing atlas
	XPos      string
	YPos      string
	Width     string
	Height    string
}
