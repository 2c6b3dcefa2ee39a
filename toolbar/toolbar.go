// Package toolbar builds the editor's object-placement toolbar: it walks the
// project model, parses every object definition file, registers the icon
// textures under stable logical names and exposes the per-object icon map
// the widget page renders from.
package toolbar

import (
	"fmt"
	"image"
	"log/slog"
	"sort"
	"strings"

	"github.com/tilewright/editor/objectdef"
	"github.com/tilewright/editor/project"
)

// ResourceGroup is the registry group all toolbar textures are created in.
const ResourceGroup = "FIFE"

// ObjectItem is the displayable toolbar entry for one parsed object.
type ObjectItem struct {
	ID     string
	Static bool

	Directions map[int]StaticIcon     // static objects, keyed by direction
	Actions    map[string]ActionIcons // dynamic objects, keyed by action id
}

// StaticIcon locates the image of one static direction.
type StaticIcon struct {
	TextureName string
	Atlas       bool
	Rect        image.Rectangle // atlas sub-rectangle; zero for plain images
}

// ActionIcons holds the per-direction display data of one action.
type ActionIcons struct {
	Kind         objectdef.AnimationKind
	AtlasTexture string // single-atlas kind only
	Directions   map[int]DirectionIcons
}

// DirectionIcons describes one direction of an action. For multi-frame
// actions FrameCount is the number of registered frame textures; for
// single-atlas actions Frames holds the cell rectangle within the atlas
// texture.
type DirectionIcons struct {
	Delay      string
	FrameCount int
	Frames     []image.Rectangle
}

// Toolbar populates and holds the object icon map.
type Toolbar struct {
	renderer Renderer
	project  *project.Project
	items    map[string]ObjectItem
	selected string
}

// New creates a toolbar over the given renderer and project model.
func New(renderer Renderer, proj *project.Project) *Toolbar {
	return &Toolbar{
		renderer: renderer,
		project:  proj,
		items:    make(map[string]ObjectItem),
	}
}

// Items returns the current object icon map.
func (t *Toolbar) Items() map[string]ObjectItem { return t.items }

// Selected returns the id of the object selected for placement, or "".
func (t *Toolbar) Selected() string { return t.selected }

// Select marks an object as the active placement choice and persists it.
func (t *Toolbar) Select(id string) {
	t.selected = id
	SaveSelection(id)
}

// RestoreSelection applies a previously persisted selection if the object
// still exists.
func (t *Toolbar) RestoreSelection() {
	id := LoadSelection()
	if _, ok := t.items[id]; ok {
		t.selected = id
	}
}

// UpdateItems rebuilds the icon map from the project model. A definition
// file or object that fails to load is logged and skipped; one broken object
// never aborts the refresh.
func (t *Toolbar) UpdateItems() {
	items := make(map[string]ObjectItem)
	root := t.project.SourceRoot()

	for _, ns := range t.project.Namespaces {
		for _, obj := range ns.Objects {
			filename := objectdef.ResolvePath(root, obj.Filename())
			defs, err := objectdef.ParseFile(filename)
			if err != nil {
				slog.Warn("skipping object definition file", "namespace", ns.Name, "file", filename, "error", err)
				continue
			}
			for _, def := range defs {
				item, err := t.buildItem(def)
				if err != nil {
					slog.Warn("skipping object", "namespace", ns.Name, "id", def.ID, "error", err)
					continue
				}
				items[def.ID] = item
			}
		}
	}

	t.items = items
}

func (t *Toolbar) buildItem(def objectdef.ObjectDefinition) (ObjectItem, error) {
	if def.IsStatic {
		return t.buildStaticItem(def)
	}
	return t.buildDynamicItem(def)
}

func (t *Toolbar) buildStaticItem(def objectdef.ObjectDefinition) (ObjectItem, error) {
	item := ObjectItem{
		ID:         def.ID,
		Static:     true,
		Directions: make(map[int]StaticIcon, len(def.DirectionImages)),
	}
	for _, dir := range sortedKeys(def.DirectionImages) {
		ref := def.DirectionImages[dir]
		switch ref.Origin {
		case objectdef.OriginAtlas:
			// All directions of an atlas-backed object share one sheet
			// texture named by the object id.
			if _, err := t.ensureTexture(def.ID, ref.Source); err != nil {
				return ObjectItem{}, err
			}
			item.Directions[dir] = StaticIcon{
				TextureName: def.ID,
				Atlas:       true,
				Rect:        image.Rect(ref.X, ref.Y, ref.X+ref.Width, ref.Y+ref.Height),
			}
		case objectdef.OriginImage:
			name := fmt.Sprintf("%s.%d", def.ID, dir)
			if _, err := t.ensureTexture(name, ref.Source); err != nil {
				return ObjectItem{}, err
			}
			item.Directions[dir] = StaticIcon{TextureName: name}
		}
	}
	return item, nil
}

func (t *Toolbar) buildDynamicItem(def objectdef.ObjectDefinition) (ObjectItem, error) {
	item := ObjectItem{
		ID:      def.ID,
		Actions: make(map[string]ActionIcons, len(def.Actions)),
	}
	for action, ad := range def.Actions {
		var icons ActionIcons
		var err error
		switch ad.Kind {
		case objectdef.KindSingleAtlas:
			icons, err = t.buildAtlasAction(def.ID, action, ad.Atlas)
		case objectdef.KindMultiFrame:
			icons, err = t.buildFrameAction(def.ID, action, ad.Directions)
		}
		if err != nil {
			return ObjectItem{}, err
		}
		item.Actions[action] = icons
	}
	return item, nil
}

// buildAtlasAction registers the shared sheet and computes one row-major
// frame cell per direction. The frame counter advances across directions in
// sorted order, mirroring how the sheets are laid out.
func (t *Toolbar) buildAtlasAction(id, action string, atlas *objectdef.AtlasAnimation) (ActionIcons, error) {
	name := strings.Join([]string{id, action, "atlas"}, ".")
	tex, err := t.ensureTexture(name, atlas.Image)
	if err != nil {
		return ActionIcons{}, err
	}
	if atlas.Width <= 0 || atlas.Height <= 0 {
		return ActionIcons{}, fmt.Errorf("action %q: atlas frame size %dx%d", action, atlas.Width, atlas.Height)
	}
	texWidth, _ := tex.Size()
	framesPerLine := texWidth / atlas.Width
	if framesPerLine < 1 {
		framesPerLine = 1
	}

	icons := ActionIcons{
		Kind:         objectdef.KindSingleAtlas,
		AtlasTexture: name,
		Directions:   make(map[int]DirectionIcons, len(atlas.Directions)),
	}
	frameCount := 0
	for _, dir := range sortedKeys(atlas.Directions) {
		d := atlas.Directions[dir]
		line := frameCount / framesPerLine
		col := frameCount % framesPerLine
		cell := image.Rect(
			col*atlas.Width,
			line*atlas.Height,
			(col+1)*atlas.Width,
			(line+1)*atlas.Height,
		)
		icons.Directions[dir] = DirectionIcons{
			Delay:      d.Delay,
			FrameCount: d.FrameCount,
			Frames:     []image.Rectangle{cell},
		}
		frameCount++
	}
	return icons, nil
}

// buildFrameAction registers one texture per frame file under
// {id}.{action}.{direction}.{index}.
func (t *Toolbar) buildFrameAction(id, action string, directions map[int]objectdef.FrameAnimation) (ActionIcons, error) {
	icons := ActionIcons{
		Kind:       objectdef.KindMultiFrame,
		Directions: make(map[int]DirectionIcons, len(directions)),
	}
	for _, dir := range sortedKeys(directions) {
		anim := directions[dir]
		for i, frame := range anim.Frames {
			name := strings.Join([]string{id, action, fmt.Sprint(dir), fmt.Sprint(i)}, ".")
			if _, err := t.ensureTexture(name, frame); err != nil {
				return ActionIcons{}, err
			}
		}
		icons.Directions[dir] = DirectionIcons{
			Delay:      anim.Delay,
			FrameCount: len(anim.Frames),
		}
	}
	return icons, nil
}

// ensureTexture is the idempotent-create pattern the registry expects:
// look up first, create only when the name is new.
func (t *Toolbar) ensureTexture(name, path string) (Texture, error) {
	if t.renderer.IsTextureDefined(name) {
		return t.renderer.GetTexture(name)
	}
	return t.renderer.CreateTexture(name, path, ResourceGroup)
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
