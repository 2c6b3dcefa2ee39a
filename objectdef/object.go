package objectdef

import (
	"fmt"
	"strconv"
)

// parseObject turns one <object> element into an ObjectDefinition. The
// static attribute must be "0" (dynamic, action-driven) or "1" (fixed image
// per direction); anything else is fatal. atlas may be nil when the object
// came from a plain single-object file.
func parseObject(obj objectXML, basePath string, atlas map[string]AtlasEntry) (ObjectDefinition, error) {
	def := ObjectDefinition{ID: obj.ID}

	switch obj.Static {
	case "0":
		actions, err := parseActions(obj.Actions, basePath)
		if err != nil {
			return ObjectDefinition{}, fmt.Errorf("object %q: %w", obj.ID, err)
		}
		def.Actions = actions

	case "1":
		def.IsStatic = true
		def.DirectionImages = make(map[int]ImageReference, len(obj.Images))
		for _, img := range obj.Images {
			if img.Source == "" {
				return ObjectDefinition{}, fmt.Errorf("object %q: %w: image has no source", obj.ID, ErrMalformedDefinition)
			}
			direction, err := strconv.Atoi(img.Direction)
			if err != nil {
				return ObjectDefinition{}, fmt.Errorf("object %q: %w: image direction %q", obj.ID, ErrMalformedDefinition, img.Direction)
			}
			ref, err := resolveImage(img, basePath, atlas)
			if err != nil {
				return ObjectDefinition{}, fmt.Errorf("object %q: %w", obj.ID, err)
			}
			def.DirectionImages[direction] = ref
		}

	default:
		return ObjectDefinition{}, fmt.Errorf("%w: don't know how to handle <object> %q (static=%q)", ErrUnsupportedObjectKind, obj.ID, obj.Static)
	}

	return def, nil
}

// resolveImage builds the ImageReference for one static image. A source that
// names an atlas entry is redirected to the shared sheet and carries the
// atlas's own coordinates; everything else resolves as a standalone file.
func resolveImage(img imageXML, basePath string, atlas map[string]AtlasEntry) (ImageReference, error) {
	entry, ok := atlas[img.Source]
	if !ok {
		return ImageReference{
			Source: ResolvePath(basePath, img.Source),
			Origin: OriginImage,
		}, nil
	}

	if entry.AtlasName == "" {
		return ImageReference{}, fmt.Errorf("%w: atlas containing %q has no name", ErrMissingAttribute, img.Source)
	}
	x, err := atoiAttr("xpos", entry.XPos)
	if err != nil {
		return ImageReference{}, err
	}
	y, err := atoiAttr("ypos", entry.YPos)
	if err != nil {
		return ImageReference{}, err
	}
	w, err := atoiAttr("width", entry.Width)
	if err != nil {
		return ImageReference{}, err
	}
	h, err := atoiAttr("height", entry.Height)
	if err != nil {
		return ImageReference{}, err
	}

	return ImageReference{
		Source:    ResolvePath(basePath, entry.AtlasName),
		Origin:    OriginAtlas,
		AtlasName: entry.AtlasName,
		X:         x,
		Y:         y,
		Width:     w,
		Height:    h,
	}, nil
}

// parseActions keys each <action> element's animations by the action id.
func parseActions(actions []actionXML, basePath string) (map[string]ActionDefinition, error) {
	defs := make(map[string]ActionDefinition, len(actions))
	for _, action := range actions {
		if action.ID == "" {
			return nil, fmt.Errorf("%w: action has no id", ErrMalformedDefinition)
		}
		def, err := parseAnimations(action.Animations, basePath)
		if err != nil {
			return nil, fmt.Errorf("action %q: %w", action.ID, err)
		}
		defs[action.ID] = def
	}
	return defs, nil
}

func atoiAttr(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: atlas attribute %s=%q", ErrMalformedDefinition, name, value)
	}
	return n, nil
}
