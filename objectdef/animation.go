package objectdef

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// parseAnimations turns the <animation> children of one action into an
// ActionDefinition. The kind of the whole action is decided by the first
// animation element only; if an action mixes kinds the rest follow the
// first.
func parseAnimations(animations []animationXML, basePath string) (ActionDefinition, error) {
	if len(animations) == 0 {
		return ActionDefinition{}, fmt.Errorf("%w: action has no animations", ErrMalformedDefinition)
	}
	if animations[0].Atlas != "" {
		atlas, err := parseAnimationAtlas(animations[0], basePath)
		if err != nil {
			return ActionDefinition{}, err
		}
		return ActionDefinition{Kind: KindSingleAtlas, Atlas: atlas}, nil
	}

	dirs := make(map[int]FrameAnimation, len(animations))
	for _, a := range animations {
		anim, err := parseAnimation(a, basePath)
		if err != nil {
			return ActionDefinition{}, err
		}
		dirs[anim.Direction] = anim
	}
	return ActionDefinition{Kind: KindMultiFrame, Directions: dirs}, nil
}

// parseAnimation reads one frame-list animation. An element with a source
// attribute redirects to an external animation file whose root element is
// the delay-bearing wrapper around the same structure; redirects may nest,
// and the innermost delay wins.
func parseAnimation(el animationXML, basePath string) (FrameAnimation, error) {
	if el.Source != "" {
		path := ResolvePath(basePath, el.Source)
		data, err := os.ReadFile(path)
		if err != nil {
			return FrameAnimation{}, fmt.Errorf("animation file %s: %w", path, err)
		}
		var root animationXML
		if err := xml.Unmarshal(data, &root); err != nil {
			return FrameAnimation{}, fmt.Errorf("animation file %s: %w: %v", path, ErrXMLSyntax, err)
		}
		if root.Delay == "" {
			return FrameAnimation{}, fmt.Errorf("animation file %s: %w: root element has no delay", path, ErrMalformedDefinition)
		}
		anim, err := parseAnimation(root, filepath.Dir(path))
		if err != nil {
			return FrameAnimation{}, err
		}
		if anim.Delay == "" {
			anim.Delay = root.Delay
		}
		return anim, nil
	}

	if el.ID == "" {
		return FrameAnimation{}, fmt.Errorf("%w: animation has no id", ErrMalformedDefinition)
	}
	// The direction is the third segment of a colon-delimited id,
	// e.g. "crate:walk:2".
	parts := strings.Split(el.ID, ":")
	if len(parts) < 3 {
		return FrameAnimation{}, fmt.Errorf("%w: animation id %q has fewer than 3 segments", ErrMalformedDefinition, el.ID)
	}
	direction, err := strconv.Atoi(parts[2])
	if err != nil {
		return FrameAnimation{}, fmt.Errorf("%w: animation id %q: direction %q is not a number", ErrMalformedDefinition, el.ID, parts[2])
	}

	frames := make([]string, 0, len(el.Frames))
	for _, f := range el.Frames {
		if f.Source == "" {
			return FrameAnimation{}, fmt.Errorf("%w: animation %q contains a frame without a source", ErrMalformedDefinition, el.ID)
		}
		frames = append(frames, ResolvePath(basePath, f.Source))
	}

	return FrameAnimation{
		Direction: direction,
		Frames:    frames,
		Delay:     el.Delay,
		XOffset:   el.XOffset,
		YOffset:   el.YOffset,
	}, nil
}

// parseAnimationAtlas reads a single-atlas animation: one sheet shared by
// all directions, with a frame count (not frame paths) per direction.
func parseAnimationAtlas(el animationXML, basePath string) (*AtlasAnimation, error) {
	width, err := strconv.Atoi(el.Width)
	if err != nil {
		return nil, fmt.Errorf("%w: animation atlas width %q", ErrMalformedDefinition, el.Width)
	}
	height, err := strconv.Atoi(el.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: animation atlas height %q", ErrMalformedDefinition, el.Height)
	}

	anim := &AtlasAnimation{
		Image:      ResolvePath(basePath, el.Atlas),
		Width:      width,
		Height:     height,
		Directions: make(map[int]AtlasDirection, len(el.Directions)),
	}
	for _, d := range el.Directions {
		dir, err := strconv.Atoi(d.Dir)
		if err != nil {
			return nil, fmt.Errorf("%w: animation atlas direction %q", ErrMalformedDefinition, d.Dir)
		}
		count, err := strconv.Atoi(d.Frames)
		if err != nil {
			return nil, fmt.Errorf("%w: direction %d frame count %q", ErrMalformedDefinition, dir, d.Frames)
		}
		anim.Directions[dir] = AtlasDirection{Delay: d.Delay, FrameCount: count}
	}
	return anim, nil
}
