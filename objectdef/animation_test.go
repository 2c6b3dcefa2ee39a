package objectdef

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestParseAnimationMalformedID(t *testing.T) {
	for _, id := range []string{"", "crate", "crate:walk", "crate:walk:x"} {
		_, err := parseAnimation(animationXML{ID: id}, t.TempDir())
		if !errors.Is(err, ErrMalformedDefinition) {
			t.Errorf("id %q: expected ErrMalformedDefinition, got %v", id, err)
		}
	}
}

func TestParseAnimationFrameWithoutSource(t *testing.T) {
	el := animationXML{
		ID:     "crate:walk:0",
		Frames: []frameXML{{Source: "a.png"}, {}},
	}
	_, err := parseAnimation(el, t.TempDir())
	if !errors.Is(err, ErrMalformedDefinition) {
		t.Fatalf("expected ErrMalformedDefinition, got %v", err)
	}
}

func TestParseAnimationRedirect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "anims/fly.xml", `<animation delay="120" id="bird:fly:3" x_offset="1" y_offset="2">
	<frame source="f0.png"/>
	<frame source="f1.png"/>
</animation>
`)

	anim, err := parseAnimation(animationXML{Source: "anims/fly.xml"}, dir)
	if err != nil {
		t.Fatal(err)
	}
	if anim.Direction != 3 {
		t.Errorf("expected direction 3, got %d", anim.Direction)
	}
	if anim.Delay != "120" {
		t.Errorf("expected the wrapper delay, got %q", anim.Delay)
	}
	// Frames resolve against the animation file's directory, not the
	// object file's.
	if want := filepath.Join(dir, "anims", "f0.png"); anim.Frames[0] != want {
		t.Errorf("expected %q, got %q", want, anim.Frames[0])
	}
}

func TestParseAnimationNestedRedirectInnermostDelayWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "outer.xml", `<animation delay="50" source="inner.xml"/>`)
	writeFile(t, dir, "inner.xml", `<animation delay="120" id="bird:fly:0">
	<frame source="f0.png"/>
</animation>
`)

	anim, err := parseAnimation(animationXML{Source: "outer.xml"}, dir)
	if err != nil {
		t.Fatal(err)
	}
	if anim.Delay != "120" {
		t.Errorf("expected innermost delay 120, got %q", anim.Delay)
	}
}

func TestParseAnimationRedirectWithoutDelay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fly.xml", `<animation id="bird:fly:0">
	<frame source="f0.png"/>
</animation>
`)

	_, err := parseAnimation(animationXML{Source: "fly.xml"}, dir)
	if !errors.Is(err, ErrMalformedDefinition) {
		t.Fatalf("expected ErrMalformedDefinition, got %v", err)
	}
}

func TestParseAnimationsKindFromFirstElementOnly(t *testing.T) {
	// The second element would be a frame-list animation, but the kind of
	// the whole action follows the first element.
	els := []animationXML{
		{Atlas: "walk.png", Width: "32", Height: "48",
			Directions: []directionXML{{Dir: "0", Delay: "100", Frames: "4"}}},
		{ID: "hero:walk:1", Frames: []frameXML{{Source: "w1.png"}}},
	}
	def, err := parseAnimations(els, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if def.Kind != KindSingleAtlas {
		t.Fatalf("expected the first element to decide the kind, got %v", def.Kind)
	}
	if def.Atlas == nil || def.Directions != nil {
		t.Error("expected only the atlas variant to be populated")
	}
}

func TestParseAnimationsEmptyAction(t *testing.T) {
	_, err := parseAnimations(nil, t.TempDir())
	if !errors.Is(err, ErrMalformedDefinition) {
		t.Fatalf("expected ErrMalformedDefinition, got %v", err)
	}
}

func TestParseAnimationAtlasBadFrameCount(t *testing.T) {
	el := animationXML{
		Atlas: "walk.png", Width: "32", Height: "48",
		Directions: []directionXML{{Dir: "0", Delay: "100"}},
	}
	_, err := parseAnimationAtlas(el, t.TempDir())
	if !errors.Is(err, ErrMalformedDefinition) {
		t.Fatalf("expected ErrMalformedDefinition, got %v", err)
	}
}
