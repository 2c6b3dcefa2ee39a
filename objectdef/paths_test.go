package objectdef

import (
	"path/filepath"
	"testing"
)

func TestResolvePathRoundTrip(t *testing.T) {
	base := t.TempDir()

	resolved := ResolvePath(base, "crate.png")
	if !filepath.IsAbs(resolved) {
		t.Fatalf("expected absolute path, got %q", resolved)
	}
	if got := filepath.Dir(resolved); got != base {
		t.Errorf("expected to recover base directory %q, got %q", base, got)
	}
}

func TestResolvePathNested(t *testing.T) {
	base := t.TempDir()

	resolved := ResolvePath(base, filepath.Join("images", "crate.png"))
	if got := filepath.Dir(filepath.Dir(resolved)); got != base {
		t.Errorf("expected to recover base directory %q, got %q", base, got)
	}
}

func TestResolvePathAbsolutePassThrough(t *testing.T) {
	base := t.TempDir()
	abs := filepath.Join(t.TempDir(), "crate.png")

	if got := ResolvePath(base, abs); got != abs {
		t.Errorf("expected absolute reference to pass through, got %q", got)
	}
}
