package objectdef

import "path/filepath"

// ResolvePath resolves a source reference against the directory of the file
// that contained it. Absolute references pass through unchanged.
func ResolvePath(base, ref string) string {
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref)
	}
	p := filepath.Join(base, ref)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
