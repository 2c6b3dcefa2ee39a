package objectdef

import "errors"

// Sentinel errors for everything the parsers can reject. Callers classify
// failures with errors.Is; the wrapped message carries the filename and the
// offending element.
var (
	// ErrXMLSyntax reports markup that is not well formed.
	ErrXMLSyntax = errors.New("malformed xml")

	// ErrUnexpectedFileFormat reports a file that is neither a plain object
	// document nor an atlas+objects document with a type="atlas" marker.
	ErrUnexpectedFileFormat = errors.New("unexpected file format")

	// ErrMalformedDefinition reports a required attribute or child that is
	// missing or structurally invalid.
	ErrMalformedDefinition = errors.New("malformed definition")

	// ErrUnsupportedObjectKind reports a static attribute outside {0,1}.
	ErrUnsupportedObjectKind = errors.New("unsupported object kind")

	// ErrMissingAttribute reports an atlas image without a source attribute.
	ErrMissingAttribute = errors.New("missing attribute")
)
