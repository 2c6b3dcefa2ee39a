package objectdef

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ParseFile reads an object definition file and returns every object it
// defines, in document order.
//
// Two file shapes are accepted. A plain file holds a single <object>
// document. A combined file holds an <atlas> document concatenated with one
// or more bare <object> elements in the same text stream, marked by a
// processing instruction declaring type="atlas" (the marker sits either at
// the top of the file or between the two documents). The shape is detected
// by scanning the top-level constructs of the raw text up front, never by
// re-parsing after a failure.
func ParseFile(filename string) ([]ObjectDefinition, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	basePath := filepath.Dir(filename)

	scan, err := scanTopLevel(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if len(scan.elements) == 0 {
		return nil, fmt.Errorf("%s: %w: no root element", filename, ErrXMLSyntax)
	}

	if len(scan.elements) == 1 {
		def, err := parseSingleDocument(data, scan.elements[0], basePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		return []ObjectDefinition{def}, nil
	}

	defs, err := parseCombinedDocument(data, scan, basePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return defs, nil
}

func parseSingleDocument(data []byte, root docRegion, basePath string) (ObjectDefinition, error) {
	if root.name != "object" {
		return ObjectDefinition{}, fmt.Errorf("%w: root element <%s>", ErrUnexpectedFileFormat, root.name)
	}
	var obj objectXML
	if err := xml.Unmarshal(data[root.start:root.end], &obj); err != nil {
		return ObjectDefinition{}, fmt.Errorf("%w: %v", ErrXMLSyntax, err)
	}
	return parseObject(obj, basePath, nil)
}

func parseCombinedDocument(data []byte, scan scanResult, basePath string) ([]ObjectDefinition, error) {
	if !scan.markerSeen {
		return nil, fmt.Errorf("%w: multiple root elements without a format marker", ErrUnexpectedFileFormat)
	}
	if scan.markerType != "atlas" {
		return nil, fmt.Errorf("%w: declared type %q", ErrUnexpectedFileFormat, scan.markerType)
	}
	first := scan.elements[0]
	if first.name != "atlas" {
		return nil, fmt.Errorf("%w: first document root <%s>", ErrUnexpectedFileFormat, first.name)
	}

	var atlas atlasXML
	if err := xml.Unmarshal(data[first.start:first.end], &atlas); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrXMLSyntax, err)
	}
	index, err := buildAtlasIndex(atlas)
	if err != nil {
		return nil, err
	}

	// Everything after the atlas document (and the marker, when it sits
	// between the documents) is a rootless run of <object> elements; wrap it
	// in a synthetic root so it decodes as one document.
	rest := first.end
	if scan.markerEnd > rest {
		rest = scan.markerEnd
	}
	var wrapped bytes.Buffer
	wrapped.WriteString("<objects>")
	wrapped.Write(data[rest:])
	wrapped.WriteString("</objects>")

	var objects objectsXML
	if err := xml.Unmarshal(wrapped.Bytes(), &objects); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrXMLSyntax, err)
	}
	if len(objects.Objects) == 0 {
		return nil, fmt.Errorf("%w: no object definitions after the atlas document", ErrUnexpectedFileFormat)
	}

	defs := make([]ObjectDefinition, 0, len(objects.Objects))
	for _, obj := range objects.Objects {
		def, err := parseObject(obj, basePath, index)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// docRegion is the byte range of one top-level element in the raw text.
type docRegion struct {
	name  string
	start int64
	end   int64
}

type scanResult struct {
	elements   []docRegion
	markerSeen bool
	markerType string // declared type of the format marker, lowercased
	markerEnd  int64
}

// scanTopLevel tokenizes the whole file and records every top-level element
// region plus the first format-marker processing instruction. It is the
// content sniff that decides between the two accepted file shapes.
func scanTopLevel(data []byte) (scanResult, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	var res scanResult
	var prev int64
	depth := 0
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return scanResult{}, fmt.Errorf("%w: %v", ErrXMLSyntax, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				res.elements = append(res.elements, docRegion{name: t.Name.Local, start: prev})
			}
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 {
				res.elements[len(res.elements)-1].end = d.InputOffset()
			}
		case xml.ProcInst:
			if depth == 0 && !res.markerSeen {
				if typ, ok := markerType(t); ok {
					res.markerSeen = true
					res.markerType = typ
					res.markerEnd = d.InputOffset()
				}
			}
		}
		prev = d.InputOffset()
	}
	return res, nil
}

// markerType extracts the declared type from a format-marker processing
// instruction: the payload's first key=value pair, unquoted and lowercased.
// An ordinary <?xml version=...?> declaration is not a marker.
func markerType(pi xml.ProcInst) (string, bool) {
	inst := strings.TrimSpace(string(pi.Inst))
	if pi.Target == "xml" && !strings.HasPrefix(inst, "type") {
		return "", false
	}
	parts := strings.SplitN(inst, "=", 2)
	if len(parts) != 2 {
		return "", false
	}
	value := strings.TrimSpace(parts[1])
	if i := strings.IndexAny(value, " \t"); i >= 0 {
		value = value[:i]
	}
	value = strings.Trim(value, `"'`)
	if value == "" {
		return "", false
	}
	return strings.ToLower(value), true
}
