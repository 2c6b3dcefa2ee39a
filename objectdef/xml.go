package objectdef

import "encoding/xml"

// Wire structs for the object file format. Coordinate attributes stay
// strings so that decoding never rejects a document the original format
// tolerated; conversion happens in the parsers that consume them.

type objectXML struct {
	ID      string      `xml:"id,attr"`
	Static  string      `xml:"static,attr"`
	Actions []actionXML `xml:"action"`
	Images  []imageXML  `xml:"image"`
}

type imageXML struct {
	Source    string `xml:"source,attr"`
	Direction string `xml:"direction,attr"`
	XPos      string `xml:"xpos,attr"`
	YPos      string `xml:"ypos,attr"`
	Width     string `xml:"width,attr"`
	Height    string `xml:"height,attr"`
}

type actionXML struct {
	ID         string         `xml:"id,attr"`
	Animations []animationXML `xml:"animation"`
}

// animationXML carries no XMLName so it also decodes the root element of an
// external animation file, whatever its tag is.
type animationXML struct {
	ID         string         `xml:"id,attr"`
	Source     string         `xml:"source,attr"`
	Delay      string         `xml:"delay,attr"`
	Atlas      string         `xml:"atlas,attr"`
	Width      string         `xml:"width,attr"`
	Height     string         `xml:"height,attr"`
	XOffset    string         `xml:"x_offset,attr"`
	YOffset    string         `xml:"y_offset,attr"`
	Frames     []frameXML     `xml:"frame"`
	Directions []directionXML `xml:"direction"`
}

type frameXML struct {
	Source string `xml:"source,attr"`
}

type directionXML struct {
	Dir    string `xml:"dir,attr"`
	Delay  string `xml:"delay,attr"`
	Frames string `xml:"frames,attr"`
}

type atlasXML struct {
	XMLName xml.Name        `xml:"atlas"`
	Name    string          `xml:"name,attr"`
	Images  []atlasImageXML `xml:"image"`
}

type atlasImageXML struct {
	Source string `xml:"source,attr"`
	XPos   string `xml:"xpos,attr"`
	YPos   string `xml:"ypos,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
}

type objectsXML struct {
	Objects []objectXML `xml:"object"`
}
