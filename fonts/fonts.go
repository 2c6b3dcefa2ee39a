// Package fonts holds the truetype faces used by the editor UI.
package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Title FontName = "title"
	Label FontName = "label"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns the font wrapped for the ebiten text/v2 API, which is what
// ebitenui widgets consume.
func (f FontName) Face() text.Face {
	return text.NewGoXFace(getFont(f))
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults loads the built-in Go font at the editor's UI sizes.
func LoadDefaults() {
	LoadFontWithSize(Title, goregular.TTF, 18)
	LoadFontWithSize(Label, goregular.TTF, 12)
	LoadFontWithSize(Small, goregular.TTF, 10)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
