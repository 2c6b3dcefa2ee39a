// Package textures is the editor's GPU texture registry. Textures are
// created once under a logical name and looked up by that name afterwards;
// creating an already-defined name returns the existing texture. Decoded
// image files are shared between textures that point at the same path.
package textures

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Texture is one registered GPU texture.
type Texture struct {
	name  string
	group string
	path  string
	image *ebiten.Image
}

func (t *Texture) Name() string  { return t.name }
func (t *Texture) Group() string { return t.group }
func (t *Texture) Path() string  { return t.path }

// Image returns the backing GPU image.
func (t *Texture) Image() *ebiten.Image { return t.image }

// Size returns the pixel dimensions of the texture.
func (t *Texture) Size() (width, height int) {
	b := t.image.Bounds()
	return b.Dx(), b.Dy()
}

// SubImage returns the sub-rectangle r of the texture, for atlas cells.
func (t *Texture) SubImage(r image.Rectangle) *ebiten.Image {
	return t.image.SubImage(r.Add(t.image.Bounds().Min)).(*ebiten.Image)
}

// Registry maps logical texture names to textures.
type Registry struct {
	textures map[string]*Texture
	files    map[string]*ebiten.Image // decoded image per file path
}

func NewRegistry() *Registry {
	return &Registry{
		textures: make(map[string]*Texture),
		files:    make(map[string]*ebiten.Image),
	}
}

// IsTextureDefined reports whether name is already registered.
func (r *Registry) IsTextureDefined(name string) bool {
	_, ok := r.textures[name]
	return ok
}

// CreateTexture registers the image file at path under the given logical
// name. Creating an existing name is a no-op that returns the registered
// texture.
func (r *Registry) CreateTexture(name, path, group string) (*Texture, error) {
	if t, ok := r.textures[name]; ok {
		return t, nil
	}
	img, err := r.loadImage(path)
	if err != nil {
		return nil, err
	}
	t := &Texture{name: name, group: group, path: path, image: img}
	r.textures[name] = t
	return t, nil
}

// GetTexture returns the texture registered under name.
func (r *Registry) GetTexture(name string) (*Texture, error) {
	t, ok := r.textures[name]
	if !ok {
		return nil, fmt.Errorf("texture %q is not defined", name)
	}
	return t, nil
}

func (r *Registry) loadImage(path string) (*ebiten.Image, error) {
	if img, ok := r.files[path]; ok {
		return img, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	r.files[path] = img
	return img, nil
}
