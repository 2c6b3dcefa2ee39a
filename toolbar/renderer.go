package toolbar

import "github.com/tilewright/editor/textures"

// Texture is the slice of a GPU texture the toolbar needs.
type Texture interface {
	Size() (width, height int)
}

// Renderer is the texture registry capability handed to the toolbar. It is
// passed in explicitly; the toolbar never reaches for a global renderer.
type Renderer interface {
	IsTextureDefined(name string) bool
	CreateTexture(name, path, group string) (Texture, error)
	GetTexture(name string) (Texture, error)
}

// registryRenderer adapts *textures.Registry to the Renderer interface.
type registryRenderer struct {
	reg *textures.Registry
}

// NewRegistryRenderer wraps the editor's texture registry as a Renderer.
func NewRegistryRenderer(reg *textures.Registry) Renderer {
	return registryRenderer{reg: reg}
}

func (r registryRenderer) IsTextureDefined(name string) bool {
	return r.reg.IsTextureDefined(name)
}

func (r registryRenderer) CreateTexture(name, path, group string) (Texture, error) {
	tex, err := r.reg.CreateTexture(name, path, group)
	if err != nil {
		return nil, err
	}
	return tex, nil
}

func (r registryRenderer) GetTexture(name string) (Texture, error) {
	tex, err := r.reg.GetTexture(name)
	if err != nil {
		return nil, err
	}
	return tex, nil
}
