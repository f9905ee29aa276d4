package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/wavepen/gm"
)

type TextureFormat uint8

const (
	FormatRGBA TextureFormat = iota

	// FormatRGB textures ignore their alpha channel.
	FormatRGB
)

func (f TextureFormat) String() string {
	switch f {
	case FormatRGBA:
		return "rgba"
	case FormatRGB:
		return "rgb"
	default:
		return "unknown"
	}
}

// Texture is an image together with the properties it was requested with.
type Texture struct {
	Image  *ebiten.Image
	Width  int
	Height int
	Format TextureFormat

	// Filter is used when this texture is drawn onto another image.
	Filter ebiten.Filter
}

func (t *Texture) Size() gm.Vec {
	return gm.VecOf(float32(t.Width), float32(t.Height))
}

func (t *Texture) Deallocate() {
	if t.Image != nil {
		t.Image.Deallocate()
	}
}

type textureRequest struct {
	device Device
	width  int
	height int
	format TextureFormat
	filter ebiten.Filter
}

func (r textureRequest) Distance(texture *Texture) (float32, bool) {
	if texture.Format != r.format || texture.Width != r.width || texture.Height != r.height {
		return 0, false
	}

	return 0, true
}

func (r textureRequest) Prepare(texture **Texture) {
	(*texture).Filter = r.filter
}

func (r textureRequest) Create() (*Texture, error) {
	image, err := r.device.NewImage(r.width, r.height)
	if err != nil {
		return nil, err
	}

	texture := &Texture{
		Image:  image,
		Width:  r.width,
		Height: r.height,
		Format: r.format,
		Filter: r.filter,
	}

	return texture, nil
}
