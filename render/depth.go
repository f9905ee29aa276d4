package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DepthBuffer is an offscreen image that keeps the maximum value written to
// each pixel. Overlapping parts of a stroke thereby do not add up.
type DepthBuffer struct {
	Image  *ebiten.Image
	Width  int
	Height int
}

func (d *DepthBuffer) Deallocate() {
	if d.Image != nil {
		d.Image.Deallocate()
	}
}

// blendMax keeps the larger of source and destination value per channel.
var blendMax = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOne,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationMax,
	BlendOperationAlpha:         ebiten.BlendOperationMax,
}

type depthRequest struct {
	device Device
	width  int
	height int
}

func (r depthRequest) Distance(depth *DepthBuffer) (float32, bool) {
	if depth.Width != r.width || depth.Height != r.height {
		return 0, false
	}

	return 0, true
}

func (r depthRequest) Prepare(**DepthBuffer) {
}

func (r depthRequest) Create() (*DepthBuffer, error) {
	image, err := r.device.NewImage(r.width, r.height)
	if err != nil {
		return nil, err
	}

	return &DepthBuffer{Image: image, Width: r.width, Height: r.height}, nil
}
