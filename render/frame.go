package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/wavepen/color"
	"github.com/oliverbestmann/wavepen/internal/assert"
	"github.com/oliverbestmann/wavepen/pool"
	"github.com/oliverbestmann/wavepen/stroke"
)

// Tool draws a stroke into a frame.
type Tool interface {
	Draw(frame *Frame, touches *stroke.TouchList, color color.Color, phases [3]float32, seed uint64) error
}

// Frame is a render target backed by a pooled texture.
type Frame struct {
	context *Context
	texture *pool.Entry[*Texture]
}

func (f *Frame) Context() *Context {
	return f.context
}

func (f *Frame) Texture() *Texture {
	return f.texture.Value()
}

func (f *Frame) Size() (width, height int) {
	texture := f.Texture()
	return texture.Width, texture.Height
}

// Draw lets the tool draw the touches into this frame. The color is given as
// straight alpha [r, g, b, a] values and exactly three phases are expected.
func (f *Frame) Draw(tool Tool, touches *stroke.TouchList, rgba []float32, phases []float32, seed uint64) error {
	assert.Len("color", rgba, 4)
	assert.Len("phases", phases, 3)

	return tool.Draw(f, touches, color.FromSlice([4]float32(rgba)), [3]float32(phases), seed)
}

func (f *Frame) Clear() {
	f.Texture().Image.Clear()
}

// ReplaceTexture makes the given texture the content of this frame and
// releases the previous one back to the pool.
func (f *Frame) ReplaceTexture(texture *pool.Entry[*Texture]) {
	previous := f.texture
	f.texture = texture
	previous.Release()
}

// Merge draws the content of other into this frame, keeping the larger value
// per channel where both frames overlap.
func (f *Frame) Merge(other *Frame) {
	source := other.Texture()
	target := f.Texture()

	var op ebiten.DrawImageOptions
	op.GeoM = frameGeoM(source, target.Image.Bounds())
	op.Filter = source.Filter
	op.Blend = blendMax

	target.Image.DrawImage(source.Image, &op)
}

// Release returns the texture of this frame to the pool.
func (f *Frame) Release() {
	f.texture.Release()
}
