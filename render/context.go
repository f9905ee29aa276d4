package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/wavepen/color"
	"github.com/oliverbestmann/wavepen/internal/assert"
	"github.com/oliverbestmann/wavepen/pool"
	"github.com/oliverbestmann/wavepen/stroke"
)

var ErrEmptyFrame = errors.New("frame must not be empty")

// ContextConfig configures the number of idle GPU objects a Context keeps.
type ContextConfig struct {
	TextureCapacity int
	DepthCapacity   int
	ShaderCapacity  int
}

func DefaultContextConfig() ContextConfig {
	return ContextConfig{
		TextureCapacity: 8,
		DepthCapacity:   4,
		ShaderCapacity:  32,
	}
}

// Context hands out pooled GPU objects. It is not safe for concurrent use,
// which matches ebiten calling Update and Draw on the same goroutine.
type Context struct {
	device Device

	textures *pool.Pool[*Texture]
	depths   *pool.Pool[*DepthBuffer]
	shaders  *pool.Pool[*Shader]

	// scratch mesh reused between draws
	ribbon stroke.Ribbon
}

func NewContext(device Device, config ContextConfig) *Context {
	return &Context{
		device:   device,
		textures: pool.New[*Texture](config.TextureCapacity),
		depths:   pool.New[*DepthBuffer](config.DepthCapacity),
		shaders:  pool.New[*Shader](config.ShaderCapacity),
	}
}

// Texture takes a texture of the given size and format. Reused textures get
// their filter updated.
func (c *Context) Texture(width, height int, format TextureFormat, filter ebiten.Filter) (*pool.Entry[*Texture], error) {
	entry, err := c.textures.Take(textureRequest{
		device: c.device,
		width:  width,
		height: height,
		format: format,
		filter: filter,
	})

	if err != nil {
		return nil, fmt.Errorf("take texture: %w", err)
	}

	return entry, nil
}

func (c *Context) Depth(width, height int) (*pool.Entry[*DepthBuffer], error) {
	entry, err := c.depths.Take(depthRequest{
		device: c.device,
		width:  width,
		height: height,
	})

	if err != nil {
		return nil, fmt.Errorf("take depth buffer: %w", err)
	}

	return entry, nil
}

// Shader takes a shader compiled from the given source.
func (c *Context) Shader(source string) (*pool.Entry[*Shader], error) {
	entry, err := c.shaders.Take(shaderRequest{device: c.device, source: source})
	if err != nil {
		return nil, fmt.Errorf("take shader: %w", err)
	}

	return entry, nil
}

// Frame creates a new frame backed by an RGBA texture of the given size.
func (c *Context) Frame(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyFrame, width, height)
	}

	texture, err := c.Texture(width, height, FormatRGBA, ebiten.FilterLinear)
	if err != nil {
		return nil, err
	}

	return &Frame{context: c, texture: texture}, nil
}

// Clear fills the given bounds [left, top, right, bottom] of the target with
// a color given as straight alpha [r, g, b, a] values.
func (c *Context) Clear(target *ebiten.Image, bounds []int, values []float32) {
	assert.Len("bounds", bounds, 4)
	assert.Len("color", values, 4)

	rect := image.Rect(bounds[0], bounds[1], bounds[2], bounds[3]).Intersect(target.Bounds())
	if rect.Empty() {
		return
	}

	fill := color.FromSlice([4]float32(values))
	target.SubImage(rect).(*ebiten.Image).Fill(fill)
}

// DrawFrame scales the frame into the given bounds [left, top, right, bottom]
// of the target. The frame is added onto what is already in the target.
func (c *Context) DrawFrame(target *ebiten.Image, frame *Frame, bounds []int) {
	assert.Len("bounds", bounds, 4)

	rect := image.Rect(bounds[0], bounds[1], bounds[2], bounds[3])
	if rect.Empty() {
		return
	}

	texture := frame.Texture()

	var op ebiten.DrawImageOptions
	op.GeoM = frameGeoM(texture, rect)
	op.Filter = texture.Filter
	op.Blend = ebiten.BlendLighter

	if texture.Format == FormatRGB {
		// the alpha channel of the texture holds no meaningful data
		op.ColorScale.SetA(1)
	}

	target.DrawImage(texture.Image, &op)
}

// Stats returns the number of idle textures, depth buffers and shaders.
func (c *Context) Stats() ContextStats {
	return ContextStats{
		IdleTextures: c.textures.Size(),
		IdleDepths:   c.depths.Size(),
		IdleShaders:  c.shaders.Size(),
	}
}

// Close deallocates all idle GPU objects.
func (c *Context) Close() {
	c.textures.Clear()
	c.depths.Clear()
	c.shaders.Clear()
}

type ContextStats struct {
	IdleTextures int
	IdleDepths   int
	IdleShaders  int
}

func frameGeoM(texture *Texture, rect image.Rectangle) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(
		float64(rect.Dx())/float64(texture.Width),
		float64(rect.Dy())/float64(texture.Height),
	)

	g.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	return g
}
