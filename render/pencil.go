package render

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/wavepen/color"
	"github.com/oliverbestmann/wavepen/stroke"
)

// WavePencil draws a stroke whose intensity follows a sine wave along its
// length. The first two phases end up in the red and green channel of the frame.
type WavePencil struct {
	// Thickness is the distance of the ribbon edges from the center line.
	Thickness float32

	// Amplitude of the wave in [0, 1].
	Amplitude float32

	// Period is the wave length in pixels along the stroke.
	Period float32
}

type phaseUniforms struct {
	Phase     float32
	Amplitude float32
	Period    float32
}

var channelMasks = [...][4]float32{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
}

func (p WavePencil) Draw(frame *Frame, touches *stroke.TouchList, _ color.Color, phases [3]float32, _ uint64) error {
	ctx := frame.Context()
	width, height := frame.Size()

	target, err := ctx.Texture(width, height, FormatRGB, ebiten.FilterNearest)
	if err != nil {
		return err
	}

	target.Value().Image.Clear()

	ribbon := &ctx.ribbon
	ribbon.Append(stroke.Points(touches), p.Thickness)

	if !ribbon.IsEmpty() {
		if err := p.drawRibbon(ctx, target.Value(), ribbon, phases); err != nil {
			slog.Warn("Failed to draw stroke", slog.Any("err", err))
			target.Release()
			return err
		}
	}

	frame.ReplaceTexture(target)

	return nil
}

func (p WavePencil) drawRibbon(ctx *Context, target *Texture, ribbon *stroke.Ribbon, phases [3]float32) error {
	shader, err := ctx.Shader(phaseShaderSource)
	if err != nil {
		return err
	}

	defer shader.Release()

	depth, err := ctx.Depth(target.Width, target.Height)
	if err != nil {
		return err
	}

	defer depth.Release()

	// only the area covered by the ribbon needs to be composited
	bounds := ribbon.Bounds().ToImageRectangle().Intersect(target.Image.Bounds())
	if bounds.Empty() {
		return nil
	}

	vertices := vertexBuffers.Get()
	defer vertexBuffers.Put(vertices)

	*vertices = appendVertices(*vertices, ribbon)

	depthImage := depth.Value().Image

	for channel, mask := range channelMasks {
		depthImage.Clear()

		depthImage.DrawTrianglesShader32(*vertices, ribbon.Indices, shader.Value().Shader, &ebiten.DrawTrianglesShaderOptions{
			Uniforms: p.uniforms(phases[channel]),
			Blend:    blendMax,
		})

		var op ebiten.DrawImageOptions
		op.GeoM.Translate(float64(bounds.Min.X), float64(bounds.Min.Y))
		op.ColorScale.Scale(mask[0], mask[1], mask[2], mask[3])
		op.Blend = ebiten.BlendLighter

		target.Image.DrawImage(depthImage.SubImage(bounds).(*ebiten.Image), &op)
	}

	return nil
}

func (p WavePencil) uniforms(phase float32) map[string]any {
	return uniformsOf(phaseUniforms{
		Phase:     phase,
		Amplitude: min(max(p.Amplitude, 0), 1),

		// a non positive period would divide by zero in the shader
		Period: max(p.Period, 1),
	})
}
