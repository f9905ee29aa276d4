package render

import (
	"image"
	"testing"

	"github.com/oliverbestmann/wavepen/color"
	"github.com/oliverbestmann/wavepen/gm"
	"github.com/oliverbestmann/wavepen/stroke"
	"github.com/stretchr/testify/require"
)

func TestAppendVertices(t *testing.T) {
	touches := stroke.NewTouchList(1)
	touches.Push(0, 0, 0.5)
	touches.Push(20, 0, 0.5)

	ribbon := stroke.BuildRibbon(stroke.Points(touches), 2)

	vertices := appendVertices(nil, ribbon)
	require.Len(t, vertices, len(ribbon.Vertices))

	for idx, vertex := range vertices {
		source := ribbon.Vertices[idx]

		require.Equal(t, source.Position.X, vertex.DstX)
		require.Equal(t, source.Position.Y, vertex.DstY)
		require.Equal(t, source.Side, vertex.Custom0)
		require.Equal(t, source.Offset, vertex.Custom1)
		require.Equal(t, source.Taper, vertex.Custom2)
		require.InDelta(t, 0.5, vertex.Custom3, 1e-6)
		require.Equal(t, float32(1), vertex.ColorA)
	}
}

func TestUniformsOf(t *testing.T) {
	type uniforms struct {
		Scale    float32
		Offset   gm.Vec
		Rotation gm.Rad
		Tint     color.Color
		hidden   int
	}

	result := uniformsOf(uniforms{
		Scale:    2,
		Offset:   gm.VecOf(1, 2),
		Rotation: 0.5,
		Tint:     color.White,
		hidden:   1,
	})

	require.Equal(t, map[string]any{
		"Scale":    float32(2),
		"Offset":   [2]float32{1, 2},
		"Rotation": float32(0.5),
		"Tint":     [4]float32{1, 1, 1, 1},
	}, result)

	require.Panics(t, func() { uniformsOf(12) })
}

func TestWavePencil_Uniforms(t *testing.T) {
	pencil := WavePencil{Thickness: 4, Amplitude: 3, Period: 0}

	require.Equal(t, map[string]any{
		"Phase":     float32(0.25),
		"Amplitude": float32(1),
		"Period":    float32(1),
	}, pencil.uniforms(0.25))
}

func TestPhaseShaderSource(t *testing.T) {
	require.Contains(t, phaseShaderSource, "func Fragment")

	for _, name := range []string{"Phase", "Amplitude", "Period"} {
		require.Contains(t, phaseShaderSource, "var "+name+" float")
	}
}

func TestFrameGeoM(t *testing.T) {
	texture := &Texture{Width: 100, Height: 50}
	g := frameGeoM(texture, image.Rect(10, 20, 210, 70))

	x, y := g.Apply(0, 0)
	require.Equal(t, []float64{10, 20}, []float64{x, y})

	x, y = g.Apply(100, 50)
	require.Equal(t, []float64{210, 70}, []float64{x, y})
}

func TestChannelMasks(t *testing.T) {
	// one mask per phase that is drawn, each selecting exactly one channel
	for idx, mask := range channelMasks {
		var selected int
		for _, value := range mask {
			if value != 0 {
				selected += 1
			}
		}

		require.Equal(t, 1, selected, "mask %d", idx)
	}
}
