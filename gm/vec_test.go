package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec_Normal(t *testing.T) {
	require.Equal(t, Vec{X: 0, Y: 1}, Vec{X: 1, Y: 0}.Normal())
	require.Equal(t, Vec{X: -2, Y: 0}, Vec{X: 0, Y: 2}.Normal())

	// the normal is perpendicular
	v := Vec{X: 3, Y: -7}
	require.Zero(t, v.Dot(v.Normal()))
}

func TestVec_Normalized(t *testing.T) {
	v := Vec{X: 3, Y: 4}.Normalized()
	require.InDelta(t, 0.6, v.X, 1e-6)
	require.InDelta(t, 0.8, v.Y, 1e-6)
	require.InDelta(t, 1, v.Length(), 1e-6)

	zero := VecZero.Normalized()
	require.True(t, math.IsNaN(float64(zero.X)))
}

func TestVec_Mix(t *testing.T) {
	a := Vec{X: 0.1, Y: 0.7}
	b := Vec{X: 0.3, Y: -1.9}

	require.Equal(t, a, a.Mix(b, 0))
	require.Equal(t, b, a.Mix(b, 1))
	require.Equal(t, Vec{X: 1, Y: 2}, Vec{}.Mix(Vec{X: 2, Y: 4}, 0.5))
}

func TestVec_Distance(t *testing.T) {
	a := Vec{X: 1, Y: 1}
	b := Vec{X: 4, Y: 5}
	require.Equal(t, float32(5), a.Distance(b))
	require.Equal(t, a.Distance(b), b.Distance(a))
}

func TestTouch(t *testing.T) {
	a := TouchOf(0, 0, 0)
	b := TouchOf(3, 4, 1)

	t.Run("distance ignores pressure", func(t *testing.T) {
		require.Equal(t, float32(5), a.Distance(b))
		require.Zero(t, a.Distance(TouchOf(0, 0, 1)))
	})

	t.Run("mix interpolates pressure", func(t *testing.T) {
		require.Equal(t, TouchOf(1.5, 2, 0.5), a.Mix(b, 0.5))
		require.Equal(t, b, a.Mix(b, 1))
	})

	t.Run("normal of the chord", func(t *testing.T) {
		require.Equal(t, Vec{X: -4, Y: 3}, a.NormalTo(b))
	})

	t.Run("arithmetic", func(t *testing.T) {
		require.Equal(t, TouchOf(6, 8, 2), b.Mul(2))
		require.Equal(t, TouchOf(6, 8, 2), b.Add(b))
	})
}

func TestFloat(t *testing.T) {
	require.Equal(t, Float(2), Float(1).Mix(3, 0.5))
	require.Equal(t, float32(2), Float(1).Distance(3))
	require.Equal(t, float32(2), Float(3).Distance(1))
}

func TestRect(t *testing.T) {
	r := RectWithPoints(Vec{X: 4, Y: 1}, Vec{X: 0, Y: 3})
	require.Equal(t, Vec{X: 4, Y: 2}, r.Size())
	require.True(t, r.Contains(Vec{X: 2, Y: 2}))

	clipped := r.Intersect(RectWithSize(VecSplat(2)))
	require.Equal(t, RectWithPoints(Vec{Y: 1}, VecSplat(2)), clipped)

	require.True(t, r.Intersect(RectOfBounds(10, 10, 20, 20)).IsEmpty())

	require.Equal(t, 1, RectWithPoints(Vec{X: 0.5}, Vec{X: 0.7, Y: 1}).ToImageRectangle().Dx())
}
