package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurve(t *testing.T) {
	a := Vec{X: 0.1, Y: 0.3}
	b := Vec{X: 1.7, Y: 2.9}
	c := Vec{X: 3.3, Y: -0.1}
	d := Vec{X: 5.9, Y: 1.3}

	t.Run("constant", func(t *testing.T) {
		require.Equal(t, a, Curve0[Vec]{a}.ValueAt(0.3))
	})

	t.Run("end points are exact", func(t *testing.T) {
		curves := []Curve[Vec]{
			Curve1[Vec]{a, d},
			Curve2[Vec]{a, b, d},
			Curve3[Vec]{a, b, c, d},
		}

		for _, curve := range curves {
			require.Equal(t, a, curve.ValueAt(0))
			require.Equal(t, d, curve.ValueAt(1))
		}
	})

	t.Run("quadratic midpoint", func(t *testing.T) {
		curve := Curve2[Vec]{Vec{}, Vec{X: 1, Y: 2}, Vec{X: 2}}
		require.Equal(t, Vec{X: 1, Y: 1}, curve.ValueAt(0.5))
	})

	t.Run("cubic on a line", func(t *testing.T) {
		curve := Curve3[Float]{0, 1, 2, 3}
		require.InDelta(t, 1.5, float64(curve.ValueAt(0.5)), 1e-6)
	})
}
