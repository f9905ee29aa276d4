package stroke

import (
	"slices"
	"testing"

	"github.com/oliverbestmann/wavepen/gm"
	"github.com/stretchr/testify/require"
)

func TestTouchList(t *testing.T) {
	list := NewTouchList(2)
	require.Equal(t, 0, list.Len())

	_, ok := list.Last()
	require.False(t, ok)

	list.Push(1, 2, 0.5)
	list.Push(3, 4, 1)

	last, ok := list.Last()
	require.True(t, ok)
	require.Equal(t, gm.TouchOf(3, 4, 1), last)

	require.Equal(t,
		[]gm.Touch{gm.TouchOf(1, 2, 0.5), gm.TouchOf(3, 4, 1)},
		slices.Collect(list.Touches()),
	)

	list.Reset()
	require.Equal(t, 0, list.Len())
	require.Equal(t, float32(2), list.PixelSize)
}

func TestTouchList_InvalidPixelSize(t *testing.T) {
	require.Panics(t, func() { NewTouchList(0) })
}

func TestTouchList_Transformed(t *testing.T) {
	list := NewTouchList(1)
	list.Push(1, 1, 0.25)

	transform := gm.IdentityAffine().Translate(gm.VecOf(10, 0)).Scale(gm.VecSplat(2))
	scaled := list.Transformed(transform)

	require.Equal(t, float32(2), scaled.PixelSize)
	require.Equal(t, []gm.Touch{gm.TouchOf(12, 2, 0.25)}, slices.Collect(scaled.Touches()))

	// the source list is untouched
	require.Equal(t, []gm.Touch{gm.TouchOf(1, 1, 0.25)}, slices.Collect(list.Touches()))
}

func TestPoints(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		require.Empty(t, slices.Collect(Points(NewTouchList(1))))
	})

	t.Run("single touch", func(t *testing.T) {
		list := NewTouchList(1)
		list.Push(4, 5, 1)
		list.Push(4, 5, 1)

		points := slices.Collect(Points(list))
		require.Len(t, points, 1)
		require.Equal(t, gm.VecOf(4, 5), points[0].Point.Point.Point)
		require.True(t, points[0].Point.Normal.IsZero())
		require.Zero(t, points[0].Offset)
	})

	t.Run("straight line", func(t *testing.T) {
		list := NewTouchList(2)
		list.Push(0, 0, 1)
		list.Push(10, 0, 1)

		points := slices.Collect(Points(list))

		// unit steps from 0 to 10
		require.Len(t, points, 11)

		for idx, point := range points {
			require.InDelta(t, float32(idx), point.Point.Point.X(), 1e-4)
			require.InDelta(t, 0, point.Point.Point.Y(), 1e-4)
			require.InDelta(t, float32(idx), point.Offset, 1e-4)

			// the normal of a line to the right points downwards in screen space
			require.InDelta(t, 0, point.Point.Normal.X, 1e-4)
			require.InDelta(t, 1, point.Point.Normal.Y, 1e-4)
		}
	})
}
