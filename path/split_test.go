package path

import (
	"slices"
	"testing"

	"github.com/oliverbestmann/wavepen/gm"
	"github.com/stretchr/testify/require"
)

func requireVecsInDelta(t *testing.T, expected, actual []gm.Vec) {
	t.Helper()

	require.Len(t, actual, len(expected))
	for idx := range expected {
		require.InDelta(t, expected[idx].X, actual[idx].X, 1e-5, "x of point %d", idx)
		require.InDelta(t, expected[idx].Y, actual[idx].Y, 1e-5, "y of point %d", idx)
	}
}

func TestSplit(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		points := slices.Collect(Split(slices.Values([]gm.Vec{{X: 1, Y: 1}}), 0.5))
		require.Equal(t, []gm.Vec{{X: 1, Y: 1}}, points)
	})

	t.Run("empty", func(t *testing.T) {
		points := slices.Collect(Split(slices.Values([]gm.Vec{}), 0.5))
		require.Empty(t, points)
	})

	t.Run("horizontal line", func(t *testing.T) {
		points := slices.Collect(Split(slices.Values([]gm.Vec{{X: 0}, {X: 2}}), 0.5))

		requireVecsInDelta(t, []gm.Vec{
			{X: 0, Y: 0},
			{X: 0.5, Y: 0},
			{X: 1, Y: 0},
			{X: 1.5, Y: 0},
			{X: 2, Y: 0},
		}, points)
	})

	t.Run("short final step", func(t *testing.T) {
		points := slices.Collect(Split(slices.Values([]gm.Vec{{X: 0}, {X: 1.25}}), 0.5))

		requireVecsInDelta(t, []gm.Vec{
			{X: 0, Y: 0},
			{X: 0.5, Y: 0},
			{X: 1, Y: 0},
			{X: 1.25, Y: 0},
		}, points)
	})

	t.Run("across corners", func(t *testing.T) {
		input := []gm.Vec{{X: 0}, {X: 1}, {X: 1, Y: 1}}
		points := slices.Collect(Split(slices.Values(input), 0.5))

		requireVecsInDelta(t, []gm.Vec{
			{X: 0, Y: 0},
			{X: 0.5, Y: 0},
			{X: 1, Y: 0},
			{X: 1, Y: 0.5},
			{X: 1, Y: 1},
		}, points)
	})

	t.Run("keeps first and last point", func(t *testing.T) {
		input := []gm.Vec{
			{X: 0.3, Y: 0.1},
			{X: 2.9, Y: 1.7},
			{X: 3.1, Y: 1.8},
			{X: 7.7, Y: -4.2},
			{X: 7.9, Y: -4.1},
		}

		for _, step := range []float32{0.1, 0.3, 0.5, 1, 2.5, 100} {
			points := slices.Collect(Split(slices.Values(input), step))
			require.GreaterOrEqual(t, len(points), 2)

			require.Equal(t, input[0], points[0])
			require.Equal(t, input[len(input)-1], points[len(points)-1])

			// all steps but the last one have the requested length
			for idx := 1; idx < len(points)-1; idx++ {
				require.LessOrEqual(t, points[idx-1].Distance(points[idx]), step+1e-4)
			}
		}
	})

	t.Run("coincident points", func(t *testing.T) {
		input := []gm.Vec{{X: 0}, {X: 0}, {X: 1}, {X: 1}, {X: 1}}
		points := slices.Collect(Split(slices.Values(input), 0.5))

		requireVecsInDelta(t, []gm.Vec{{X: 0}, {X: 0.5}, {X: 1}}, points)
	})

	t.Run("touches interpolate pressure", func(t *testing.T) {
		input := []gm.Touch{gm.TouchOf(0, 0, 0), gm.TouchOf(0, 2, 1)}
		points := slices.Collect(Split(slices.Values(input), 1))

		require.Len(t, points, 3)
		require.InDelta(t, 0.5, points[1].Pressure, 1e-6)
	})

	t.Run("streams", func(t *testing.T) {
		input := make([]gm.Vec, 100)
		for idx := range input {
			input[idx] = gm.Vec{X: float32(idx)}
		}

		var pulled int
		for point := range Split(counting(input, &pulled), 0.5) {
			if point.X >= 2 {
				break
			}
		}

		require.LessOrEqual(t, pulled, 5)
	})

	t.Run("non positive step", func(t *testing.T) {
		require.Panics(t, func() {
			Split(slices.Values([]gm.Vec{{X: 0}}), 0)
		})
	})
}
