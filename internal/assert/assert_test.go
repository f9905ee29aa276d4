package assert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLen(t *testing.T) {
	require.NotPanics(t, func() { Len("color", []float32{1, 2, 3, 4}, 4) })
	require.PanicsWithValue(t, "expected 3 values for phases, got 2", func() {
		Len("phases", []float32{1, 2}, 3)
	})
}

func TestPositive(t *testing.T) {
	require.NotPanics(t, func() { Positive("step", 0.5) })
	require.Panics(t, func() { Positive("step", 0) })
	require.Panics(t, func() { Positive("step", -1) })
	require.Panics(t, func() { Positive("step", math.NaN()) })
}
