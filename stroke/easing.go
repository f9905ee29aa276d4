package stroke

import (
	"math"

	"github.com/oliverbestmann/wavepen/gm"
)

// TaperLength is the arc length over which a stroke fades in at its start
// and fades out at its end.
const TaperLength = 10

// Easing maps t in [0, 1] onto a cosine ease in/out curve. Values outside
// of the range are clamped.
func Easing(t float32) float32 {
	t = min(max(t, 0), 1)
	return (1 - gm.Rad(math.Pi*t).Cos()) / 2
}

// taper computes the fade factor of a vertex at the given offset on a stroke
// of the given total length.
func taper(offset, length float32) float32 {
	distance := min(offset, length-offset)
	return Easing(distance / TaperLength)
}
