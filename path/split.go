package path

import (
	"iter"

	"github.com/oliverbestmann/wavepen/gm"
	"github.com/oliverbestmann/wavepen/internal/assert"
)

// Split resamples a polyline at fixed arc length intervals of size step.
//
// The first emitted point is always the first input point and the last emitted
// point is always the last input point, even if step does not evenly divide the
// length of the path. In that case the final step is shorter.
//
// A segment whose end does not lie beyond the current target offset is skipped
// before anything is interpolated on it, so coincident consecutive points never
// cause a division by zero. They still produce zero length chords for WithNormals,
// so callers should Deduplicate first.
//
// Split panics if step is not positive.
func Split[T gm.Point[T]](points iter.Seq[T], step float32) iter.Seq[T] {
	assert.Positive("split step", step)

	return func(yield func(T) bool) {
		// count the steps instead of summing them up to avoid accumulating rounding errors
		var steps int
		var target float32

		for n := range WithNeighbours(WithOffsets(points)) {
			current := n.Current

			for {
				if current.Offset <= target {
					if n.Next.IsSet {
						// this segment is used up, continue with the next one
						break
					}

					// the last point is always emitted exactly
					yield(current.Point)
					return
				}

				// the first point has offset zero and is never ahead of the target,
				// so a point ahead of the target always has a predecessor.
				previous := n.Previous.Value

				t := (target - previous.Offset) / (current.Offset - previous.Offset)
				if !yield(previous.Point.Mix(current.Point, t)) {
					return
				}

				steps += 1
				target = float32(steps) * step
			}
		}
	}
}
