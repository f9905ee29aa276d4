package path

import (
	"iter"

	"github.com/oliverbestmann/wavepen/gm"
)

// Smooth applies one pass of a 3-tap box filter. A point with both neighbours
// is replaced by the average of itself and the midpoint of its neighbours.
// Endpoints and lone points pass through unchanged.
//
// Applying Smooth twice approximates a wider, nearly gaussian kernel while
// every single pass stays stateless.
func Smooth[T gm.Mix[T]](points iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range WithNeighbours(points) {
			point := n.Current

			previous, hasPrevious := n.Previous.Get()
			next, hasNext := n.Next.Get()

			if hasPrevious && hasNext {
				point = previous.Mix(next, 0.5).Mix(point, 0.5)
			}

			if !yield(point) {
				return
			}
		}
	}
}
