package path

import (
	"fmt"
	"iter"

	"github.com/oliverbestmann/wavepen/gm"
)

// WithOffset is a point annotated with the arc length travelled from the
// first point of its sequence.
type WithOffset[T any] struct {
	Point  T
	Offset float32
}

// Distance is the difference in arc length between the two points.
func (w WithOffset[T]) Distance(other WithOffset[T]) float32 {
	d := w.Offset - other.Offset
	if d < 0 {
		return -d
	}

	return d
}

func (w WithOffset[T]) String() string {
	return fmt.Sprintf("%v@%v", w.Point, w.Offset)
}

// WithOffsets annotates every point with its cumulative arc length. The first
// point has an offset of zero, each following point adds its distance to the
// point before it.
func WithOffsets[T gm.Distance[T]](points iter.Seq[T]) iter.Seq[WithOffset[T]] {
	return func(yield func(WithOffset[T]) bool) {
		var previous Optional[T]
		var offset float32

		for point := range points {
			if p, ok := previous.Get(); ok {
				offset += p.Distance(point)
			}

			if !yield(WithOffset[T]{Point: point, Offset: offset}) {
				return
			}

			previous = Some(point)
		}
	}
}
