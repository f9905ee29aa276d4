package path

import (
	"iter"

	"github.com/oliverbestmann/wavepen/gm"
)

// WithNormal is a point annotated with a vector perpendicular to the path.
type WithNormal[T gm.Point[T]] struct {
	Point  T
	Normal gm.Vec
}

// Normalized returns a copy with a unit length normal. A zero normal stays zero.
func (w WithNormal[T]) Normalized() WithNormal[T] {
	if !w.Normal.IsZero() {
		w.Normal = w.Normal.Normalized()
	}

	return w
}

func (w WithNormal[T]) Mix(other WithNormal[T], t float32) WithNormal[T] {
	return WithNormal[T]{
		Point:  w.Point.Mix(other.Point, t),
		Normal: w.Normal.Mix(other.Normal, t),
	}
}

func (w WithNormal[T]) Distance(other WithNormal[T]) float32 {
	return w.Point.Distance(other.Point)
}

// WithNormals annotates every point with the normal of the chord through its
// neighbours. Endpoints use the single chord they are part of, a lone point
// gets the zero vector.
//
// The normals are not normalized, see WithNormal.Normalized.
func WithNormals[T interface {
	gm.Point[T]
	gm.Normal[T]
}](points iter.Seq[T]) iter.Seq[WithNormal[T]] {
	return func(yield func(WithNormal[T]) bool) {
		for n := range WithNeighbours(points) {
			var normal gm.Vec

			previous, hasPrevious := n.Previous.Get()
			next, hasNext := n.Next.Get()

			switch {
			case hasPrevious && hasNext:
				normal = previous.NormalTo(next)
			case hasNext:
				normal = n.Current.NormalTo(next)
			case hasPrevious:
				normal = previous.NormalTo(n.Current)
			}

			if !yield(WithNormal[T]{Point: n.Current, Normal: normal}) {
				return
			}
		}
	}
}
