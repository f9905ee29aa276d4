package path

import "iter"

// Neighbours is an element of a sequence together with the elements right
// before and after it.
type Neighbours[T any] struct {
	Previous Optional[T]
	Current  T
	Next     Optional[T]
}

// WithNeighbours yields one Neighbours value per input element, in input order.
// Previous is only unset for the first element and Next is only unset for the
// last element. A single element input yields exactly one value with neither
// neighbour set.
//
// This is the only operator that looks ahead. It buffers at most two elements.
func WithNeighbours[T any](values iter.Seq[T]) iter.Seq[Neighbours[T]] {
	return func(yield func(Neighbours[T]) bool) {
		var previous, current Optional[T]

		for value := range values {
			if current.IsSet {
				n := Neighbours[T]{
					Previous: previous,
					Current:  current.Value,
					Next:     Some(value),
				}

				if !yield(n) {
					return
				}

				previous = current
			}

			current = Some(value)
		}

		if current.IsSet {
			yield(Neighbours[T]{
				Previous: previous,
				Current:  current.Value,
			})
		}
	}
}

// Segment is a pair of consecutive elements.
type Segment[T any] struct {
	Start, End T
}

// Segments yields every pair of consecutive elements. An input of n elements
// yields n-1 segments, inputs with less than two elements yield nothing.
func Segments[T any](values iter.Seq[T]) iter.Seq[Segment[T]] {
	return func(yield func(Segment[T]) bool) {
		var previous Optional[T]

		for value := range values {
			if start, ok := previous.Get(); ok {
				if !yield(Segment[T]{Start: start, End: value}) {
					return
				}
			}

			previous = Some(value)
		}
	}
}
