package path

import "iter"

// Deduplicate drops every element that is equal to the element emitted right
// before it. The first element is always emitted.
//
// Run it before any operator that divides by the length of a chord: a pen
// resting in place reports the same sample over and over.
func Deduplicate[T comparable](values iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var previous Optional[T]

		for value := range values {
			if previous.IsSet && previous.Value == value {
				continue
			}

			if !yield(value) {
				return
			}

			previous = Some(value)
		}
	}
}

// Map applies fn to every element of the sequence.
func Map[T, R any](values iter.Seq[T], fn func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for value := range values {
			if !yield(fn(value)) {
				return
			}
		}
	}
}
