// Package assert panics on violated calling contracts. These are programming
// errors, not conditions a caller could recover from.
package assert

import "fmt"

// Len panics if values does not hold exactly n elements.
func Len[T any](name string, values []T, n int) {
	if len(values) != n {
		panic(fmt.Sprintf("expected %d values for %s, got %d", n, name, len(values)))
	}
}

// Positive panics if value is not strictly greater than zero. NaN is not positive.
func Positive[T ~int | ~float32 | ~float64](name string, value T) {
	if !(value > 0) {
		panic(fmt.Sprintf("expected %s to be positive, got %v", name, value))
	}
}
