package gm

// Mix is implemented by values that can be linearly interpolated.
//
// Mix(other, 0) must return the receiver and Mix(other, 1) must return other,
// without any floating point round trip.
type Mix[T any] interface {
	Mix(other T, t float32) T
}

// Distance is implemented by values that have a symmetric, non negative
// distance to each other.
type Distance[T any] interface {
	Distance(other T) float32
}

// Normal is implemented by values that can derive a vector perpendicular to
// the chord between two of them. The result is not normalized.
type Normal[T any] interface {
	NormalTo(other T) Vec
}

// Point is implemented by values that can be resampled along a path.
type Point[T any] interface {
	Mix[T]
	Distance[T]
}

// Lerp linearly interpolates between a and b. The boundary fractions
// 0 and 1 return a and b exactly.
func Lerp[S ~float32 | ~float64](a, b, t S) S {
	switch t {
	case 0:
		return a
	case 1:
		return b
	default:
		return a + (b-a)*t
	}
}

// Float is a scalar that takes part in path processing.
type Float float32

func (f Float) Mix(other Float, t float32) Float {
	return Lerp(f, other, Float(t))
}

func (f Float) Distance(other Float) float32 {
	d := float32(other - f)
	if d < 0 {
		return -d
	}

	return d
}
