package gm

import (
	"fmt"
	"image"
	"math"
)

type Rect struct {
	Min, Max Vec
}

func RectWithPoints(a, b Vec) Rect {
	return Rect{
		Min: Vec{
			X: min(a.X, b.X),
			Y: min(a.Y, b.Y),
		},
		Max: Vec{
			X: max(a.X, b.X),
			Y: max(a.Y, b.Y),
		},
	}
}

func RectWithSize(size Vec) Rect {
	return Rect{
		Min: VecZero,
		Max: size,
	}
}

// RectOfBounds builds a rectangle from [left, top, right, bottom].
func RectOfBounds(left, top, right, bottom int) Rect {
	return RectWithPoints(
		Vec{X: float32(left), Y: float32(top)},
		Vec{X: float32(right), Y: float32(bottom)},
	)
}

func (r Rect) Size() Vec {
	return r.Max.Sub(r.Min)
}

func (r Rect) IsEmpty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Intersect returns the largest rectangle contained in both r and other.
func (r Rect) Intersect(other Rect) Rect {
	r.Min.X = max(r.Min.X, other.Min.X)
	r.Min.Y = max(r.Min.Y, other.Min.Y)
	r.Max.X = min(r.Max.X, other.Max.X)
	r.Max.Y = min(r.Max.Y, other.Max.Y)

	if r.IsEmpty() {
		return Rect{}
	}

	return r
}

func (r Rect) Contains(p Vec) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ToImageRectangle returns the smallest integer rectangle covering r.
func (r Rect) ToImageRectangle() image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.Min.X))),
		int(math.Floor(float64(r.Min.Y))),
		int(math.Ceil(float64(r.Max.X))),
		int(math.Ceil(float64(r.Max.Y))),
	)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}
