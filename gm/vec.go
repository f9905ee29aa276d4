package gm

import (
	"fmt"
	"image"
	"math"
)

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

type Vec struct {
	X, Y float32
}

func VecOf(x, y float32) Vec {
	return Vec{X: x, Y: y}
}

func VecSplat(value float32) Vec {
	return Vec{X: value, Y: value}
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float32) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) MulEach(other Vec) Vec {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v Vec) DivEach(other Vec) Vec {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

func (v Vec) Dot(other Vec) float32 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec) LengthSqr() float32 {
	return v.Dot(v)
}

func (v Vec) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSqr())))
}

// Normalized returns the vector scaled to unit length. The zero vector has no
// direction, normalizing it yields NaN components. Callers must check IsZero first.
func (v Vec) Normalized() Vec {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

// Normal returns the vector rotated by 90°.
func (v Vec) Normal() Vec {
	return Vec{X: -v.Y, Y: v.X}
}

func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec) Mix(other Vec, t float32) Vec {
	return Vec{
		X: Lerp(v.X, other.X, t),
		Y: Lerp(v.Y, other.Y, t),
	}
}

func (v Vec) Distance(other Vec) float32 {
	return other.Sub(v).Length()
}

func (v Vec) NormalTo(other Vec) Vec {
	return other.Sub(v).Normal()
}

func (v Vec) ToImagePoint() image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
