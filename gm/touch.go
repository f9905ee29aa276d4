package gm

import "fmt"

// Touch is a single pointer sample: a position and the pen pressure in [0, 1].
// Pressure is interpolated along with the position but does not count
// towards the distance between two touches.
type Touch struct {
	Point    Vec
	Pressure float32
}

func TouchOf(x, y, pressure float32) Touch {
	return Touch{
		Point:    Vec{X: x, Y: y},
		Pressure: pressure,
	}
}

func (t Touch) X() float32 {
	return t.Point.X
}

func (t Touch) Y() float32 {
	return t.Point.Y
}

func (t Touch) Add(other Touch) Touch {
	return Touch{
		Point:    t.Point.Add(other.Point),
		Pressure: t.Pressure + other.Pressure,
	}
}

func (t Touch) Mul(scalar float32) Touch {
	return Touch{
		Point:    t.Point.Mul(scalar),
		Pressure: t.Pressure * scalar,
	}
}

func (t Touch) Mix(other Touch, f float32) Touch {
	return Touch{
		Point:    t.Point.Mix(other.Point, f),
		Pressure: Lerp(t.Pressure, other.Pressure, f),
	}
}

func (t Touch) Distance(other Touch) float32 {
	return t.Point.Distance(other.Point)
}

func (t Touch) NormalTo(other Touch) Vec {
	return t.Point.NormalTo(other.Point)
}

func (t Touch) String() string {
	return fmt.Sprintf("touch(x=%v, y=%v, pressure=%v)", t.Point.X, t.Point.Y, t.Pressure)
}
