package gm

// Curve is a parametric curve over values that can be mixed.
// ValueAt(0) is the first and ValueAt(1) is the last control point.
type Curve[T Mix[T]] interface {
	ValueAt(t float32) T
}

// Curve0 is a constant curve.
type Curve0[T Mix[T]] struct {
	P0 T
}

// Curve1 is a straight line between two points.
type Curve1[T Mix[T]] struct {
	P0, P1 T
}

// Curve2 is a quadratic bezier curve.
type Curve2[T Mix[T]] struct {
	P0, P1, P2 T
}

// Curve3 is a cubic bezier curve.
type Curve3[T Mix[T]] struct {
	P0, P1, P2, P3 T
}

func (c Curve0[T]) ValueAt(float32) T {
	return c.P0
}

func (c Curve1[T]) ValueAt(t float32) T {
	switch t {
	case 0:
		return c.P0
	case 1:
		return c.P1
	}

	return c.P0.Mix(c.P1, t)
}

func (c Curve2[T]) ValueAt(t float32) T {
	switch t {
	case 0:
		return c.P0
	case 1:
		return c.P2
	}

	v1 := c.P0.Mix(c.P1, t)
	v2 := c.P1.Mix(c.P2, t)
	return v1.Mix(v2, t)
}

func (c Curve3[T]) ValueAt(t float32) T {
	switch t {
	case 0:
		return c.P0
	case 1:
		return c.P3
	}

	v1 := c.P0.Mix(c.P1, t)
	v2 := c.P1.Mix(c.P2, t)
	v3 := c.P2.Mix(c.P3, t)

	x1 := v1.Mix(v2, t)
	x2 := v2.Mix(v3, t)
	return x1.Mix(x2, t)
}
