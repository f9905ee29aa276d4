package color

import "math"

var White = RGB(1, 1, 1)
var Black = RGB(0, 0, 0)
var Transparent = Color{}

// Color is an alpha pre-multiplied color value in linear color space.
// A value of 1 indicates full color.
type Color struct {
	R, G, B, A float32
}

// RGBA builds a Color from straight (not pre-multiplied) linear components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r * a, G: g * a, B: b * a, A: a}
}

func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1.0)
}

// SRGB builds a Color from gamma encoded sRGB components. The color channels
// are decoded with a gamma of 2.2, alpha is taken as is.
func SRGB(r, g, b, a float32) Color {
	return RGBA(linear(r), linear(g), linear(b), a)
}

// FromSlice builds a Color from a [r, g, b, a] slice of straight linear components.
func FromSlice(values [4]float32) Color {
	return RGBA(values[0], values[1], values[2], values[3])
}

// Opaque removes the alpha pre-multiplication and returns the fully opaque
// version of the color. A color with (nearly) zero alpha carries no color
// information and becomes opaque black.
func (c Color) Opaque() Color {
	if c.A > 0.0001 {
		k := 1 / c.A
		return RGB(c.R*k, c.G*k, c.B*k)
	}

	return Black
}

func (c Color) Add(other Color) Color {
	return Color{
		R: c.R + other.R,
		G: c.G + other.G,
		B: c.B + other.B,
		A: c.A + other.A,
	}
}

// Mul multiplies two colors component wise.
func (c Color) Mul(other Color) Color {
	return Color{
		R: c.R * other.R,
		G: c.G * other.G,
		B: c.B * other.B,
		A: c.A * other.A,
	}
}

func (c Color) Scale(scale float32) Color {
	return Color{
		R: c.R * scale,
		G: c.G * scale,
		B: c.B * scale,
		A: c.A * scale,
	}
}

func (c Color) Mix(other Color, t float32) Color {
	switch t {
	case 0:
		return c
	case 1:
		return other
	}

	return c.Scale(1 - t).Add(other.Scale(t))
}

// Values returns the pre-multiplied components.
func (c Color) Values() (r, g, b, a float32) {
	return c.R, c.G, c.B, c.A
}

// RGBA implements image/color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	const MAX = 0xffff

	r = uint32(clamp(c.R*MAX, 0, MAX))
	g = uint32(clamp(c.G*MAX, 0, MAX))
	b = uint32(clamp(c.B*MAX, 0, MAX))
	a = uint32(clamp(c.A*MAX, 0, MAX))

	return
}

func linear(v float32) float32 {
	return float32(math.Pow(float64(v), 2.2))
}

func clamp[T float32 | float64](value, min, max T) T {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
