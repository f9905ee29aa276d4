package gm

import (
	"math"
	"math/rand/v2"
)

type Rad float32

func (r Rad) Degrees() float32 {
	return float32(r) * (180 / math.Pi)
}

// Radians returns the value of the angle in radians as float32.
func (r Rad) Radians() float32 {
	return float32(r)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	angle := math.Mod(float64(r)+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return Rad(angle - math.Pi)
}

// Cos returns the cosine of the angle.
func (r Rad) Cos() float32 {
	return float32(math.Cos(float64(r)))
}

// Sin returns the sine of the angle.
func (r Rad) Sin() float32 {
	return float32(math.Sin(float64(r)))
}

func DegToRad(deg float32) Rad {
	return Rad(math.Pi / 180 * deg)
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle(rng *rand.Rand) Rad {
	return Rad(rng.Float64() * 2 * math.Pi)
}
