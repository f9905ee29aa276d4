package gm

// Affine represents an affine transformation. It consists of a Matrix that describes
// rotation and scale, as well as a Translation vector.
//
// Use IdentityAffine to build a new identity transformation.
type Affine struct {
	Matrix      Mat
	Translation Vec
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{
		Matrix: IdentityMat(),
	}
}

func (a Affine) Rotate(angle Rad) Affine {
	return a.Mul(Affine{Matrix: RotationMat(angle)})
}

func (a Affine) Scale(scale Vec) Affine {
	return a.Mul(Affine{Matrix: ScaleMat(scale)})
}

func (a Affine) Translate(translate Vec) Affine {
	return a.Mul(Affine{Matrix: IdentityMat(), Translation: translate})
}

// Transform applies the affine transform to the given point and returns
// the transformed point.
func (a Affine) Transform(point Vec) Vec {
	return a.Matrix.Transform(point).Add(a.Translation)
}

// TransformTouch moves the position of a touch, the pressure stays as is.
func (a Affine) TransformTouch(touch Touch) Touch {
	touch.Point = a.Transform(touch.Point)
	return touch
}

// Mul multiplies the affine transformation with another transformation.
// The effect of the resulting transformation is the same as transforming a
// point first by other and then by a.
func (a Affine) Mul(other Affine) Affine {
	return Affine{
		Matrix:      a.Matrix.Mul(other.Matrix),
		Translation: a.Matrix.Transform(other.Translation).Add(a.Translation),
	}
}

// TryInverse returns the inverse of the Affine transformation if possible.
func (a Affine) TryInverse() (inverse Affine, ok bool) {
	mat, ok := a.Matrix.TryInverse()
	if !ok {
		return Affine{}, false
	}

	translation := mat.Transform(a.Translation).Mul(-1)
	inverse = Affine{
		Matrix:      mat,
		Translation: translation,
	}

	return inverse, true
}
