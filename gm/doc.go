// Package gm (stands for geometry math) provides the geometry primitives used
// to build pen strokes.
//
// It includes a 2d vector type called Vec, a Touch that adds pen pressure to a
// position, a 2d matrix type Mat and an affine transform matrix named Affine.
//
// Values that take part in path processing implement small capabilities:
// Mix for linear interpolation, Distance for measuring between two values and
// Normal for deriving a perpendicular from two neighbouring values. Operators
// in the path package are generic over exactly the capability they need.
//
// There is also a type named Rad to represent angle values in radian.
package gm
