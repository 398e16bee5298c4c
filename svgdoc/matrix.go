package svgdoc

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Matrix2D represents an SVG style affine transformation.
// A point (x, y) is mapped to (A*x + C*y + E, B*x + D*y + F).
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns a times b.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Translate returns a translated by x, y.
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale returns a scaled by x, y.
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Rotate returns a rotated by theta radians.
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	sin, cos := math.Sin(theta), math.Cos(theta)
	return a.Mult(Matrix2D{cos, sin, -sin, cos, 0, 0})
}

// SkewX returns a skewed along the x axis by theta radians.
func (a Matrix2D) SkewX(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, math.Tan(theta), 1, 0, 0})
}

// SkewY returns a skewed along the y axis by theta radians.
func (a Matrix2D) SkewY(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, math.Tan(theta), 0, 1, 0, 0})
}

// Apply transforms the point x, y.
func (a Matrix2D) Apply(x, y float64) (float64, float64) {
	return a.A*x + a.C*y + a.E, a.B*x + a.D*y + a.F
}

// trPoint transforms a fixed point coordinate.
func (a Matrix2D) trPoint(p fixed.Point26_6) fixed.Point26_6 {
	x, y := float64(p.X)/64, float64(p.Y)/64
	tx, ty := a.Apply(x, y)
	return toFixedP(tx, ty)
}
