package canopy

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Transform is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Transform [6]float64

// Identity is the identity transform.
var Identity = Transform{1, 0, 0, 1, 0, 0}

// TranslateMatrix returns a translation by v.
func TranslateMatrix(v Vec2) Transform {
	return Transform{1, 0, 0, 1, v.X, v.Y}
}

// ScaleMatrix returns a scale by v.X horizontally and v.Y vertically.
func ScaleMatrix(v Vec2) Transform {
	return Transform{v.X, 0, 0, v.Y, 0, 0}
}

// RotateMatrix returns a clockwise rotation (Y points down) by deg degrees.
func RotateMatrix(deg float64) Transform {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// Mul returns m * o: o is applied to a point first, then m.
func (m Transform) Mul(o Transform) Transform {
	return Transform{
		m[0]*o[0] + m[2]*o[1],
		m[1]*o[0] + m[3]*o[1],
		m[0]*o[2] + m[2]*o[3],
		m[1]*o[2] + m[3]*o[3],
		m[0]*o[4] + m[2]*o[5] + m[4],
		m[1]*o[4] + m[3]*o[5] + m[5],
	}
}

// Invert computes the inverse of the matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func (m Transform) Invert() Transform {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Transform{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply maps a point through the matrix.
func (m Transform) Apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// ApplyVector maps a direction through the matrix, ignoring translation.
func (m Transform) ApplyVector(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y, m[1]*p.X + m[3]*p.Y}
}

// Translation returns the (tx, ty) component.
func (m Transform) Translation() Vec2 {
	return Vec2{m[4], m[5]}
}

// MeanScale returns the geometric mean of the axis scale factors. Targets use
// it to scale stroke widths, which have no direction.
func (m Transform) MeanScale() float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[2]*m[1]))
}

// ApproxEqual reports whether every component of m and o differs by at most eps.
func (m Transform) ApproxEqual(o Transform, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

// GeoM converts the matrix to an ebiten.GeoM.
func (m Transform) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
