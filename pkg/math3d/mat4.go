package math3d

import (
	"fmt"
	"math"
)

// Mat4 is a 4x4 matrix stored in row-major order.
//
// Memory layout (indices):
// | 0  1  2  3  |
// | 4  5  6  7  |
// | 8  9  10 11 |
// | 12 13 14 15 |
//
// For an affine transform:
// | Xx Yx Zx Tx |   X,Y,Z = basis vectors (rotation/scale/shear)
// | Xy Yy Zy Ty |   T = translation
// | Xz Yz Zz Tz |
// | 0  0  0  1  |
//
// Mat4 is a value type; every operation returns a new matrix.
type Mat4 [16]float64

// NewMat4 creates a matrix from 16 row-major values.
func NewMat4(values ...float64) (Mat4, error) {
	var m Mat4
	if len(values) != len(m) {
		return m, fmt.Errorf("%w: 4x4 matrix needs 16 elements, got %d", ErrDimensionMismatch, len(values))
	}
	copy(m[:], values)
	return m, nil
}

// MustMat4 is NewMat4 that panics on error. Intended for literals.
func MustMat4(values ...float64) Mat4 {
	m, err := NewMat4(values...)
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Zero returns the zero matrix.
func Zero() Mat4 {
	return Mat4{}
}

// Translate creates a translation matrix.
func Translate(x, y, z float64) Mat4 {
	m := Identity()
	m[3], m[7], m[11] = x, y, z
	return m
}

// Scale creates a scaling matrix.
func Scale(x, y, z float64) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

// ScaleUniform creates a uniform scaling matrix.
func ScaleUniform(s float64) Mat4 {
	return Scale(s, s, s)
}

// RotateX creates a rotation matrix around the X axis (radians).
func RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY creates a rotation matrix around the Y axis (radians).
func RotateY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ creates a rotation matrix around the Z axis (radians).
func RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Shear creates a shearing matrix. xy moves x in proportion to y, and so on.
func Shear(xy, xz, yx, yz, zx, zy float64) Mat4 {
	m := Identity()
	m[1], m[2] = xy, xz
	m[4], m[6] = yx, yz
	m[8], m[9] = zx, zy
	return m
}

// ViewTransform orients the world relative to an eye at from looking at to.
func ViewTransform(from, to, up Tuple4) Mat4 {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := Mat4{
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	}
	return orientation.Mul(Translate(-from.X, -from.Y, -from.Z))
}

// Mul multiplies two matrices: a * b. Applied to a tuple, b acts first.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for row := range 4 {
		for col := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[row*4+k] * b[k*4+col]
			}
			m[row*4+col] = sum
		}
	}
	return m
}

// Then returns next * m, so chained calls read in the order the
// transforms are applied: Identity().Then(RotateX(a)).Then(Scale(...)).
func (m Mat4) Then(next Mat4) Mat4 {
	return next.Mul(m)
}

// MulTuple transforms a tuple using all four homogeneous components.
// Vectors (w=0) are unaffected by translation.
func (m Mat4) MulTuple(t Tuple4) Tuple4 {
	return Tuple4{
		m[0]*t.X + m[1]*t.Y + m[2]*t.Z + m[3]*t.W,
		m[4]*t.X + m[5]*t.Y + m[6]*t.Z + m[7]*t.W,
		m[8]*t.X + m[9]*t.Y + m[10]*t.Z + m[11]*t.W,
		m[12]*t.X + m[13]*t.Y + m[14]*t.Z + m[15]*t.W,
	}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Get returns the element at (row, col).
func (m Mat4) Get(row, col int) float64 {
	return m[row*4+col]
}

// Matrix returns m as a general Matrix.
func (m Mat4) Matrix() Matrix {
	return Matrix{width: 4, height: 4, data: append([]float64(nil), m[:]...)}
}

// Submatrix returns the 3x3 matrix left after removing row and col.
func (m Mat4) Submatrix(row, col int) Matrix {
	return m.Matrix().Submatrix(row, col)
}

// Minor returns the determinant of Submatrix(row, col).
func (m Mat4) Minor(row, col int) float64 {
	return m.Matrix().minor(row, col)
}

// Cofactor returns (-1)^(row+col) * Minor(row, col).
func (m Mat4) Cofactor(row, col int) float64 {
	return m.Matrix().cofactor(row, col)
}

// Determinant returns the determinant via cofactor expansion along row 0.
func (m Mat4) Determinant() float64 {
	return m.Matrix().det()
}

// IsInvertible reports whether |det| >= Precision.
func (m Mat4) IsInvertible() bool {
	return math.Abs(m.Determinant()) >= Precision
}

// Inverse returns the inverse of the matrix, or ErrNotInvertible when the
// determinant magnitude is below Precision.
func (m Mat4) Inverse() (Mat4, error) {
	mm := m.Matrix()
	det := mm.det()
	if math.Abs(det) < Precision {
		return Mat4{}, fmt.Errorf("%w: determinant %g", ErrNotInvertible, det)
	}
	var inv Mat4
	for row := range 4 {
		for col := range 4 {
			// (row, col) cofactor lands at (col, row)
			inv[col*4+row] = mm.cofactor(row, col) / det
		}
	}
	return inv, nil
}

// MustInverse is Inverse that panics on a singular matrix.
func (m Mat4) MustInverse() Mat4 {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}

// ApproxEqual reports whether every element differs by less than eps.
func (m Mat4) ApproxEqual(o Mat4, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) >= eps {
			return false
		}
	}
	return true
}
