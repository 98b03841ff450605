package math3d

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDimensionMismatch is returned when matrix shapes are incompatible
	// with the requested operation, or when a matrix is built from the
	// wrong number of elements.
	ErrDimensionMismatch = errors.New("matrix dimension mismatch")

	// ErrNotInvertible is returned when inverting a matrix whose
	// determinant magnitude is below Precision.
	ErrNotInvertible = errors.New("matrix is not invertible")
)

// Matrix is a dense row-major matrix of arbitrary size.
// Mat4 covers the 4x4 transforms; Matrix exists for the smaller
// submatrices that cofactor expansion recurses through.
type Matrix struct {
	width, height int
	data          []float64
}

// NewMatrix creates a width x height matrix from row-major data.
func NewMatrix(width, height int, data []float64) (Matrix, error) {
	if width <= 0 || height <= 0 {
		return Matrix{}, fmt.Errorf("%w: empty %dx%d matrix", ErrDimensionMismatch, width, height)
	}
	if width*height != len(data) {
		return Matrix{}, fmt.Errorf("%w: %dx%d matrix needs %d elements, got %d",
			ErrDimensionMismatch, width, height, width*height, len(data))
	}
	d := make([]float64, len(data))
	copy(d, data)
	return Matrix{width: width, height: height, data: d}, nil
}

// MustMatrix is NewMatrix that panics on error. Intended for literals.
func MustMatrix(width, height int, data ...float64) Matrix {
	m, err := NewMatrix(width, height, data)
	if err != nil {
		panic(err)
	}
	return m
}

// IdentityN returns the n x n identity matrix.
func IdentityN(n int) Matrix {
	m := Matrix{width: n, height: n, data: make([]float64, n*n)}
	for i := range n {
		m.data[i*(n+1)] = 1
	}
	return m
}

// Width returns the number of columns.
func (m Matrix) Width() int { return m.width }

// Height returns the number of rows.
func (m Matrix) Height() int { return m.height }

// Get returns the element at (row, col).
func (m Matrix) Get(row, col int) float64 {
	return m.data[row*m.width+col]
}

// IsSquare reports whether width == height.
func (m Matrix) IsSquare() bool {
	return m.width == m.height
}

// Mul returns the product a * b. The width of a must match the height of b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Matrix) Mul(b Matrix) (Matrix, error) {
	if a.width != b.height {
		return Matrix{}, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d",
			ErrDimensionMismatch, a.width, a.height, b.width, b.height)
	}
	out := Matrix{width: b.width, height: a.height, data: make([]float64, b.width*a.height)}
	for row := range a.height {
		for col := range b.width {
			var sum float64
			for k := range a.width {
				sum += a.Get(row, k) * b.Get(k, col)
			}
			out.data[row*out.width+col] = sum
		}
	}
	return out, nil
}

// Transpose returns the transposed matrix.
func (m Matrix) Transpose() Matrix {
	out := Matrix{width: m.height, height: m.width, data: make([]float64, len(m.data))}
	for row := range m.height {
		for col := range m.width {
			out.data[col*out.width+row] = m.Get(row, col)
		}
	}
	return out
}

// Submatrix returns a copy with the given row and column removed.
func (m Matrix) Submatrix(row, col int) Matrix {
	out := Matrix{width: m.width - 1, height: m.height - 1}
	out.data = make([]float64, 0, out.width*out.height)
	for r := range m.height {
		if r == row {
			continue
		}
		for c := range m.width {
			if c == col {
				continue
			}
			out.data = append(out.data, m.Get(r, c))
		}
	}
	return out
}

// Determinant returns the determinant of a square matrix.
// 1x1 and 2x2 use the closed form, larger sizes expand along row 0.
func (m Matrix) Determinant() (float64, error) {
	if !m.IsSquare() {
		return 0, fmt.Errorf("%w: determinant of %dx%d matrix", ErrDimensionMismatch, m.width, m.height)
	}
	return m.det(), nil
}

// Minor returns the determinant of Submatrix(row, col).
func (m Matrix) Minor(row, col int) (float64, error) {
	if !m.IsSquare() {
		return 0, fmt.Errorf("%w: minor of %dx%d matrix", ErrDimensionMismatch, m.width, m.height)
	}
	return m.minor(row, col), nil
}

// Cofactor returns the signed minor (-1)^(row+col) * Minor(row, col).
func (m Matrix) Cofactor(row, col int) (float64, error) {
	if !m.IsSquare() {
		return 0, fmt.Errorf("%w: cofactor of %dx%d matrix", ErrDimensionMismatch, m.width, m.height)
	}
	return m.cofactor(row, col), nil
}

// IsInvertible reports whether the matrix is square with |det| >= Precision.
func (m Matrix) IsInvertible() bool {
	return m.IsSquare() && math.Abs(m.det()) >= Precision
}

// Inverse returns the inverse computed as the transposed cofactor matrix
// divided by the determinant.
func (m Matrix) Inverse() (Matrix, error) {
	if !m.IsSquare() {
		return Matrix{}, fmt.Errorf("%w: inverse of %dx%d matrix", ErrDimensionMismatch, m.width, m.height)
	}
	det := m.det()
	if math.Abs(det) < Precision {
		return Matrix{}, fmt.Errorf("%w: determinant %g", ErrNotInvertible, det)
	}
	n := m.width
	out := Matrix{width: n, height: n, data: make([]float64, n*n)}
	for row := range n {
		for col := range n {
			// transposed on store
			out.data[col*n+row] = m.cofactor(row, col) / det
		}
	}
	return out, nil
}

// ApproxEqual reports whether both matrices have the same shape and every
// element differs by less than eps.
func (m Matrix) ApproxEqual(o Matrix, eps float64) bool {
	if m.width != o.width || m.height != o.height {
		return false
	}
	for i := range m.data {
		if math.Abs(m.data[i]-o.data[i]) >= eps {
			return false
		}
	}
	return true
}

func (m Matrix) det() float64 {
	switch m.width {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	var det float64
	for col := range m.width {
		det += m.data[col] * m.cofactor(0, col)
	}
	return det
}

func (m Matrix) minor(row, col int) float64 {
	return m.Submatrix(row, col).det()
}

func (m Matrix) cofactor(row, col int) float64 {
	if (row+col)%2 == 1 {
		return -m.minor(row, col)
	}
	return m.minor(row, col)
}
