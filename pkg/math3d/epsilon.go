package math3d

import "math"

const (
	// Precision is the determinant magnitude below which a matrix is
	// treated as singular.
	Precision = 1e-12

	// Epsilon is the tolerance used by the ApproxEqual helpers.
	Epsilon = 1e-5
)

// ApproxEqual reports whether |a-b| < Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
