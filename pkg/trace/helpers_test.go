package trace

import (
	"math"

	"github.com/taigrr/spheretrace/pkg/math3d"
)

const testEps = 1e-4

func tupleNear(a, b math3d.Tuple4) bool {
	return math.Abs(a.X-b.X) < testEps &&
		math.Abs(a.Y-b.Y) < testEps &&
		math.Abs(a.Z-b.Z) < testEps &&
		math.Abs(a.W-b.W) < testEps
}

func colorNear(a, b math3d.Color) bool {
	return math.Abs(a.R-b.R) < testEps &&
		math.Abs(a.G-b.G) < testEps &&
		math.Abs(a.B-b.B) < testEps
}
