package trace

import "github.com/taigrr/spheretrace/pkg/math3d"

// PointLight is a light source with no size at Position.
type PointLight struct {
	Position  math3d.Tuple4
	Intensity math3d.Color
}

// NewPointLight creates a new PointLight.
func NewPointLight(position math3d.Tuple4, intensity math3d.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
