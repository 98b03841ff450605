package trace

import (
	"math"

	"github.com/taigrr/spheretrace/pkg/math3d"
)

// Material holds the Phong reflectance parameters of a surface.
type Material struct {
	Color     math3d.Color
	Ambient   float64 // 0..1, light reflected from the environment
	Diffuse   float64 // 0..1, light reflected from a matte surface
	Specular  float64 // 0..1, highlight strength
	Shininess float64 // highlight size; larger is smaller and tighter
}

// DefaultMaterial returns a white material with ambient 0.1, diffuse 0.9,
// specular 0.9 and shininess 200.
func DefaultMaterial() Material {
	return Material{
		Color:     math3d.White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// Lighting evaluates the Phong model at point for the given eye and
// normal vectors. The result is not clamped.
func (m Material) Lighting(light PointLight, point, eyev, normalv math3d.Tuple4) math3d.Color {
	effective := m.Color.Mul(light.Intensity)
	lightv := light.Position.Sub(point).Normalize()
	ambient := effective.Scale(m.Ambient)

	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		// light is on the other side of the surface
		return ambient
	}

	diffuse := effective.Scale(m.Diffuse * lightDotNormal)

	specular := math3d.Black
	reflectv := lightv.Negate().Reflect(normalv)
	if reflectDotEye := reflectv.Dot(eyev); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Scale(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
