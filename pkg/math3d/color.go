package math3d

// Color is a linear RGB intensity. Components are nominally in [0,1] but
// may exceed that range while shading; clamping is the encoder's job.
type Color struct {
	R, G, B float64
}

// RGB creates a new Color.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// Add returns the component-wise sum.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns the component-wise difference.
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Scale multiplies every component by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul returns the Hadamard (component-wise) product.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// ApproxEqual reports whether every component is within Epsilon.
func (c Color) ApproxEqual(o Color) bool {
	return ApproxEqual(c.R, o.R) && ApproxEqual(c.G, o.G) && ApproxEqual(c.B, o.B)
}
