// Package render provides the raster sink and image encoders for traced
// scenes.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/taigrr/spheretrace/pkg/math3d"
)

// Canvas is a width x height grid of linear colors, black at creation.
type Canvas struct {
	width  int
	height int
	pixels []math3d.Color
}

// NewCanvas creates a black canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]math3d.Color, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// PutPixel sets the pixel at (x, y). Out-of-bounds writes are ignored.
func (c *Canvas) PutPixel(col math3d.Color, x, y int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// Pixel returns the pixel at (x, y), or black when out of bounds.
func (c *Canvas) Pixel(x, y int) math3d.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return math3d.Black
	}
	return c.pixels[y*c.width+x]
}

// Colors returns the pixels in row-major order. The slice is shared.
func (c *Canvas) Colors() []math3d.Color {
	return c.pixels
}

// ToImage converts the canvas to an RGBA image with channels clamped.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := range c.height {
		for x := range c.width {
			p := c.pixels[y*c.width+x]
			img.SetRGBA(x, y, color.RGBA{ToByte(p.R), ToByte(p.G), ToByte(p.B), 255})
		}
	}
	return img
}

// ToByte clamps v to [0,1] and scales it to [0,255], rounding half away
// from zero.
func ToByte(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(math.Round(v * 255))
}
