package trace

import (
	"fmt"
	"math"

	"github.com/taigrr/spheretrace/pkg/math3d"
)

// PixelSink receives traced colors. x is in [0, width), y in [0, height).
type PixelSink interface {
	PutPixel(c math3d.Color, x, y int)
}

// Camera is a pinhole camera one unit in front of a canvas of HSize x VSize
// pixels. The camera looks down -z until a view transform is set.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64 // radians

	transform  math3d.Mat4
	inverse    math3d.Mat4
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with the identity view transform.
func NewCamera(hsize, vsize int, fov float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fov,
		transform:   math3d.Identity(),
		inverse:     math3d.Identity(),
	}
	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)
	return c
}

// PixelSize returns the world-space size of one pixel on the canvas plane.
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// Transform returns the view transform.
func (c *Camera) Transform() math3d.Mat4 {
	return c.transform
}

// SetTransform sets the view transform, usually from math3d.ViewTransform.
func (c *Camera) SetTransform(m math3d.Mat4) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// RayForPixel returns the world-space ray through the center of pixel (px, py).
func (c *Camera) RayForPixel(px, py int) Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// the camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MulTuple(math3d.Point(worldX, worldY, -1))
	origin := c.inverse.MulTuple(math3d.Origin())
	return NewRay(origin, pixel.Sub(origin).Normalize())
}

// Render traces every pixel of the camera and writes it to sink, row by row.
func (c *Camera) Render(w *World, sink PixelSink) error {
	for y := range c.VSize {
		for x := range c.HSize {
			color, err := w.ColorAt(c.RayForPixel(x, y))
			if err != nil {
				return fmt.Errorf("pixel (%d, %d): %w", x, y, err)
			}
			sink.PutPixel(color, x, y)
		}
	}
	return nil
}
