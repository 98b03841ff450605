package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/nfnt/resize"
)

// Upscale enlarges img by an integer factor with nearest-neighbor sampling
// so individual traced pixels stay sharp. Factors below 2 return img.
func Upscale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	return resize.Resize(uint(b.Dx()*factor), uint(b.Dy()*factor), img, resize.NearestNeighbor)
}

// EncodePNG writes the canvas to w as PNG, upscaled by factor.
func EncodePNG(w io.Writer, c *Canvas, factor int) error {
	if err := png.Encode(w, Upscale(c.ToImage(), factor)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG saves the canvas as a PNG file, upscaled by factor.
func (c *Canvas) SavePNG(path string, factor int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := EncodePNG(f, c, factor); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SavePPM saves the canvas as a PPM file.
func (c *Canvas) SavePPM(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ppm: %w", err)
	}
	if err := EncodePPM(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
