package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/taigrr/spheretrace/pkg/math3d"
)

// Raster is anything the PPM encoder can write.
type Raster interface {
	Width() int
	Height() int
	Colors() []math3d.Color
}

const (
	ppmMagic = "P3"
	ppmMax   = 255
)

// PPMEncoder writes rasters in the plain-text PPM (P3) format: a header,
// then one line of "R G B" triples per raster row.
type PPMEncoder struct {
	w io.Writer
}

// NewPPMEncoder creates an encoder writing to w.
func NewPPMEncoder(w io.Writer) *PPMEncoder {
	return &PPMEncoder{w: w}
}

// Encode writes r to the underlying writer.
func (e *PPMEncoder) Encode(r Raster) error {
	width, height := r.Width(), r.Height()
	colors := r.Colors()
	if len(colors) != width*height {
		return fmt.Errorf("ppm: raster has %d colors, want %dx%d", len(colors), width, height)
	}

	bw := bufio.NewWriter(e.w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", ppmMagic, width, height, ppmMax); err != nil {
		return fmt.Errorf("ppm header: %w", err)
	}

	var line []byte
	for y := range height {
		line = line[:0]
		for x := range width {
			c := colors[y*width+x]
			if x > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendUint(line, uint64(ToByte(c.R)), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(ToByte(c.G)), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(ToByte(c.B)), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("ppm row %d: %w", y, err)
		}
	}
	return bw.Flush()
}

// EncodePPM writes r to w as PPM.
func EncodePPM(w io.Writer, r Raster) error {
	return NewPPMEncoder(w).Encode(r)
}
