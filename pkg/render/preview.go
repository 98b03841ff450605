package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// halfBlock draws the top pixel as foreground and the bottom as background.
const halfBlock = "▀"

// Preview renders the canvas as ANSI half-block characters, two canvas
// rows per terminal line.
func Preview(c *Canvas) string {
	rows := (c.height + 1) / 2
	buf := uv.NewBuffer(c.width, rows)
	for y := range rows {
		for x := range c.width {
			top := c.Pixel(x, y*2)
			bottom := c.Pixel(x, y*2+1)
			cell := uv.Cell{
				Content: halfBlock,
				Width:   1,
				Style: uv.Style{
					Fg: color.RGBA{ToByte(top.R), ToByte(top.G), ToByte(top.B), 255},
					Bg: color.RGBA{ToByte(bottom.R), ToByte(bottom.G), ToByte(bottom.B), 255},
				},
			}
			buf.SetCell(x, y, &cell)
		}
	}
	return buf.Render()
}
