package main

import (
	"math"

	"github.com/spf13/cobra"
	"github.com/taigrr/spheretrace/pkg/config"
	"github.com/taigrr/spheretrace/pkg/math3d"
	"github.com/taigrr/spheretrace/pkg/render"
)

const (
	clockSize   = 48
	clockRadius = 12
)

func newClockCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Plot the twelve hour marks of a clock face",
		Long:  "Plot twelve points made by rotating one point about the Y axis, viewed from above, on a 48x48 canvas.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			cfg.Format = config.FormatPPM
			cfg.Output, _ = cmd.Flags().GetString("out")
			return writeCanvas(cmd.OutOrStdout(), clockCanvas(), cfg)
		},
	}
	cmd.Flags().String("out", "", "Output PPM file (empty or - for stdout)")
	return cmd
}

// hourMarks returns the hour positions on a circle of clockRadius in the
// xz plane, twelve o'clock on +z.
func hourMarks() [12]math3d.Tuple4 {
	var marks [12]math3d.Tuple4
	for i := range marks {
		m := math3d.Translate(0, 0, 1).
			Then(math3d.RotateY(float64(i) * 2 * math.Pi / 12)).
			Then(math3d.ScaleUniform(clockRadius))
		marks[i] = m.MulTuple(math3d.Origin())
	}
	return marks
}

func clockCanvas() *render.Canvas {
	c := render.NewCanvas(clockSize, clockSize)
	center := float64(clockSize / 2)
	for _, p := range hourMarks() {
		c.PutPixel(math3d.White, int(math.Round(p.X+center)), int(math.Round(p.Z+center)))
	}
	return c
}
