package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/taigrr/spheretrace/pkg/math3d"
	"github.com/taigrr/spheretrace/pkg/trace"
)

func newInfoCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the default world",
		Long:  "Display the objects, transforms, materials and light of the default world.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printWorld(cmd.OutOrStdout(), trace.DefaultWorld())
			return nil
		},
	}
}

func printWorld(out io.Writer, w *trace.World) {
	objects := w.Objects()
	fmt.Fprintf(out, "Objects:    %d\n", len(objects))
	for i, s := range objects {
		m := s.Material()
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Sphere %d\n", i)
		fmt.Fprintf(out, "  Color:     (%.3f, %.3f, %.3f)\n", m.Color.R, m.Color.G, m.Color.B)
		fmt.Fprintf(out, "  Ambient:   %.3f\n", m.Ambient)
		fmt.Fprintf(out, "  Diffuse:   %.3f\n", m.Diffuse)
		fmt.Fprintf(out, "  Specular:  %.3f\n", m.Specular)
		fmt.Fprintf(out, "  Shininess: %.1f\n", m.Shininess)
		printMat4(out, s.Transform())
	}
	fmt.Fprintln(out)
	light, ok := w.Light()
	if !ok {
		fmt.Fprintln(out, "Light:      none")
		return
	}
	p, c := light.Position, light.Intensity
	fmt.Fprintf(out, "Light:      (%.3f, %.3f, %.3f) intensity (%.3f, %.3f, %.3f)\n", p.X, p.Y, p.Z, c.R, c.G, c.B)
}

func printMat4(out io.Writer, m math3d.Mat4) {
	for row := range 4 {
		label := "  Transform:"
		if row > 0 {
			label = "            "
		}
		fmt.Fprintf(out, "%s [%7.3f %7.3f %7.3f %7.3f]\n", label, m.Get(row, 0), m.Get(row, 1), m.Get(row, 2), m.Get(row, 3))
	}
}
