package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"fortio.org/log"
	"github.com/spf13/cobra"
	"github.com/taigrr/spheretrace/pkg/config"
	"github.com/taigrr/spheretrace/pkg/math3d"
	"github.com/taigrr/spheretrace/pkg/render"
	"github.com/taigrr/spheretrace/pkg/trace"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the default world",
		Long:  "Render the default world: two nested spheres lit from the upper left. PPM goes to stdout unless --out names a file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.applyFlags(cmd)
			if err != nil {
				return err
			}
			return runRender(cmd, cfg)
		},
	}
	addImageFlags(cmd)
	cmd.Flags().String("out", "", "Output file (empty or - for stdout)")
	return cmd
}

// newSceneCamera points a camera at the origin from in front of the scene.
func newSceneCamera(cfg config.Config) (*trace.Camera, error) {
	cam := trace.NewCamera(cfg.Width, cfg.Height, cfg.FOV)
	view := math3d.ViewTransform(math3d.Point(0, 1.5, -5), math3d.Point(0, 0, 0), math3d.Vector(0, 1, 0))
	if err := cam.SetTransform(view); err != nil {
		return nil, err
	}
	return cam, nil
}

func traceWorld(w *trace.World, cfg config.Config) (*render.Canvas, error) {
	cam, err := newSceneCamera(cfg)
	if err != nil {
		return nil, err
	}
	canvas := render.NewCanvas(cfg.Width, cfg.Height)
	start := time.Now()
	if err := cam.Render(w, canvas); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	log.Debugf("traced %dx%d in %v", cfg.Width, cfg.Height, time.Since(start))
	return canvas, nil
}

func runRender(cmd *cobra.Command, cfg config.Config) error {
	canvas, err := traceWorld(trace.DefaultWorld(), cfg)
	if err != nil {
		return err
	}
	if err := writeCanvas(cmd.OutOrStdout(), canvas, cfg); err != nil {
		return err
	}
	if cfg.Preview {
		// keep the preview out of piped image data
		out := cmd.OutOrStdout()
		if cfg.ToStdout() {
			out = cmd.ErrOrStderr()
		}
		fmt.Fprintln(out, render.Preview(canvas))
	}
	return nil
}

// writeCanvas writes canvas to cfg.Output, or to stdout when no file is set.
func writeCanvas(stdout io.Writer, canvas *render.Canvas, cfg config.Config) error {
	if cfg.ToStdout() {
		if cfg.Format == config.FormatPNG {
			return render.EncodePNG(stdout, canvas, cfg.Scale)
		}
		return render.EncodePPM(stdout, canvas)
	}
	return saveCanvas(canvas, cfg.Output, cfg)
}

func saveCanvas(canvas *render.Canvas, path string, cfg config.Config) error {
	var err error
	if cfg.Format == config.FormatPNG {
		err = canvas.SavePNG(path, cfg.Scale)
	} else {
		err = canvas.SavePPM(path)
	}
	if err != nil {
		return err
	}
	if info, statErr := os.Stat(path); statErr == nil {
		log.Infof("Wrote %s (%.2f KB)", path, float64(info.Size())/1024)
	}
	return nil
}
