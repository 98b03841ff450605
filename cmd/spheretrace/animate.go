package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"fortio.org/log"
	"github.com/charmbracelet/harmonica"
	"github.com/spf13/cobra"
	"github.com/taigrr/spheretrace/pkg/config"
	"github.com/taigrr/spheretrace/pkg/math3d"
	"github.com/taigrr/spheretrace/pkg/trace"
)

// LightOrbit moves a light around the Y axis, easing its angle toward a
// target with a spring.
type LightOrbit struct {
	Angle  float64 // radians, 0 on +x
	Radius float64
	Height float64

	spring   harmonica.Spring
	velocity float64 // internal spring velocity
}

// NewLightOrbit creates an orbit through p stepped at fps frames per second.
func NewLightOrbit(p math3d.Tuple4, fps int) *LightOrbit {
	return &LightOrbit{
		Angle:  math.Atan2(p.Z, p.X),
		Radius: math.Hypot(p.X, p.Z),
		Height: p.Y,
		// critically damped so the light never swings back
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Step advances the angle one frame toward target.
func (o *LightOrbit) Step(target float64) {
	o.Angle, o.velocity = o.spring.Update(o.Angle, o.velocity, target)
}

// Position returns the light position for the current angle.
func (o *LightOrbit) Position() math3d.Tuple4 {
	return math3d.Point(o.Radius*math.Cos(o.Angle), o.Height, o.Radius*math.Sin(o.Angle))
}

func newAnimateCmd(a *app) *cobra.Command {
	var (
		frames int
		dir    string
		fps    int
	)
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Render frames of the light orbiting the scene",
		Long:  "Render --frames images into --dir while the light circles the default world once, eased by a spring.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.applyFlags(cmd)
			if err != nil {
				return err
			}
			if frames <= 0 {
				return fmt.Errorf("%w: frames %d must be positive", config.ErrInvalid, frames)
			}
			if fps <= 0 {
				return fmt.Errorf("%w: fps %d must be positive", config.ErrInvalid, fps)
			}
			return runAnimate(cfg, frames, fps, dir)
		},
	}
	addImageFlags(cmd)
	cmd.Flags().IntVar(&frames, "frames", 24, "Number of frames")
	cmd.Flags().IntVar(&fps, "fps", 24, "Frame rate the spring is tuned for")
	cmd.Flags().StringVar(&dir, "dir", "frames", "Output directory")
	return cmd
}

func runAnimate(cfg config.Config, frames, fps int, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	w := trace.DefaultWorld()
	light, _ := w.Light()
	orbit := NewLightOrbit(light.Position, fps)
	start := orbit.Angle

	for i := range frames {
		orbit.Step(start + 2*math.Pi*float64(i+1)/float64(frames))
		w.SetLight(trace.NewPointLight(orbit.Position(), light.Intensity))

		canvas, err := traceWorld(w, cfg)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("frame_%03d.%s", i, cfg.Format))
		if err := saveCanvas(canvas, path, cfg); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		log.LogVf("frame %d light angle %.3f", i, orbit.Angle)
	}
	log.Infof("Rendered %d frames into %s", frames, dir)
	return nil
}
