// spheretrace - Sphere Ray Tracer
// Renders a lit scene of spheres to PPM or PNG, previews it in the terminal,
// and animates the light around the scene.
package main

import (
	"context"
	"os"

	"fortio.org/log"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/spheretrace/pkg/config"
)

var version = "dev"

// app carries settings shared by every subcommand.
type app struct {
	envFile string
	verbose bool
	cfg     config.Config
}

func main() {
	root := newRootCmd()
	if err := fang.Execute(context.Background(), root, fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "spheretrace",
		Short: "Sphere ray tracer",
		Long: `spheretrace - Sphere Ray Tracer

Renders spheres lit by a point light with Phong shading.

Settings come from defaults, then the .env file, then SPHERETRACE_*
environment variables, then flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = a.verbose
			}
			if cfg.Verbose {
				log.SetLogLevel(log.Debug)
			}
			a.cfg = cfg
			log.Debugf("config: %+v", cfg)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "Optional .env file with SPHERETRACE_* settings")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging")

	root.AddCommand(newRenderCmd(a), newClockCmd(a), newAnimateCmd(a), newInfoCmd(a))
	return root
}

// addImageFlags registers the flags that override config values.
func addImageFlags(cmd *cobra.Command) {
	d := config.Default()
	cmd.Flags().Int("width", d.Width, "Image width in pixels")
	cmd.Flags().Int("height", d.Height, "Image height in pixels")
	cmd.Flags().Float64("fov", d.FOV, "Field of view in radians")
	cmd.Flags().String("format", d.Format, "Output format (ppm or png)")
	cmd.Flags().Int("scale", d.Scale, "PNG upscale factor")
	cmd.Flags().Bool("preview", d.Preview, "Print a half-block preview to the terminal")
}

// applyFlags copies explicitly set flags over the loaded config and
// validates the result.
func (a *app) applyFlags(cmd *cobra.Command) (config.Config, error) {
	cfg := a.cfg
	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Width, _ = f.GetInt("width")
	}
	if f.Changed("height") {
		cfg.Height, _ = f.GetInt("height")
	}
	if f.Changed("fov") {
		cfg.FOV, _ = f.GetFloat64("fov")
	}
	if f.Changed("format") {
		cfg.Format, _ = f.GetString("format")
	}
	if f.Changed("scale") {
		cfg.Scale, _ = f.GetInt("scale")
	}
	if f.Changed("preview") {
		cfg.Preview, _ = f.GetBool("preview")
	}
	if f.Lookup("out") != nil && f.Changed("out") {
		cfg.Output, _ = f.GetString("out")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
