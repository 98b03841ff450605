// Package config loads render settings from defaults, an optional .env file
// and SPHERETRACE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalid is returned by Validate and by Load when a value cannot be parsed.
var ErrInvalid = errors.New("invalid config")

// Output formats.
const (
	FormatPPM = "ppm"
	FormatPNG = "png"
)

// Environment keys.
const (
	EnvWidth   = "SPHERETRACE_WIDTH"
	EnvHeight  = "SPHERETRACE_HEIGHT"
	EnvFOV     = "SPHERETRACE_FOV"
	EnvOutput  = "SPHERETRACE_OUT"
	EnvFormat  = "SPHERETRACE_FORMAT"
	EnvScale   = "SPHERETRACE_SCALE"
	EnvPreview = "SPHERETRACE_PREVIEW"
	EnvVerbose = "SPHERETRACE_VERBOSE"
)

// DefaultEnvFile is read when no other file is given.
const DefaultEnvFile = ".env"

// Config holds the render settings.
type Config struct {
	Width   int
	Height  int
	FOV     float64 // radians
	Output  string  // "" or "-" for stdout
	Format  string
	Scale   int // PNG upscale factor
	Preview bool
	Verbose bool
}

// Default returns the built-in settings: a 100x50 PPM to stdout at fov π/3.
func Default() Config {
	return Config{
		Width:  100,
		Height: 50,
		FOV:    math.Pi / 3,
		Format: FormatPPM,
		Scale:  1,
	}
}

// Load returns Default overridden by envFile (if it exists) and then by the
// process environment. An empty envFile skips the file.
func Load(envFile string) (Config, error) {
	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	cfg := Default()
	var err error
	if cfg.Width, err = intVar(lookup, EnvWidth, cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.Height, err = intVar(lookup, EnvHeight, cfg.Height); err != nil {
		return cfg, err
	}
	if cfg.Scale, err = intVar(lookup, EnvScale, cfg.Scale); err != nil {
		return cfg, err
	}
	if cfg.FOV, err = floatVar(lookup, EnvFOV, cfg.FOV); err != nil {
		return cfg, err
	}
	if cfg.Preview, err = boolVar(lookup, EnvPreview, cfg.Preview); err != nil {
		return cfg, err
	}
	if cfg.Verbose, err = boolVar(lookup, EnvVerbose, cfg.Verbose); err != nil {
		return cfg, err
	}
	if v, ok := lookup(EnvOutput); ok {
		cfg.Output = v
	}
	if v, ok := lookup(EnvFormat); ok {
		cfg.Format = v
	}
	return cfg, nil
}

// Validate checks that the settings describe a renderable image.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	case !(c.FOV > 0 && c.FOV < math.Pi):
		return fmt.Errorf("%w: field of view %g must be in (0, π)", ErrInvalid, c.FOV)
	case c.Format != FormatPPM && c.Format != FormatPNG:
		return fmt.Errorf("%w: unknown format %q", ErrInvalid, c.Format)
	case c.Scale < 1:
		return fmt.Errorf("%w: scale %d must be at least 1", ErrInvalid, c.Scale)
	}
	return nil
}

// ToStdout reports whether output goes to standard output.
func (c Config) ToStdout() bool {
	return c.Output == "" || c.Output == "-"
}

type lookupFunc func(string) (string, bool)

func intVar(lookup lookupFunc, key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
	}
	return n, nil
}

func floatVar(lookup lookupFunc, key string, def float64) (float64, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
	}
	return f, nil
}

func boolVar(lookup lookupFunc, key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
	}
	return b, nil
}
