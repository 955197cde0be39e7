package app

import (
	"errors"
	"flag"
	"fmt"
	"runtime"
	"strconv"

	"raycast-dda/internal/logging"
)

// ErrConfig is wrapped by every configuration validation failure.
var ErrConfig = errors.New("invalid configuration")

// Config represents the command-line parameters for the viewer.
type Config struct {
	Level  string
	Scale  int
	TPS    int
	Width  int
	Height int

	// FOV is the horizontal field of view in degrees.
	FOV          float64
	ViewDistance float64
	MoveSpeed    float64
	TurnSpeed    float64

	Workers  int
	Seed     int64
	LogLevel string
}

// NewConfig returns a Config populated with the demo defaults.
func NewConfig() *Config {
	return &Config{
		Level:        "maze",
		Scale:        2,
		TPS:          60,
		Width:        1280,
		Height:       720,
		FOV:          60,
		ViewDistance: 30,
		MoveSpeed:    8,
		TurnSpeed:    2,
		Workers:      runtime.NumCPU(),
		Seed:         42,
		LogLevel:     "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Level, "level", c.Level, "builtin level name or path to a .json/.yaml level file")
	fs.IntVar(&c.Scale, "scale", c.Scale, "render at 1/scale of the window resolution")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "logical screen width")
	fs.IntVar(&c.Height, "height", c.Height, "logical screen height")
	fs.Float64Var(&c.FOV, "fov", c.FOV, "horizontal field of view in degrees")
	fs.Float64Var(&c.ViewDistance, "view-distance", c.ViewDistance, "how many grid cells the camera can see")
	fs.Float64Var(&c.MoveSpeed, "move-speed", c.MoveSpeed, "player speed in cells per second")
	fs.Float64Var(&c.TurnSpeed, "turn-speed", c.TurnSpeed, "player turn speed in radians per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used to cast a frame")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generated levels")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// Validate rejects settings the viewer cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Level == "":
		return fmt.Errorf("%w: level is required", ErrConfig)
	case c.Scale < 1:
		return fmt.Errorf("%w: scale %d must be at least 1", ErrConfig, c.Scale)
	case c.TPS < 1:
		return fmt.Errorf("%w: tps %d must be at least 1", ErrConfig, c.TPS)
	case c.Width < c.Scale || c.Height < c.Scale:
		return fmt.Errorf("%w: screen %dx%d is smaller than scale %d", ErrConfig, c.Width, c.Height, c.Scale)
	case !(c.FOV > 0 && c.FOV < 180):
		return fmt.Errorf("%w: fov %g must be inside (0, 180)", ErrConfig, c.FOV)
	case !(c.ViewDistance > 0):
		return fmt.Errorf("%w: view distance %g must be positive", ErrConfig, c.ViewDistance)
	case c.MoveSpeed < 0 || c.TurnSpeed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrConfig)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d must be at least 1", ErrConfig, c.Workers)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}

// LevelParams are the key/value pairs handed to builtin level factories.
func (c *Config) LevelParams() map[string]string {
	return map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
}

// RenderSize is the resolution the frame is cast and filled at.
func (c *Config) RenderSize() (int, int) {
	return c.Width / c.Scale, c.Height / c.Scale
}
