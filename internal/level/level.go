// Package level loads the grids a caster runs on: hand-written JSON or YAML
// level files and generated builtins.
package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"raycast-dda/pkg/raycast"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid level")

// MaxMaterialID is the largest material id a level may assign a colour to.
const MaxMaterialID = 255

// Format selects the decoder used for level data.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// FormatFor picks a format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported level file extension %q", filepath.Ext(path))
	}
}

// Spawn is where the player starts, in grid units, facing Angle radians.
type Spawn struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Angle float64 `json:"angle" yaml:"angle"`
}

// File is the on-disk level layout. Layers are row-major, origin top-left.
type File struct {
	Name      string            `json:"name" yaml:"name"`
	Width     int               `json:"width" yaml:"width"`
	Height    int               `json:"height" yaml:"height"`
	Spawn     Spawn             `json:"spawn" yaml:"spawn"`
	Walls     []uint32          `json:"walls" yaml:"walls"`
	Floor     []uint32          `json:"floor,omitempty" yaml:"floor,omitempty"`
	Ceiling   []uint32          `json:"ceiling,omitempty" yaml:"ceiling,omitempty"`
	Materials map[string]string `json:"materials,omitempty" yaml:"materials,omitempty"`
}

// Level is a validated, ready to cast level. Floor and Ceiling are nil when
// the level has no such layer.
type Level struct {
	Name      string
	Walls     *raycast.Grid
	Floor     *raycast.Grid
	Ceiling   *raycast.Grid
	Spawn     Spawn
	Materials map[uint32]color.RGBA
}

// Size returns the wall grid dimensions.
func (l *Level) Size() raycast.Size { return l.Walls.Size() }

// Engine returns a caster over the wall layer.
func (l *Level) Engine() *raycast.Engine { return raycast.NewEngineFor(l.Walls) }

// Load reads and validates a level file. The decoder follows the extension.
func Load(path string) (*Level, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}
	lvl, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("level file %s: %w", path, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return lvl, nil
}

// Parse decodes and validates level data.
func Parse(data []byte, format Format) (*Level, error) {
	var f File
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown level format %v", format)
	}
	return f.Level()
}

// Level validates f and builds its grids.
func (f *File) Level() (*Level, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	walls, err := raycast.NewGrid(f.Walls, f.Width, f.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: walls: %w", ErrInvalid, err)
	}
	lvl := &Level{Name: f.Name, Walls: walls, Spawn: f.Spawn}
	if lvl.Floor, err = optionalLayer("floor", f.Floor, f.Width, f.Height); err != nil {
		return nil, err
	}
	if lvl.Ceiling, err = optionalLayer("ceiling", f.Ceiling, f.Width, f.Height); err != nil {
		return nil, err
	}
	if lvl.Materials, err = parseMaterials(f.Materials); err != nil {
		return nil, err
	}
	return lvl, nil
}

func optionalLayer(name string, values []uint32, w, h int) (*raycast.Grid, error) {
	if len(values) == 0 {
		return nil, nil
	}
	g, err := raycast.NewGrid(values, w, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, name, err)
	}
	return g, nil
}

func (f *File) validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalid, f.Width, f.Height)
	}
	if len(f.Walls) == 0 {
		return fmt.Errorf("%w: walls are required", ErrInvalid)
	}
	if len(f.Walls) != f.Width*f.Height {
		return fmt.Errorf("%w: walls has %d cells, want %d", ErrInvalid, len(f.Walls), f.Width*f.Height)
	}
	s := f.Spawn
	if math.IsNaN(s.X) || math.IsNaN(s.Y) || math.IsInf(s.X, 0) || math.IsInf(s.Y, 0) {
		return fmt.Errorf("%w: spawn (%g, %g) is not finite", ErrInvalid, s.X, s.Y)
	}
	cx, cy := int(math.Floor(s.X)), int(math.Floor(s.Y))
	if cx < 0 || cx >= f.Width || cy < 0 || cy >= f.Height {
		return fmt.Errorf("%w: spawn (%g, %g) is outside the %dx%d grid", ErrInvalid, s.X, s.Y, f.Width, f.Height)
	}
	if v := f.Walls[cy*f.Width+cx]; v != 0 {
		return fmt.Errorf("%w: spawn (%g, %g) is inside wall material %d", ErrInvalid, s.X, s.Y, v)
	}
	return nil
}

func parseMaterials(raw map[string]string) (map[uint32]color.RGBA, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[uint32]color.RGBA, len(raw))
	for key, hex := range raw {
		id, err := strconv.ParseUint(strings.TrimSpace(key), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: materials: id %q: %w", ErrInvalid, key, err)
		}
		if id > MaxMaterialID {
			return nil, fmt.Errorf("%w: materials: id %d is above %d", ErrInvalid, id, MaxMaterialID)
		}
		c, err := ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: materials[%s]: %w", ErrInvalid, key, err)
		}
		out[uint32(id)] = c
	}
	return out, nil
}

// ParseColor parses an opaque "#rrggbb" colour.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("colour %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
