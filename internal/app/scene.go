package app

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"time"

	"raycast-dda/internal/core"
	"raycast-dda/internal/level"
	"raycast-dda/internal/logging"
	"raycast-dda/internal/player"
	"raycast-dda/internal/render"
	"raycast-dda/pkg/raycast"
)

// Input is the player intent for one tick. WidenFOV and NarrowFOV are edge
// triggered; the rest are held keys.
type Input struct {
	Forward, Back           bool
	TurnLeft, TurnRight     bool
	StrafeLeft, StrafeRight bool
	WidenFOV, NarrowFOV     bool
}

var fovControl = core.ParameterControl{
	Key: "fov", Label: "FOV", Type: core.ParamTypeFloat,
	Step: 5, Min: 10, Max: 170, HasMin: true, HasMax: true,
}

// Scene is the window-independent state of the viewer: level, player, camera
// and the rays of the latest frame.
type Scene struct {
	cfg     *Config
	level   *level.Level
	engine  *raycast.EngineRef
	player  *player.Player
	palette render.Palette
	layers  render.Layers

	rays     []raycast.Ray
	stats    render.FrameStats
	castTime time.Duration
}

// NewScene places the player at the level spawn.
func NewScene(cfg *Config, lvl *level.Level) *Scene {
	s := &Scene{cfg: cfg, engine: raycast.NewEngineRef(lvl.Engine())}
	s.setLevel(lvl)
	return s
}

// LoadScene resolves cfg.Level and builds a scene for it.
func LoadScene(cfg *Config) (*Scene, error) {
	lvl, err := level.Resolve(cfg.Level, cfg.LevelParams())
	if err != nil {
		return nil, err
	}
	return NewScene(cfg, lvl), nil
}

func (s *Scene) setLevel(lvl *level.Level) {
	s.level = lvl
	s.player = player.New(lvl.Spawn.X, lvl.Spawn.Y, lvl.Spawn.Angle)
	s.palette = render.DefaultPalette().WithMaterials(lvl.Materials)
	s.layers = render.Layers{
		Sky:    s.palette.Color(0),
		Ground: color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff},
	}
	if lvl.Floor != nil {
		s.layers.Floor = lvl.Floor
	}
	if lvl.Ceiling != nil {
		s.layers.Ceiling = lvl.Ceiling
	}
	s.rays = nil
	size := lvl.Size()
	logging.Info("level ready", "level", lvl.Name, "width", size.W, "height", size.H,
		"spawn_x", lvl.Spawn.X, "spawn_y", lvl.Spawn.Y)
}

// Reload resolves the configured level again and swaps it in. On failure the
// current level stays active.
func (s *Scene) Reload() error {
	lvl, err := level.Resolve(s.cfg.Level, s.cfg.LevelParams())
	if err != nil {
		return fmt.Errorf("reload %q: %w", s.cfg.Level, err)
	}
	s.engine.Store(lvl.Engine())
	s.setLevel(lvl)
	return nil
}

// Level returns the active level.
func (s *Scene) Level() *level.Level { return s.level }

// Player returns the viewpoint.
func (s *Scene) Player() *player.Player { return s.player }

// Palette returns the active material colours.
func (s *Scene) Palette() render.Palette { return s.palette }

// Rays returns the fan cast by the latest Cast.
func (s *Scene) Rays() []raycast.Ray { return s.rays }

// Camera returns the projection settings derived from the config.
func (s *Scene) Camera() render.Camera {
	return render.Camera{FOV: s.cfg.FOV * math.Pi / 180, ViewDistance: s.cfg.ViewDistance}
}

// Step applies one tick of input over dt seconds.
func (s *Scene) Step(in Input, dt float64) {
	walls := s.engine.Load().Map()
	if in.TurnLeft {
		s.player.Turn(-s.cfg.TurnSpeed * dt)
	}
	if in.TurnRight {
		s.player.Turn(s.cfg.TurnSpeed * dt)
	}
	move := s.cfg.MoveSpeed * dt
	if in.Forward {
		s.player.Move(walls, move)
	}
	if in.Back {
		s.player.Move(walls, -move)
	}
	if in.StrafeLeft {
		s.player.Strafe(walls, -move)
	}
	if in.StrafeRight {
		s.player.Strafe(walls, move)
	}
	if in.WidenFOV {
		s.SetFloatParameter(fovControl.Key, s.nudged(fovControl, s.cfg.FOV, 1))
	}
	if in.NarrowFOV {
		s.SetFloatParameter(fovControl.Key, s.nudged(fovControl, s.cfg.FOV, -1))
	}
}

func (s *Scene) nudged(c core.ParameterControl, v float64, direction int) float64 {
	next, _ := c.Nudge(v, direction)
	return next
}

// Cast shoots one ray per column from the player.
func (s *Scene) Cast(ctx context.Context, columns int) ([]raycast.Ray, error) {
	engine := s.engine.Load()
	cam := s.Camera()
	start := time.Now()
	rays, err := engine.CastFan(ctx, s.player.Pos, cam.Fan(s.player.Angle, columns), cam.ViewDistance, s.cfg.Workers)
	if err != nil {
		return nil, err
	}
	s.castTime = time.Since(start)
	s.rays = rays
	s.stats = render.Tally(rays)
	return rays, nil
}

// Render fills buf, a w*h RGBA buffer, from the latest Cast. w must match the
// number of cast columns.
func (s *Scene) Render(buf []byte, w, h int) error {
	view := render.View{Origin: s.player.Pos, Heading: s.player.Angle, Camera: s.Camera()}
	return render.FillFrame(buf, w, h, s.rays, view, s.layers, s.palette)
}

// Parameters implements core.ParameterProvider.
func (s *Scene) Parameters() core.ParameterSnapshot {
	p := s.player
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Level", Params: []core.Parameter{
			{Key: "level", Label: "Name", Value: s.level.Name},
			{Key: "x", Label: "X", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(p.Pos.X, 'f', 2, 64)},
			{Key: "y", Label: "Y", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(p.Pos.Y, 'f', 2, 64)},
			{Key: "angle", Label: "Heading", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(p.Angle*180/math.Pi, 'f', 1, 64)},
		}},
		{Name: "Frame", Params: []core.Parameter{
			{Key: "rays", Label: "Rays", Type: core.ParamTypeInt, Value: strconv.Itoa(s.stats.Rays)},
			{Key: "hits", Label: "Hits", Type: core.ParamTypeInt, Value: strconv.Itoa(s.stats.Hits)},
			{Key: "escaped", Label: "Escaped", Type: core.ParamTypeInt, Value: strconv.Itoa(s.stats.Escaped)},
			{Key: "mean_length", Label: "Mean length", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.stats.MeanLength, 'f', 2, 64)},
			{Key: "cast_ms", Label: "Cast ms", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(float64(s.castTime.Microseconds())/1000, 'f', 2, 64)},
		}},
		{Name: "Camera", Params: []core.Parameter{
			{Key: "fov", Label: "FOV", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.cfg.FOV, 'f', -1, 64)},
			{Key: "view_distance", Label: "View distance", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.cfg.ViewDistance, 'f', -1, 64)},
			{Key: "move_speed", Label: "Move speed", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.cfg.MoveSpeed, 'f', -1, 64)},
			{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Value: strconv.Itoa(s.cfg.Workers)},
		}},
	}}
}

// ParameterControls implements core.ParameterControlsProvider.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		fovControl,
		{Key: "view_distance", Label: "View distance", Type: core.ParamTypeFloat, Step: 2, Min: 2, Max: 100, HasMin: true, HasMax: true},
		{Key: "move_speed", Label: "Move speed", Type: core.ParamTypeFloat, Step: 1, Min: 1, Max: 20, HasMin: true, HasMax: true},
		{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Min: 1, Max: 64, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter implements core.FloatParameterSetter.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "fov":
		if !(value > 0 && value < 180) {
			return false
		}
		s.cfg.FOV = value
	case "view_distance":
		if !(value > 0) {
			return false
		}
		s.cfg.ViewDistance = value
	case "move_speed":
		if value < 0 {
			return false
		}
		s.cfg.MoveSpeed = value
	case "workers":
		n := int(math.Round(value))
		if n < 1 {
			return false
		}
		s.cfg.Workers = n
	default:
		return false
	}
	logging.Debug("parameter changed", "key", key, "value", value)
	return true
}
