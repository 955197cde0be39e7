// Command raybench casts full frames against a level without a window and
// reports how fast the fan is cast and how the rays ended.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"time"

	"raycast-dda/internal/level"
	"raycast-dda/internal/logging"
	"raycast-dda/internal/render"
	"raycast-dda/pkg/raycast"
)

type options struct {
	level    string
	frames   int
	columns  int
	rows     int
	workers  int
	fov      float64
	max      float64
	seed     int64
	render   bool
	logLevel string
}

type report struct {
	level   string
	frames  int
	stats   render.FrameStats
	elapsed time.Duration
}

func (r report) raysPerSecond() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.stats.Rays) / r.elapsed.Seconds()
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.StringVar(&o.level, "level", "maze", "builtin level name or path to a level file")
	fs.IntVar(&o.frames, "frames", 600, "frames to cast")
	fs.IntVar(&o.columns, "columns", 1280, "rays per frame")
	fs.IntVar(&o.rows, "rows", 720, "frame height used with -render")
	fs.IntVar(&o.workers, "workers", runtime.NumCPU(), "goroutines per frame")
	fs.Float64Var(&o.fov, "fov", 60, "field of view in degrees")
	fs.Float64Var(&o.max, "max", 30, "maximum ray distance in cells")
	fs.Int64Var(&o.seed, "seed", 42, "seed for generated levels")
	fs.BoolVar(&o.render, "render", false, "also fill an RGBA frame per cast")
	fs.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn or error")
}

func (o *options) validate() error {
	switch {
	case o.frames < 1:
		return fmt.Errorf("frames %d must be at least 1", o.frames)
	case o.columns < 1:
		return fmt.Errorf("columns %d must be at least 1", o.columns)
	case o.render && o.rows < 1:
		return fmt.Errorf("rows %d must be at least 1", o.rows)
	case o.workers < 1:
		return fmt.Errorf("workers %d must be at least 1", o.workers)
	case !(o.fov > 0 && o.fov < 180):
		return fmt.Errorf("fov %g must be inside (0, 180)", o.fov)
	}
	return nil
}

// run sweeps the heading through one full turn across the frames. A cancelled
// run still reports the frames it finished and the time they took.
func run(ctx context.Context, o options) (r report, err error) {
	lvl, err := level.Resolve(o.level, map[string]string{"seed": strconv.FormatInt(o.seed, 10)})
	if err != nil {
		return report{}, err
	}
	engine := lvl.Engine()
	origin := raycast.Vec2{X: lvl.Spawn.X, Y: lvl.Spawn.Y}
	cam := render.Camera{FOV: o.fov * math.Pi / 180, ViewDistance: o.max}
	palette := render.DefaultPalette().WithMaterials(lvl.Materials)

	var buf []byte
	if o.render {
		buf = make([]byte, 4*o.columns*o.rows)
	}

	r.level = lvl.Name
	start := time.Now()
	defer func() { r.elapsed = time.Since(start) }()
	for i := 0; i < o.frames; i++ {
		heading := lvl.Spawn.Angle + 2*math.Pi*float64(i)/float64(o.frames)
		rays, err := engine.CastFan(ctx, origin, cam.Fan(heading, o.columns), o.max, o.workers)
		if err != nil {
			return r, fmt.Errorf("frame %d: %w", i, err)
		}
		if buf != nil {
			view := render.View{Origin: origin, Heading: heading, Camera: cam}
			layers := render.Layers{Floor: layer(lvl.Floor), Ceiling: layer(lvl.Ceiling)}
			if err := render.FillFrame(buf, o.columns, o.rows, rays, view, layers, palette); err != nil {
				return r, fmt.Errorf("frame %d: %w", i, err)
			}
		}
		r.stats.Add(render.Tally(rays))
		r.frames++
		logging.Debug("frame cast", "frame", i, "heading", heading)
	}
	return r, nil
}

func layer(g *raycast.Grid) raycast.CellMap {
	if g == nil {
		return nil
	}
	return g
}

func printReport(w io.Writer, r report) {
	fmt.Fprintf(w, "level=%s frames=%d rays=%d hits=%d escaped=%d max-distance=%d mean-length=%.3f elapsed=%s rays/s=%.0f\n",
		r.level, r.frames, r.stats.Rays, r.stats.Hits, r.stats.Escaped, r.stats.MaxDistance,
		r.stats.MeanLength, r.elapsed.Round(time.Millisecond), r.raysPerSecond())
}

func main() {
	var o options
	o.bind(flag.CommandLine)
	flag.Parse()

	lvl, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		logging.Fatal("bad flags", "err", err)
	}
	logging.SetLevel(lvl)
	if err := o.validate(); err != nil {
		logging.Fatal("bad flags", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r, err := run(ctx, o)
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal("benchmark failed", "err", err)
	}
	logging.Info("benchmark finished", "level", r.level, "rays", r.stats.Rays, "elapsed", r.elapsed, "rays_per_second", r.raysPerSecond())
	printReport(os.Stdout, r)
}
