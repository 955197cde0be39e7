package raycast

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Fan describes one ray per screen column spread evenly across a field of
// view centred on Heading. Angles are in radians.
type Fan struct {
	Heading float64
	FOV     float64
	Columns int
}

// Angle returns the ray angle for column i. The first and last columns sit on
// the edges of the field of view.
func (f Fan) Angle(i int) float64 {
	if f.Columns <= 1 {
		return f.Heading
	}
	t := float64(i)/float64(f.Columns-1) - 0.5
	return f.Heading + f.FOV*t
}

// FanAngles lists the column angles of f.
func FanAngles(f Fan) []float64 {
	if f.Columns <= 0 {
		return nil
	}
	angles := make([]float64, f.Columns)
	for i := range angles {
		angles[i] = f.Angle(i)
	}
	return angles
}

// minChunk keeps tiny fans from paying goroutine overhead per column.
const minChunk = 32

// CastFan casts every column of f from origin on up to workers goroutines and
// returns the rays in column order. workers <= 0 uses runtime.NumCPU. The
// context is checked between chunks of columns.
func (e *Engine) CastFan(ctx context.Context, origin Vec2, f Fan, maxDistance float64, workers int) ([]Ray, error) {
	if f.Columns <= 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	rays := make([]Ray, f.Columns)

	chunk := (f.Columns + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < f.Columns; start += chunk {
		end := start + chunk
		if end > f.Columns {
			end = f.Columns
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				rays[i] = e.Cast(origin, f.Angle(i), maxDistance)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rays, nil
}
