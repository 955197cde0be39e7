// Package raycast walks rays through a 2D occupancy grid one cell boundary at
// a time (DDA traversal) and reports the first occupied cell they enter.
package raycast

import "math"

// Engine casts rays against a single occupancy layer. It holds no mutable
// state, so one Engine may serve any number of goroutines as long as the
// underlying map is not mutated during a cast.
type Engine struct {
	cells CellMap
}

// NewEngine builds an engine over a flattened row-major grid.
func NewEngine(values []uint32, w, h int) (*Engine, error) {
	g, err := NewGrid(values, w, h)
	if err != nil {
		return nil, err
	}
	return &Engine{cells: g}, nil
}

// NewEngineFor builds an engine over any CellMap.
func NewEngineFor(m CellMap) *Engine {
	return &Engine{cells: m}
}

// Map returns the layer the engine casts against.
func (e *Engine) Map() CellMap { return e.cells }

// Cast walks a ray from origin at angle (radians) until it enters an occupied
// cell, steps outside the map, or has travelled maxDistance. A non-positive
// maxDistance returns immediately with Length 0.
func (e *Engine) Cast(origin Vec2, angle, maxDistance float64) Ray {
	dir := Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
	cell := Cell{X: int(math.Floor(origin.X)), Y: int(math.Floor(origin.Y))}
	ray := Ray{
		Angle:     angle,
		Origin:    origin,
		Direction: dir,
		Cell:      cell,
		Stop:      StopMaxDistance,
	}
	if !(maxDistance > 0) {
		return ray
	}

	unitX := unitStep(dir.X, dir.Y)
	unitY := unitStep(dir.Y, dir.X)

	stepX, lenX := firstCrossing(dir.X, origin.X, cell.X, unitX)
	stepY, lenY := firstCrossing(dir.Y, origin.Y, cell.Y, unitY)

	for {
		alongX := advancesX(lenX, lenY)
		distance := lenY
		if alongX {
			distance = lenX
		}
		if distance >= maxDistance {
			ray.Length = maxDistance
			ray.Stop = StopMaxDistance
			break
		}

		if alongX {
			cell.X += stepX
			lenX += unitX
			ray.Side = SideVertical
		} else {
			cell.Y += stepY
			lenY += unitY
			ray.Side = SideHorizontal
		}
		ray.Length = distance
		ray.Cell = cell

		v, ok := e.cells.CellAt(cell.X, cell.Y)
		if !ok {
			ray.Stop = StopEscaped
			break
		}
		if v != 0 {
			ray.Value = v
			ray.Hit = true
			ray.Stop = StopHit
			break
		}
	}
	return ray
}

// unitStep is the distance along the ray that moves one grid unit along the
// axis whose direction component is a. A zero component never crosses a line
// on that axis.
func unitStep(a, b float64) float64 {
	if a == 0 {
		return math.Inf(1)
	}
	r := b / a
	return math.Sqrt(1 + r*r)
}

// firstCrossing returns the step sign and the ray length to the first grid
// line on one axis, honouring the origin's offset inside its cell.
func firstCrossing(d, pos float64, cell int, unit float64) (int, float64) {
	if math.IsInf(unit, 1) {
		return 1, unit
	}
	if d < 0 {
		return -1, (pos - float64(cell)) * unit
	}
	return 1, (float64(cell+1) - pos) * unit
}

// advancesX picks the axis to step. Ties go to x.
func advancesX(lenX, lenY float64) bool {
	return lenX <= lenY
}
