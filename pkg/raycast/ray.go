package raycast

import "math"

// Vec2 is a point or direction in grid units.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale returns v*s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Side records which kind of grid line the ray crossed on its last step.
type Side uint8

const (
	// SideNone means the ray never left its starting cell.
	SideNone Side = iota
	// SideVertical means the ray stepped along x, crossing a vertical line.
	SideVertical
	// SideHorizontal means the ray stepped along y, crossing a horizontal line.
	SideHorizontal
)

func (s Side) String() string {
	switch s {
	case SideVertical:
		return "vertical"
	case SideHorizontal:
		return "horizontal"
	default:
		return "none"
	}
}

// Stop explains why a cast ended.
type Stop uint8

const (
	// StopMaxDistance means travel reached the distance budget.
	StopMaxDistance Stop = iota
	// StopHit means the ray entered an occupied cell.
	StopHit
	// StopEscaped means the ray stepped outside the grid.
	StopEscaped
)

func (s Stop) String() string {
	switch s {
	case StopHit:
		return "hit"
	case StopEscaped:
		return "escaped"
	default:
		return "max-distance"
	}
}

// Ray is the result of a single cast.
type Ray struct {
	// Length is the distance travelled from Origin to where the ray stopped.
	Length float64
	// Value is the cell value struck; only meaningful when Hit is true.
	Value uint32
	Hit   bool

	Angle     float64
	Origin    Vec2
	Direction Vec2

	Side Side
	Cell Cell
	Stop Stop
}

// Point returns the position where the ray stopped.
func (r Ray) Point() Vec2 {
	return r.Origin.Add(r.Direction.Scale(r.Length))
}

// WallOffset returns the fractional position of the stop point along the face
// that was crossed, in [0, 1). Vertical crossings measure along y, horizontal
// crossings along x.
func (r Ray) WallOffset() float64 {
	p := r.Point()
	c := p.X
	if r.Side == SideVertical {
		c = p.Y
	}
	return c - math.Floor(c)
}
