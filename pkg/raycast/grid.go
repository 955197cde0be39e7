package raycast

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrGridDims reports a grid with a non-positive width or height.
	ErrGridDims = errors.New("raycast: grid dimensions must be positive")
	// ErrGridSize reports a value slice whose length is not width*height.
	ErrGridSize = errors.New("raycast: grid length does not match dimensions")
)

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// CellMap is the lookup capability the caster needs from a map layer.
type CellMap interface {
	// CellAt returns the value at (x, y) and whether the coordinates are inside
	// the map.
	CellAt(x, y int) (uint32, bool)
	Size() Size
}

// Grid stores a 2D occupancy grid in row-major order. Zero cells are empty,
// anything else is an opaque material id. Dimensions are fixed at
// construction; read them through Size.
type Grid struct {
	w, h int
	data []uint32
}

// NewGrid wraps values as a W*H grid. The slice is not copied; callers must
// not mutate it while casts are in flight.
func NewGrid(values []uint32, w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridDims, w, h)
	}
	if w > math.MaxInt/h {
		return nil, fmt.Errorf("%w: %dx%d overflows the cell count", ErrGridDims, w, h)
	}
	if len(values) != w*h {
		return nil, fmt.Errorf("%w: got %d values for %dx%d", ErrGridSize, len(values), w, h)
	}
	return &Grid{w: w, h: h, data: values}, nil
}

// Cells exposes the backing slice.
func (g *Grid) Cells() []uint32 { return g.data }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// CellAt returns the value at (x, y). Out of range coordinates report false
// and are never read.
func (g *Grid) CellAt(x, y int) (uint32, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.data[g.Index(x, y)], true
}

// Blocked reports whether (x, y) is occupied or outside the grid.
func Blocked(m CellMap, x, y int) bool {
	v, ok := m.CellAt(x, y)
	return !ok || v != 0
}
