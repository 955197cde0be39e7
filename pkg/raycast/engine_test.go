package raycast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mazeValues is the 21x21 demo maze: an outer ring of material 2 with a
// material 1 door at (0, 1) and a material 3 exit at (19, 20).
func mazeValues() []uint32 {
	return []uint32{
		2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
		1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2,
		2, 2, 2, 2, 2, 0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
		2, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 2,
		2, 0, 2, 2, 2, 2, 2, 0, 2, 2, 2, 0, 2, 0, 2, 2, 2, 2, 2, 0, 2,
		2, 0, 2, 0, 0, 0, 0, 0, 0, 0, 2, 0, 2, 0, 2, 0, 0, 0, 0, 0, 2,
		2, 0, 2, 0, 2, 2, 2, 2, 2, 2, 2, 0, 2, 0, 2, 2, 2, 2, 2, 2, 2,
		2, 0, 2, 0, 0, 0, 0, 0, 2, 0, 0, 0, 2, 0, 2, 0, 0, 0, 0, 0, 2,
		2, 0, 2, 2, 2, 0, 2, 2, 2, 0, 2, 0, 2, 0, 2, 2, 2, 0, 2, 0, 2,
		2, 0, 0, 0, 2, 0, 2, 0, 0, 0, 2, 0, 2, 0, 0, 0, 2, 0, 2, 0, 2,
		2, 0, 2, 2, 2, 0, 2, 0, 2, 0, 2, 2, 2, 2, 2, 0, 2, 0, 2, 0, 2,
		2, 0, 0, 0, 0, 0, 2, 0, 2, 0, 2, 0, 0, 0, 0, 0, 2, 0, 2, 0, 2,
		2, 0, 2, 2, 2, 2, 2, 0, 2, 0, 2, 0, 2, 2, 2, 2, 2, 2, 2, 0, 2,
		2, 0, 2, 0, 0, 0, 2, 0, 2, 0, 2, 0, 0, 0, 0, 0, 2, 0, 0, 0, 2,
		2, 0, 2, 0, 2, 0, 2, 0, 2, 2, 2, 2, 2, 2, 2, 0, 2, 0, 2, 2, 2,
		2, 0, 0, 0, 2, 0, 2, 0, 0, 0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 2,
		2, 2, 2, 2, 2, 0, 2, 2, 2, 0, 2, 2, 2, 0, 2, 2, 2, 2, 2, 0, 2,
		2, 0, 2, 0, 0, 0, 2, 0, 2, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 2,
		2, 0, 2, 0, 2, 2, 2, 0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 0, 2, 0, 2,
		2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 2,
		2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 3, 2,
	}
}

func newMaze(t testing.TB) *Engine {
	t.Helper()
	e, err := NewEngine(mazeValues(), 21, 21)
	require.NoError(t, err)
	return e
}

// recordingMap logs every lookup the engine performs.
type recordingMap struct {
	*Grid
	calls []Cell
}

func (r *recordingMap) CellAt(x, y int) (uint32, bool) {
	r.calls = append(r.calls, Cell{X: x, Y: y})
	return r.Grid.CellAt(x, y)
}

func emptyGrid(t testing.TB, w, h int) *Grid {
	t.Helper()
	g, err := NewGrid(make([]uint32, w*h), w, h)
	require.NoError(t, err)
	return g
}

func TestCastEastHitsFarWall(t *testing.T) {
	require := require.New(t)
	ray := newMaze(t).Cast(Vec2{X: 1.5, Y: 1.5}, 0, 30)

	require.True(ray.Hit)
	require.Equal(uint32(2), ray.Value)
	require.Equal(18.5, ray.Length)
	require.Equal(SideVertical, ray.Side)
	require.Equal(Cell{X: 20, Y: 1}, ray.Cell)
	require.Equal(StopHit, ray.Stop)
	require.Equal(Vec2{X: 1, Y: 0}, ray.Direction)
	require.Equal(Vec2{X: 1.5, Y: 1.5}, ray.Origin)
	require.Equal(0.0, ray.Angle)
}

func TestCastSouthCrossesHorizontalLine(t *testing.T) {
	require := require.New(t)
	ray := newMaze(t).Cast(Vec2{X: 1.5, Y: 1.5}, math.Pi/2, 30)

	require.True(ray.Hit)
	require.Equal(uint32(2), ray.Value)
	require.InDelta(0.5, ray.Length, 1e-12)
	require.Equal(SideHorizontal, ray.Side)
	require.Equal(Cell{X: 1, Y: 2}, ray.Cell)
}

func TestCastFromGridLineStepsIntoNeighbour(t *testing.T) {
	require := require.New(t)
	grid, err := NewGrid(mazeValues(), 21, 21)
	require.NoError(err)
	rec := &recordingMap{Grid: grid}

	ray := NewEngineFor(rec).Cast(Vec2{X: 2.0, Y: 1.5}, math.Pi, 30)

	require.NotEmpty(rec.calls)
	require.Equal(Cell{X: 1, Y: 1}, rec.calls[0], "first lookup from x=2.0 moving -x must be x=1")
	require.True(ray.Hit)
	require.Equal(uint32(1), ray.Value)
	require.Equal(Cell{X: 0, Y: 1}, ray.Cell)
	require.InDelta(1.0, ray.Length, 1e-12)
	require.Equal(SideVertical, ray.Side)
}

func TestCastEmptyGridEscapesAtBoundary(t *testing.T) {
	e := NewEngineFor(emptyGrid(t, 8, 6))

	t.Run("boundary closer than max distance", func(t *testing.T) {
		ray := e.Cast(Vec2{X: 1.5, Y: 1.5}, 0, 100)
		assert.False(t, ray.Hit)
		assert.Equal(t, StopEscaped, ray.Stop)
		assert.Equal(t, 6.5, ray.Length)
		assert.Equal(t, Cell{X: 8, Y: 1}, ray.Cell)
	})

	t.Run("max distance closer than boundary", func(t *testing.T) {
		ray := e.Cast(Vec2{X: 1.5, Y: 1.5}, 0, 3.2)
		assert.False(t, ray.Hit)
		assert.Equal(t, StopMaxDistance, ray.Stop)
		assert.Equal(t, 3.2, ray.Length)
	})

	t.Run("diagonal escape", func(t *testing.T) {
		ray := e.Cast(Vec2{X: 4, Y: 3}, 0.7, 100)
		assert.False(t, ray.Hit)
		assert.Equal(t, StopEscaped, ray.Stop)
		assert.False(t, math.IsNaN(ray.Length))
		assert.False(t, e.Map().(*Grid).InBounds(ray.Cell.X, ray.Cell.Y))
	})
}

func TestCastMaxDistanceClamp(t *testing.T) {
	ray := newMaze(t).Cast(Vec2{X: 1.5, Y: 1.5}, 0, 5)

	require.False(t, ray.Hit)
	require.Equal(t, StopMaxDistance, ray.Stop)
	require.Equal(t, 5.0, ray.Length)
	require.Equal(t, Cell{X: 6, Y: 1}, ray.Cell)
}

func TestCastNonPositiveMaxDistance(t *testing.T) {
	e := newMaze(t)
	for _, limit := range []float64{0, -1, math.NaN()} {
		ray := e.Cast(Vec2{X: 1.5, Y: 1.5}, 0, limit)
		require.False(t, ray.Hit, "limit=%v", limit)
		require.Equal(t, 0.0, ray.Length, "limit=%v", limit)
		require.Equal(t, SideNone, ray.Side, "limit=%v", limit)
		require.Equal(t, Cell{X: 1, Y: 1}, ray.Cell, "limit=%v", limit)
	}
}

func TestCastIsIdempotent(t *testing.T) {
	e := newMaze(t)
	for _, angle := range []float64{0, 0.3, 1, math.Pi / 2, 2.5, math.Pi, -0.7, 11} {
		first := e.Cast(Vec2{X: 3.25, Y: 5.75}, angle, 30)
		second := e.Cast(Vec2{X: 3.25, Y: 5.75}, angle, 30)
		require.Equal(t, first, second, "angle=%v", angle)
	}
}

func TestCastOutsideGridOrigin(t *testing.T) {
	require := require.New(t)
	grid, err := NewGrid(mazeValues(), 21, 21)
	require.NoError(err)
	rec := &recordingMap{Grid: grid}

	ray := NewEngineFor(rec).Cast(Vec2{X: -5, Y: -5}, math.Pi/4, 50)

	require.False(ray.Hit)
	require.Equal(StopEscaped, ray.Stop)
	require.Len(rec.calls, 1, "first step lands outside the grid and ends the cast")
	require.False(grid.InBounds(rec.calls[0].X, rec.calls[0].Y))
}

func TestCastAngleIsNotRangeReduced(t *testing.T) {
	e := newMaze(t)
	for _, turns := range []float64{-3, -1, 1, 4} {
		ray := e.Cast(Vec2{X: 1.5, Y: 1.5}, turns*2*math.Pi, 30)
		require.True(t, ray.Hit, "turns=%v", turns)
		require.Equal(t, Cell{X: 20, Y: 1}, ray.Cell, "turns=%v", turns)
		require.InDelta(t, 18.5, ray.Length, 1e-9, "turns=%v", turns)
	}
}

func TestCastVisitsExactlyTheCellsOnThePath(t *testing.T) {
	grid := emptyGrid(t, 20, 20)
	origin := Vec2{X: 1.3, Y: 2.7}

	for _, angle := range []float64{0.3, 1.2, 2.1, 3.9, 5.5} {
		rec := &recordingMap{Grid: grid}
		ray := NewEngineFor(rec).Cast(origin, angle, 100)
		require.Equal(t, StopEscaped, ray.Stop)

		var sampled []Cell
		last := Cell{X: int(math.Floor(origin.X)), Y: int(math.Floor(origin.Y))}
		dir := ray.Direction
		for d := 0.0; d <= ray.Length+1e-3; d += 1e-4 {
			p := origin.Add(dir.Scale(d))
			c := Cell{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
			if c != last {
				sampled = append(sampled, c)
				last = c
			}
		}
		require.Equal(t, sampled, rec.calls, "angle=%v", angle)
	}
}

func TestAxisAlignedRaysStayFinite(t *testing.T) {
	require := require.New(t)
	require.True(math.IsInf(unitStep(0, 1), 1))
	require.Equal(1.0, unitStep(1, 0))
	require.Equal(1.0, unitStep(-1, 0))

	step, l := firstCrossing(0, 2.0, 2, math.Inf(1))
	require.Equal(1, step)
	require.True(math.IsInf(l, 1), "on a grid line a zero component must not produce NaN")

	step, l = firstCrossing(-1, 2.0, 2, 1)
	require.Equal(-1, step)
	require.Equal(0.0, l)

	ray := NewEngineFor(emptyGrid(t, 6, 6)).Cast(Vec2{X: 3, Y: 3}, 0, 100)
	require.Equal(SideVertical, ray.Side)
	require.Equal(3.0, ray.Length)
}

func TestTieAdvancesX(t *testing.T) {
	assert.True(t, advancesX(1, 1))
	assert.True(t, advancesX(0.5, 1))
	assert.False(t, advancesX(1, 0.5))
	assert.True(t, advancesX(1, math.Inf(1)))
	assert.False(t, advancesX(math.Inf(1), 1))
}

func TestRayGeometry(t *testing.T) {
	e := newMaze(t)

	east := e.Cast(Vec2{X: 1.5, Y: 1.5}, 0, 30)
	assert.Equal(t, Vec2{X: 20, Y: 1.5}, east.Point())
	assert.Equal(t, 0.5, east.WallOffset())

	south := e.Cast(Vec2{X: 1.25, Y: 1.5}, math.Pi/2, 30)
	assert.InDelta(t, 2.0, south.Point().Y, 1e-12)
	assert.InDelta(t, 0.25, south.WallOffset(), 1e-12)
}

func TestSideAndStopStrings(t *testing.T) {
	assert.Equal(t, "vertical", SideVertical.String())
	assert.Equal(t, "horizontal", SideHorizontal.String())
	assert.Equal(t, "none", SideNone.String())
	assert.Equal(t, "hit", StopHit.String())
	assert.Equal(t, "escaped", StopEscaped.String())
	assert.Equal(t, "max-distance", StopMaxDistance.String())
}

func BenchmarkCast(b *testing.B) {
	e := newMaze(b)
	origin := Vec2{X: 1.5, Y: 1.5}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Cast(origin, float64(i%628)/100, 30)
	}
}
