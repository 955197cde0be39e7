package level

import "raycast-dda/pkg/core"

const (
	materialDoor    = 1
	materialStone   = 2
	materialExit    = 3
	materialTileA   = 4
	materialTileB   = 5
	materialPlaster = 6
)

var mazeWalls = []uint32{
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

// Maze is the 21x21 demo maze with a door at (0, 1) and an exit at (19, 20).
func Maze() *File {
	const w, h = 21, 21
	walls := make([]uint32, len(mazeWalls))
	copy(walls, mazeWalls)
	return &File{
		Name:    "maze",
		Width:   w,
		Height:  h,
		Spawn:   Spawn{X: 1.5, Y: 1.5},
		Walls:   walls,
		Floor:   checker(w, h, materialTileA, materialTileB),
		Ceiling: fill(w, h, materialPlaster),
	}
}

// Arena is an empty walled box.
func Arena(w, h int) *File {
	walls := make([]uint32, w*h)
	ring(walls, w, h, materialStone)
	return &File{
		Name:    "arena",
		Width:   w,
		Height:  h,
		Spawn:   Spawn{X: float64(w/2) + 0.5, Y: float64(h/2) + 0.5},
		Walls:   walls,
		Floor:   fill(w, h, materialTileA),
		Ceiling: fill(w, h, materialPlaster),
	}
}

// Pillars scatters single-cell pillars across a walled box. The spawn corner
// at (1, 1) and its neighbours are always left open.
func Pillars(seed int64, w, h int, density float64) *File {
	f := Arena(w, h)
	f.Name = "pillars"
	f.Spawn = Spawn{X: 1.5, Y: 1.5, Angle: 0.25}
	f.Floor = checker(w, h, materialTileA, materialTileB)

	rng := core.NewRNG(seed)
	choices := []uint32{materialDoor, materialStone, materialExit}
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if x <= 2 && y <= 2 {
				continue
			}
			if rng.Chance(density) {
				f.Walls[y*w+x] = rng.Pick(choices)
			}
		}
	}
	f.Materials = map[string]string{"3": "#c9a227"}
	return f
}

func fill(w, h int, v uint32) []uint32 {
	out := make([]uint32, w*h)
	for i := range out {
		out[i] = v
	}
	return out
}

func checker(w, h int, a, b uint32) []uint32 {
	out := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				out[y*w+x] = a
			} else {
				out[y*w+x] = b
			}
		}
	}
	return out
}

func ring(cells []uint32, w, h int, v uint32) {
	for x := 0; x < w; x++ {
		cells[x] = v
		cells[(h-1)*w+x] = v
	}
	for y := 0; y < h; y++ {
		cells[y*w] = v
		cells[y*w+w-1] = v
	}
}

func init() {
	Register("maze", func(map[string]string) (*Level, error) {
		return Maze().Level()
	})
	Register("arena", func(cfg map[string]string) (*Level, error) {
		return Arena(intParam(cfg, "w", 16, 3), intParam(cfg, "h", 16, 3)).Level()
	})
	Register("pillars", func(cfg map[string]string) (*Level, error) {
		return Pillars(
			int64Param(cfg, "seed", 1),
			intParam(cfg, "w", 32, 5),
			intParam(cfg, "h", 32, 5),
			floatParam(cfg, "density", 0.12, 0, 1),
		).Level()
	})
}
