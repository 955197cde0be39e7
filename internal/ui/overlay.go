//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"raycast-dda/internal/render"
	"raycast-dda/pkg/raycast"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	minimapMargin = 8
	// rayStride draws every nth ray of the fan so the overlay stays legible.
	rayStride = 8
)

var (
	rayColor     = color.RGBA{R: 255, G: 214, B: 64, A: 90}
	playerColor  = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	headingColor = color.RGBA{R: 230, G: 40, B: 40, A: 255}
)

// Overlay draws the top-down map with the player and the current ray fan.
type Overlay struct {
	painter *render.FramePainter
	cellPx  float64
	visible bool
}

// NewOverlay renders walls once into a minimap image drawn at cellPx pixels per
// cell.
func NewOverlay(walls raycast.CellMap, palette render.Palette, cellPx int) *Overlay {
	o := &Overlay{visible: true}
	o.SetMap(walls, palette, cellPx)
	return o
}

// SetMap replaces the map, for example after a level reload.
func (o *Overlay) SetMap(walls raycast.CellMap, palette render.Palette, cellPx int) {
	if cellPx <= 0 {
		cellPx = 1
	}
	size := walls.Size()
	o.cellPx = float64(cellPx)
	o.painter = render.NewFramePainter(size.W, size.H)
	_ = render.FillMinimap(o.painter.Buffer(), walls, palette)
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.visible }

// Update toggles the overlay with M.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.visible = !o.visible
	}
}

// Draw paints the minimap, a sample of rays and the player marker.
func (o *Overlay) Draw(screen *ebiten.Image, pos raycast.Vec2, heading float64, rays []raycast.Ray) {
	if o == nil || !o.visible || o.painter == nil {
		return
	}
	o.painter.Present(screen, minimapMargin, minimapMargin, o.cellPx)

	px, py := o.toScreen(pos)
	for i := 0; i < len(rays); i += rayStride {
		ex, ey := o.toScreen(rays[i].Point())
		vector.StrokeLine(screen, px, py, ex, ey, 1, rayColor, false)
	}
	hx, hy := o.toScreen(pos.Add(raycast.Vec2{X: math.Cos(heading), Y: math.Sin(heading)}))
	vector.StrokeLine(screen, px, py, hx, hy, 2, headingColor, true)
	vector.DrawFilledCircle(screen, px, py, float32(o.cellPx*0.3), playerColor, true)
}

func (o *Overlay) toScreen(p raycast.Vec2) (float32, float32) {
	return float32(minimapMargin + p.X*o.cellPx), float32(minimapMargin + p.Y*o.cellPx)
}
