//go:build ebiten

package app

import (
	"context"

	"raycast-dda/internal/core"
	"raycast-dda/internal/logging"
	"raycast-dda/internal/render"
	"raycast-dda/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	minimapCellPx = 6
	hudWidth      = 220
)

// Game adapts a Scene to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	scene   *Scene
	painter *render.FramePainter
	overlay *ui.Overlay
	hud     *ui.HUD
	clock   *core.FrameClock
}

// New constructs a Game for the provided scene.
func New(cfg *Config, scene *Scene) *Game {
	w, h := cfg.RenderSize()
	return &Game{
		cfg:     cfg,
		scene:   scene,
		painter: render.NewFramePainter(w, h),
		overlay: ui.NewOverlay(scene.Level().Walls, scene.Palette(), minimapCellPx),
		hud:     ui.NewHUD("raycast-dda", scene, hudWidth),
		clock:   core.NewFrameClock(0),
	}
}

// Update handles input, moves the player and casts the next frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.scene.Reload(); err != nil {
			logging.Error("level reload failed", "err", err)
		} else {
			g.overlay.SetMap(g.scene.Level().Walls, g.scene.Palette(), minimapCellPx)
			g.clock.Reset()
		}
	}

	g.scene.Step(Input{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW),
		Back:        ebiten.IsKeyPressed(ebiten.KeyS),
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyA),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyD),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		WidenFOV:    inpututil.IsKeyJustPressed(ebiten.KeyBracketRight),
		NarrowFOV:   inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft),
	}, g.clock.Tick())

	g.overlay.Update()
	g.hud.Update(g.cfg.Width)

	w, _ := g.painter.Size()
	_, err := g.scene.Cast(context.Background(), w)
	return err
}

// Draw renders the latest frame with the overlay and HUD on top.
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.painter.Size()
	if err := g.scene.Render(g.painter.Buffer(), w, h); err != nil {
		logging.Warn("frame skipped", "err", err)
		return
	}
	g.painter.Present(screen, 0, 0, float64(g.cfg.Scale))

	p := g.scene.Player()
	g.overlay.Draw(screen, p.Pos, p.Angle, g.scene.Rays())
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
