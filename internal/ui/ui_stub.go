//go:build !ebiten

package ui

import (
	"raycast-dda/internal/core"
	"raycast-dda/internal/render"
	"raycast-dda/pkg/raycast"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(raycast.CellMap, render.Palette, int) *Overlay { return &Overlay{} }

// SetMap is a no-op in headless builds.
func (o *Overlay) SetMap(raycast.CellMap, render.Palette, int) {}

// Visible always reports false in headless builds.
func (o *Overlay) Visible() bool { return false }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, raycast.Vec2, float64, []raycast.Ray) {}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(string, core.ParameterProvider, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
