//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"raycast-dda/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a parameter panel in the top-right corner of the view. Values
// come from a core.ParameterProvider; controls with -/+ buttons are shown when
// the source also implements core.ParameterControlsProvider and
// core.FloatParameterSetter.
type HUD struct {
	source  core.ParameterProvider
	setter  core.FloatParameterSetter
	title   string
	width   int
	visible bool

	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot
	controls []hudControlState
	offsetX  int
}

type hudControlState struct {
	control  core.ParameterControl
	value    float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 10
	lineHeight     = 16
	controlHeight  = 28
	buttonSize     = 20
	buttonGap      = 6
	headerBaseline = 14
)

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 150, G: 150, B: 160, A: 255}
)

// NewHUD constructs a HUD panel of the given width.
func NewHUD(title string, source core.ParameterProvider, width int) *HUD {
	h := &HUD{source: source, title: title, width: width, visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := source.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl})
		}
	}
	if setter, ok := source.(core.FloatParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Update refreshes the snapshot, toggles the panel with H and handles clicks
// on the control buttons. screenW is the logical screen width.
func (h *HUD) Update(screenW int) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	h.offsetX = screenW - h.width
	h.snapshot = h.source.Parameters()
	h.layout()
	h.refreshControlValues()
	if h.visible {
		h.handleInput()
	}
}

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || h.width <= 0 {
		return
	}
	height := h.height()
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	for _, group := range h.snapshot.Groups {
		y += lineHeight + 4
		text.Draw(h.panel, group.Name, face, panelPadding, y, dimColor)
		for _, p := range group.Params {
			y += lineHeight
			text.Draw(h.panel, p.Label, face, panelPadding, y, textColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, textColor)
		}
	}
	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) paramsHeight() int {
	height := panelPadding + headerBaseline
	for _, group := range h.snapshot.Groups {
		height += lineHeight + 4 + len(group.Params)*lineHeight
	}
	return height + panelPadding
}

func (h *HUD) height() int {
	return h.paramsHeight() + len(h.controls)*controlHeight + panelPadding
}

func (h *HUD) layout() {
	top := h.paramsHeight()
	for i := range h.controls {
		state := &h.controls[i]
		state.top = top + i*controlHeight
		buttonY := state.top + (controlHeight-buttonSize)/2
		state.plusRect = image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		state.minusRect = image.Rect(state.plusRect.Min.X-buttonGap-buttonSize, buttonY, state.plusRect.Min.X-buttonGap, buttonY+buttonSize)
	}
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			continue
		}
		state.value = v
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		direction := 0
		switch {
		case p.In(state.minusRect):
			direction = -1
		case p.In(state.plusRect):
			direction = 1
		default:
			continue
		}
		if next, ok := state.control.Nudge(state.value, direction); ok && h.setter.SetFloatParameter(state.control.Key, next) {
			state.value = next
		}
		return
	}
}

func (h *HUD) drawControl(state *hudControlState) {
	face := basicfont.Face7x13
	baseline := state.top + controlHeight/2 + 5
	text.Draw(h.panel, state.control.Label, face, panelPadding, baseline, textColor)

	value, valueColor := "--", dimColor
	if state.hasValue {
		value, valueColor = state.control.Format(state.value), textColor
	}
	bounds := text.BoundString(face, value)
	text.Draw(h.panel, value, face, state.minusRect.Min.X-buttonGap-bounds.Dx(), baseline, valueColor)

	_, canLower := state.control.Nudge(state.value, -1)
	_, canRaise := state.control.Nudge(state.value, 1)
	h.drawButton(state.minusRect, "-", state.hasValue && h.setter != nil && canLower)
	h.drawButton(state.plusRect, "+", state.hasValue && h.setter != nil && canRaise)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
