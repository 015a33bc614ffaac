//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"formind/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the state readout and moisture controls to the right of the plot.
type HUD struct {
	sim          core.Sim
	width        int
	panel        *ebiten.Image
	snapshot     core.ParameterSnapshot
	controls     []hudControlState
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: fmt.Sprintf("%s state", sim.Name())}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Type != core.ParamTypeFloat {
				continue
			}
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached parameter snapshot and handles clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Adjust nudges the first control by direction steps. It backs the keyboard
// shortcuts of the viewer.
func (h *HUD) Adjust(direction int) {
	if h == nil || len(h.controls) == 0 {
		return
	}
	h.applyAdjustment(&h.controls[0], direction)
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawReadout()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = parsed
		state.value = formatFloat(state.control, parsed)
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if image.Pt(px, my).In(state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if image.Pt(px, my).In(state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if h.floatSetter == nil || direction == 0 || !state.hasValue {
		return
	}
	target := clampControl(state.control, state.floatValue+float64(direction)*controlStep(state.control))
	if math.Abs(target-state.floatValue) < 1e-9 {
		return
	}
	if h.floatSetter.SetFloatParameter(state.control.Key, target) {
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	}
}

func (h *HUD) drawReadout() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, group := range h.snapshot.Groups {
		if group.Name != "State" {
			continue
		}
		for _, p := range group.Params {
			y += readoutSpacing
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		}
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		h.drawButton(state.minusRect, "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", state.hasValue && h.canAdjust(state, 1))
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if h.floatSetter == nil {
		return false
	}
	target := state.floatValue + float64(direction)*controlStep(state.control)
	if state.control.HasMin && direction < 0 && target < state.control.Min {
		return false
	}
	if state.control.HasMax && direction > 0 && target > state.control.Max {
		return false
	}
	return true
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
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

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

type hudControlState struct {
	control    core.ParameterControl
	value      string
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	readoutSpacing = 18
	controlsTop    = panelPadding + headerBaseline + 5*readoutSpacing + 14
)
