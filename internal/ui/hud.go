//go:build ebiten

package ui

import (
	"image/color"

	"changelist-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

// HUD renders a status panel to the right of the board.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	extra      []core.Parameter
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot. extra rows describe state owned by
// the caller, such as pacing.
func (h *HUD) Update(extra []core.Parameter) {
	if h == nil {
		return
	}
	h.extra = extra
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
		return
	}
	h.snapshot = core.ParameterSnapshot{}
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	heading := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	label := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	value := color.RGBA{R: 235, G: 235, B: 240, A: 255}

	y := panelPadding + lineHeight
	groups := append([]core.ParameterGroup(nil), h.snapshot.Groups...)
	if len(h.extra) > 0 {
		groups = append(groups, core.ParameterGroup{Name: "Driver", Params: h.extra})
	}
	for _, g := range groups {
		text.Draw(h.panel, g.Name, face, panelPadding, y, heading)
		y += lineHeight
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, label)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, value)
			y += lineHeight
		}
		y += lineHeight / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
