//go:build ebiten

package ui

import (
	"image/color"

	"changelist-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay tints the dead cells of the active set so the region the
// simulation is actually evaluating can be seen. Key 1 toggles it.
type Overlay struct {
	src     render.ActiveSource
	scale   int
	show    bool
	painter *render.GridPainter
	palette render.Palette
}

// NewOverlay constructs an overlay for src drawn at scale.
func NewOverlay(src render.ActiveSource, scale int) *Overlay {
	size := src.Size()
	return &Overlay{
		src:     src,
		scale:   scale,
		painter: render.NewGridPainter(size.W, size.H),
		// WritePixels takes premultiplied alpha.
		palette: render.Palette{Active: color.RGBA{R: 22, G: 88, B: 49, A: 140}},
	}
}

// Visible reports whether the overlay is shown.
func (o *Overlay) Visible() bool { return o.show }

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	o.painter.Blit(screen, o.src, o.palette, scale)
}
