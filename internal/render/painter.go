//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter keeps one image with a pixel per visible cell and uploads the
// active cells of a board into it each frame.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit paints src into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, src ActiveSource, pal Palette, scale int) {
	size := src.Size()
	if size.W != gp.w || size.H != gp.h {
		return
	}
	fillActiveRGBA(gp.buf, src, pal)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
