package render

import (
	"image/color"

	"changelist-life/internal/core"
)

// ActiveSource is the read-only view of a board the renderers draw from.
// Only active cells are visited, never the whole grid.
type ActiveSource interface {
	Size() core.Size
	Layout() core.Layout
	EachActive(fn func(i int))
	IsAlive(i int) bool
}

// Palette holds the colors used to paint a board. A zero Active color leaves
// dead active cells painted as Off.
type Palette struct {
	On     color.RGBA
	Off    color.RGBA
	Active color.RGBA
}

// DefaultPalette paints live cells black on purple.
func DefaultPalette() Palette {
	return Palette{
		On:  color.RGBA{A: 255},
		Off: color.RGBA{R: 118, G: 26, B: 188, A: 255},
	}
}

// fillActiveRGBA paints src into buf, one RGBA pixel per visible cell. The
// background is cleared to Off and then only active cells are written.
func fillActiveRGBA(buf []byte, src ActiveSource, pal Palette) {
	size := src.Size()
	if len(buf) < 4*size.W*size.H {
		return
	}
	for i := 0; i < size.W*size.H; i++ {
		putRGBA(buf, i, pal.Off)
	}

	layout := src.Layout()
	showActive := pal.Active.A != 0
	src.EachActive(func(i int) {
		x, y := layout.Coords(i)
		px := (y-1)*size.W + (x - 1)
		switch {
		case src.IsAlive(i):
			putRGBA(buf, px, pal.On)
		case showActive:
			putRGBA(buf, px, pal.Active)
		}
	})
}

func putRGBA(buf []byte, px int, c color.RGBA) {
	base := px * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}
