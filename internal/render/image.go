package render

import "image"

// Framer turns boards into scaled images, reusing its buffers between calls.
type Framer struct {
	Palette Palette
	Scale   int

	cells []byte
	img   *image.RGBA
}

// NewFramer returns a Framer drawing each cell as a scale×scale square.
func NewFramer(pal Palette, scale int) *Framer {
	if scale <= 0 {
		scale = 1
	}
	return &Framer{Palette: pal, Scale: scale}
}

// Frame paints src and returns the image. The image is overwritten by the
// next call.
func (f *Framer) Frame(src ActiveSource) *image.RGBA {
	size := src.Size()
	if len(f.cells) != 4*size.W*size.H {
		f.cells = make([]byte, 4*size.W*size.H)
	}
	w, h := size.W*f.Scale, size.H*f.Scale
	if f.img == nil || f.img.Rect.Dx() != w || f.img.Rect.Dy() != h {
		f.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	fillActiveRGBA(f.cells, src, f.Palette)

	for y := 0; y < h; y++ {
		srcRow := (y / f.Scale) * size.W
		dst := f.img.Pix[y*f.img.Stride : y*f.img.Stride+4*w]
		for x := 0; x < w; x++ {
			s := (srcRow + x/f.Scale) * 4
			copy(dst[x*4:x*4+4], f.cells[s:s+4])
		}
	}
	return f.img
}
