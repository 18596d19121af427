package core

// Layout maps padded grid coordinates onto a flat row-major buffer. A frame
// one cell thick surrounds the W×H visible region, so every visible cell has
// all eight neighbors inside the buffer.
//
// Padded coordinates run over [0, Stride) × [0, Rows); the visible region is
// [1, W] × [1, H].
type Layout struct {
	W, H   int
	Stride int
	Rows   int

	border []bool
}

// NewLayout computes the padded layout for a visible region of w×h cells.
// Callers validate that both dimensions are positive.
func NewLayout(w, h int) Layout {
	l := Layout{W: w, H: h, Stride: w + 2, Rows: h + 2}
	size := l.Len()
	l.border = make([]bool, size)
	for i := range l.border {
		col := i % l.Stride
		l.border[i] = i < l.Stride || i >= size-l.Stride || col == 0 || col == l.Stride-1
	}
	return l
}

// Len returns the number of cells in the padded buffer.
func (l Layout) Len() int { return l.Stride * l.Rows }

// Index returns the linear index for padded coordinates (x, y).
func (l Layout) Index(x, y int) int { return x + y*l.Stride }

// Coords converts a linear index back to padded coordinates.
func (l Layout) Coords(i int) (int, int) { return i % l.Stride, i / l.Stride }

// InBuffer reports whether (x, y) addresses a cell of the padded buffer.
func (l Layout) InBuffer(x, y int) bool {
	return x >= 0 && x < l.Stride && y >= 0 && y < l.Rows
}

// Visible reports whether (x, y) lies inside the visible region.
func (l Layout) Visible(x, y int) bool {
	return x >= 1 && x <= l.W && y >= 1 && y <= l.H
}

// IsBorder reports whether index i belongs to the sentinel frame.
func (l Layout) IsBorder(i int) bool { return l.border[i] }

// BorderIndices lists the frame indices in ascending order.
func (l Layout) BorderIndices() []int {
	out := make([]int, 0, 2*l.Stride+2*(l.Rows-2))
	for i, b := range l.border {
		if b {
			out = append(out, i)
		}
	}
	return out
}

// Offsets returns the eight neighbor offsets in reading order: the row above,
// left and right, then the row below.
func (l Layout) Offsets() [8]int {
	w := l.Stride
	return [8]int{
		-1 - w, -w, 1 - w,
		-1, 1,
		-1 + w, w, 1 + w,
	}
}
