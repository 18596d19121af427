package oracle

import "gonum.org/v1/gonum/dsp/fourier"

// FFT steps a grid by convolving it with a weighted kernel in the frequency
// domain. Neighbors weigh 2 and the center 1, so a cell's sum s = 2n + alive
// lands in [5, 7] exactly when Conway's rule makes it live.
//
// The grid is embedded in a canvas one cell larger on every side, which keeps
// the circular convolution from wrapping live cells onto the far edge.
type FFT struct {
	w, h       int
	cols, rows int
	halfC      int
	normInv    float64

	realFFT  *fourier.FFT
	cmplxFFT *fourier.CmplxFFT

	kernelFreq []complex128
	freqBuf    []complex128
	colBuf     []complex128
	realBuf    []float64
}

// NewFFT prepares transforms and the kernel spectrum for a w×h grid.
func NewFFT(w, h int) *FFT {
	cols, rows := w+2, h+2
	halfC := cols/2 + 1
	f := &FFT{
		w:          w,
		h:          h,
		cols:       cols,
		rows:       rows,
		halfC:      halfC,
		normInv:    1 / float64(cols*rows),
		realFFT:    fourier.NewFFT(cols),
		cmplxFFT:   fourier.NewCmplxFFT(rows),
		kernelFreq: make([]complex128, rows*halfC),
		freqBuf:    make([]complex128, rows*halfC),
		colBuf:     make([]complex128, rows),
		realBuf:    make([]float64, cols),
	}

	kernel := make([]float64, rows*cols)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			weight := 2.0
			if dx == 0 && dy == 0 {
				weight = 1
			}
			ky := (dy + rows) % rows
			kx := (dx + cols) % cols
			kernel[ky*cols+kx] += weight
		}
	}
	for y := 0; y < rows; y++ {
		f.realFFT.Coefficients(f.kernelFreq[y*halfC:(y+1)*halfC], kernel[y*cols:(y+1)*cols])
	}
	f.columns(f.kernelFreq, false)
	return f
}

// Step writes the generation after src into dst.
func (f *FFT) Step(dst, src []uint8) {
	halfC := f.halfC
	for y := 0; y < f.rows; y++ {
		for x := range f.realBuf {
			f.realBuf[x] = 0
		}
		if y >= 1 && y <= f.h {
			row := src[(y-1)*f.w : y*f.w]
			for x, c := range row {
				f.realBuf[x+1] = float64(c)
			}
		}
		f.realFFT.Coefficients(f.freqBuf[y*halfC:(y+1)*halfC], f.realBuf)
	}
	f.columns(f.freqBuf, false)

	for i := range f.freqBuf {
		f.freqBuf[i] *= f.kernelFreq[i]
	}

	f.columns(f.freqBuf, true)
	for y := 1; y <= f.h; y++ {
		f.realFFT.Sequence(f.realBuf, f.freqBuf[y*halfC:(y+1)*halfC])
		out := dst[(y-1)*f.w : y*f.w]
		for x := range out {
			v := f.realBuf[x+1] * f.normInv
			out[x] = 0
			if v >= 4.5 && v <= 7.5 {
				out[x] = 1
			}
		}
	}
}

// columns runs the complex transform down every column of a rows×halfC
// spectrum, in place.
func (f *FFT) columns(buf []complex128, inverse bool) {
	for x := 0; x < f.halfC; x++ {
		for y := 0; y < f.rows; y++ {
			f.colBuf[y] = buf[y*f.halfC+x]
		}
		if inverse {
			f.cmplxFFT.Sequence(f.colBuf, f.colBuf)
		} else {
			f.cmplxFFT.Coefficients(f.colBuf, f.colBuf)
		}
		for y := 0; y < f.rows; y++ {
			buf[y*f.halfC+x] = f.colBuf[y]
		}
	}
}
