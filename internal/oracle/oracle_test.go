package oracle

import (
	"slices"
	"testing"

	"changelist-life/internal/core"
)

func TestDirectBlinker(t *testing.T) {
	const w, h = 5, 5
	cur := make([]uint8, w*h)
	cur[1*w+2], cur[2*w+2], cur[3*w+2] = 1, 1, 1

	next := make([]uint8, w*h)
	Direct(next, cur, w, h)

	want := make([]uint8, w*h)
	want[2*w+1], want[2*w+2], want[2*w+3] = 1, 1, 1
	if !slices.Equal(next, want) {
		t.Fatalf("blinker did not rotate: %v", next)
	}
}

func TestDirectEdgesAreDead(t *testing.T) {
	// A blinker lying along the top edge loses the cells that would have
	// been born above the grid.
	const w, h = 3, 3
	cur := []uint8{
		1, 1, 1,
		0, 0, 0,
		0, 0, 0,
	}
	next := make([]uint8, w*h)
	Direct(next, cur, w, h)
	want := []uint8{
		0, 1, 0,
		0, 1, 0,
		0, 0, 0,
	}
	if !slices.Equal(next, want) {
		t.Fatalf("got %v, want %v", next, want)
	}
}

func TestFFTMatchesDirect(t *testing.T) {
	sizes := []core.Size{{W: 1, H: 1}, {W: 7, H: 4}, {W: 16, H: 16}, {W: 33, H: 20}}
	for _, size := range sizes {
		w, h := size.W, size.H
		rng := core.NewRNG(int64(w*100 + h))
		cur := make([]uint8, w*h)
		rng.FillDensity(cur, 0.35)

		fft := NewFFT(w, h)
		a := slices.Clone(cur)
		b := slices.Clone(cur)
		nextA := make([]uint8, w*h)
		nextB := make([]uint8, w*h)
		for gen := 0; gen < 20; gen++ {
			Direct(nextA, a, w, h)
			fft.Step(nextB, b)
			if !slices.Equal(nextA, nextB) {
				t.Fatalf("%dx%d diverged at generation %d", w, h, gen+1)
			}
			a, nextA = nextA, a
			b, nextB = nextB, b
		}
	}
}
