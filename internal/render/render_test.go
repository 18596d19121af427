package render

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"changelist-life/internal/patterns"
	"changelist-life/internal/sims/life"
)

func blinkerBoard(t *testing.T) *life.Life {
	t.Helper()
	l, err := life.New(5, 4)
	if err != nil {
		t.Fatal(err)
	}
	p, err := patterns.Parse("blinker", strings.NewReader("OOO"))
	if err != nil {
		t.Fatal(err)
	}
	if err := l.LoadPattern(p, 2, 2); err != nil {
		t.Fatal(err)
	}
	return l
}

func pixel(buf []byte, w, x, y int) color.RGBA {
	base := (y*w + x) * 4
	return color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}

func TestFillActiveRGBA(t *testing.T) {
	l := blinkerBoard(t)
	pal := Palette{
		On:     color.RGBA{R: 255, A: 255},
		Off:    color.RGBA{B: 255, A: 255},
		Active: color.RGBA{G: 255, A: 255},
	}
	buf := make([]byte, 4*5*4)
	fillActiveRGBA(buf, l, pal)

	// Board cell (2,2) is pixel (1,1).
	if got := pixel(buf, 5, 1, 1); got != pal.On {
		t.Fatalf("live pixel = %v", got)
	}
	if got := pixel(buf, 5, 0, 0); got != pal.Active {
		t.Fatalf("dead active pixel = %v", got)
	}
	if got := pixel(buf, 5, 4, 2); got != pal.Active {
		t.Fatalf("pixel (4,2) should be active, got %v", got)
	}
	if got := pixel(buf, 5, 0, 3); got != pal.Off {
		t.Fatalf("pixel (0,3) is not active, got %v", got)
	}

	pal.Active = color.RGBA{}
	fillActiveRGBA(buf, l, pal)
	if got := pixel(buf, 5, 0, 0); got != pal.Off {
		t.Fatalf("without an active tint dead cells should be Off, got %v", got)
	}
}

func TestFramerScales(t *testing.T) {
	l := blinkerBoard(t)
	f := NewFramer(DefaultPalette(), 3)
	img := f.Frame(l)
	if img.Rect.Dx() != 15 || img.Rect.Dy() != 12 {
		t.Fatalf("frame size = %v", img.Rect)
	}
	on := DefaultPalette().On
	for _, p := range [][2]int{{3, 3}, {5, 5}, {11, 4}} {
		if got := img.RGBAAt(p[0], p[1]); got != on {
			t.Fatalf("pixel %v = %v, want live color", p, got)
		}
	}
	if got := img.RGBAAt(0, 0); got != DefaultPalette().Off {
		t.Fatalf("pixel (0,0) = %v, want background", got)
	}
	if f.Frame(l) != img {
		t.Fatal("Framer should reuse its image")
	}
}

func TestRecorder(t *testing.T) {
	l := blinkerBoard(t)
	path := filepath.Join(t.TempDir(), "run.avi")
	rec, err := NewRecorder(path, 5, 4, 4, 10, DefaultPalette())
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := rec.AddFrame(l); err != nil {
			t.Fatalf("AddFrame: %v", err)
		}
		l.Step()
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if rec.Frames() != 3 {
		t.Fatalf("Frames() = %d", rec.Frames())
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("recording missing or empty: %v", err)
	}
}
