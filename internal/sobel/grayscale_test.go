package sobel

import (
	"math"
	"testing"

	"github.com/edgetools/sobel-mcp/internal/pixel"
)

func TestGrayscale(t *testing.T) {
	src := newBuffer(t, 2, 2)
	src.Set(0, 0, pixel.RGB{R: 255})
	src.Set(1, 0, pixel.RGB{G: 255})
	src.Set(0, 1, pixel.RGB{B: 255})
	src.Set(1, 1, pixel.RGB{R: 10, G: 20, B: 30})

	got := Grayscale(src)

	if !got.SameSize(src) {
		t.Fatalf("dimensions: got %dx%d, want 2x2", got.Width(), got.Height())
	}

	tests := []struct {
		x, y int
		want float64
	}{
		{0, 0, 0.299 * 255},
		{1, 0, 0.587 * 255},
		{0, 1, 0.114 * 255},
		{1, 1, 0.299*10 + 0.587*20 + 0.114*30},
	}

	for _, tt := range tests {
		c := got.At(tt.x, tt.y)
		if c.R != c.G || c.G != c.B {
			t.Errorf("At(%d,%d): channels differ: %+v", tt.x, tt.y, c)
		}
		if math.Abs(c.R-tt.want) > 1e-9 {
			t.Errorf("At(%d,%d): got %v, want %v", tt.x, tt.y, c.R, tt.want)
		}
	}
}

func TestGrayscale_KeepsFraction(t *testing.T) {
	src := newBuffer(t, 1, 1)
	src.Set(0, 0, pixel.RGB{R: 1})

	got := Grayscale(src).At(0, 0)
	if math.Abs(got.R-0.299) > 1e-9 {
		t.Errorf("luminance: got %v, want 0.299", got.R)
	}
}

func TestGrayscale_Idempotent(t *testing.T) {
	src := newBuffer(t, 3, 2)
	src.Set(0, 0, pixel.RGB{R: 200, G: 30, B: 90})
	src.Set(1, 0, pixel.RGB{R: 7, G: 255, B: 0})
	src.Set(2, 0, pixel.RGB{R: 64, G: 64, B: 64})
	src.Set(0, 1, pixel.RGB{R: 255, G: 255, B: 255})
	src.Set(1, 1, pixel.RGB{R: 1, G: 2, B: 3})

	once := Grayscale(src)
	twice := Grayscale(once)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			a, b := once.At(x, y), twice.At(x, y)
			if math.Abs(a.R-b.R) > 1e-9 {
				t.Errorf("At(%d,%d): second pass changed %v to %v", x, y, a.R, b.R)
			}
		}
	}
}

func TestGrayscale_SourceUnmodified(t *testing.T) {
	src := newBuffer(t, 1, 1)
	src.Set(0, 0, pixel.RGB{R: 50, G: 100, B: 150})

	Grayscale(src)

	if got := src.At(0, 0); got != (pixel.RGB{R: 50, G: 100, B: 150}) {
		t.Errorf("source modified: %+v", got)
	}
}
