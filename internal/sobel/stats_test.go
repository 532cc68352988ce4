package sobel

import "testing"

func TestStats_ZeroBuffer(t *testing.T) {
	edges := newBuffer(t, 4, 5)

	got := Stats(edges, 30)

	if got.Width != 4 || got.Height != 5 || got.TotalPixels != 20 {
		t.Errorf("shape: got %dx%d with %d pixels, want 4x5 with 20",
			got.Width, got.Height, got.TotalPixels)
	}
	if got.EdgePixels != 0 || got.EdgeRatio != 0 {
		t.Errorf("edges on zero buffer: got %d (ratio %v), want none",
			got.EdgePixels, got.EdgeRatio)
	}
	if got.MeanMagnitude != 0 || got.MaxMagnitude != 0 {
		t.Errorf("magnitudes on zero buffer: mean %v max %v, want 0",
			got.MeanMagnitude, got.MaxMagnitude)
	}
}

func TestStats_CountsThreshold(t *testing.T) {
	edges := grayBuffer(t, [][]float64{
		{0, 10, 20, 30},
		{40, 50, 0, 0},
	})

	got := Stats(edges, 30)

	// 30, 40 and 50 sit at or above the threshold.
	if got.EdgePixels != 3 {
		t.Errorf("EdgePixels: got %d, want 3", got.EdgePixels)
	}
	if want := 3.0 / 8.0; got.EdgeRatio != want {
		t.Errorf("EdgeRatio: got %v, want %v", got.EdgeRatio, want)
	}
	if got.MaxMagnitude != 50 {
		t.Errorf("MaxMagnitude: got %v, want 50", got.MaxMagnitude)
	}
	if want := 150.0 / 8.0; got.MeanMagnitude != want {
		t.Errorf("MeanMagnitude: got %v, want %v", got.MeanMagnitude, want)
	}
	if got.Threshold != 30 {
		t.Errorf("Threshold: got %v, want 30", got.Threshold)
	}
}
