package sobel

import "github.com/edgetools/sobel-mcp/internal/pixel"

// EdgeStats summarizes the magnitude distribution of an edge buffer.
//
// The counts treat a pixel as an edge when its intensity is at or above the
// threshold the caller analyzed with.
type EdgeStats struct {
	// Width and Height of the analyzed buffer in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Threshold is the magnitude at or above which a pixel counts as an edge.
	Threshold float64 `json:"threshold"`

	// EdgePixels is the number of pixels at or above Threshold.
	EdgePixels int `json:"edge_pixels"`

	// TotalPixels is Width * Height.
	TotalPixels int `json:"total_pixels"`

	// EdgeRatio is EdgePixels divided by TotalPixels, in [0, 1].
	EdgeRatio float64 `json:"edge_ratio"`

	// MeanMagnitude is the average intensity over all pixels.
	MeanMagnitude float64 `json:"mean_magnitude"`

	// MaxMagnitude is the largest intensity found.
	MaxMagnitude float64 `json:"max_magnitude"`
}

// Stats analyzes an edge-magnitude buffer.
//
// Each pixel is reduced to its intensity and compared against threshold.
// Stats is meant for magnitude buffers, whose intensities are non-negative;
// it reports any buffer faithfully but a negative mean on a raw gradient
// buffer is rarely what a caller wants.
func Stats(edges *pixel.Buffer, threshold float64) *EdgeStats {
	var sum, maxM float64
	count := 0
	for y := 0; y < edges.Height(); y++ {
		for x := 0; x < edges.Width(); x++ {
			m := edges.At(x, y).Intensity()
			sum += m
			if m > maxM {
				maxM = m
			}
			if m >= threshold {
				count++
			}
		}
	}

	total := edges.Width() * edges.Height()
	return &EdgeStats{
		Width:         edges.Width(),
		Height:        edges.Height(),
		Threshold:     threshold,
		EdgePixels:    count,
		TotalPixels:   total,
		EdgeRatio:     float64(count) / float64(total),
		MeanMagnitude: sum / float64(total),
		MaxMagnitude:  maxM,
	}
}
