package sobel

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/edgetools/sobel-mcp/internal/pixel"
)

// Heatmap renders an edge-magnitude buffer as a false-color image.
//
// Magnitudes are normalized against the buffer's own maximum and mapped onto
// an HSV ramp from deep blue (weak) to red (strong), with brightness
// following the magnitude so regions without edges stay black. A buffer with
// no response at all comes back fully black.
//
// The output is a display buffer: its channels differ, unlike the gray
// buffers the pipeline stages exchange.
func Heatmap(edges *pixel.Buffer) *pixel.Buffer {
	maxM := maxIntensity(edges)

	dst := pixel.NewLike(edges)
	for y := 0; y < edges.Height(); y++ {
		for x := 0; x < edges.Width(); x++ {
			var t float64
			if maxM > 0 {
				t = edges.At(x, y).Intensity() / maxM
			}
			hue := 240 * (1 - t) // blue at zero response, red at the peak
			r, g, b := colorful.Hsv(hue, 1, t).RGB255()
			dst.Set(x, y, pixel.RGB{R: float64(r), G: float64(g), B: float64(b)})
		}
	}
	return dst
}

// maxIntensity returns the largest pixel intensity in b, or 0 for buffers
// with no positive response.
func maxIntensity(b *pixel.Buffer) float64 {
	var m float64
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if v := b.At(x, y).Intensity(); v > m {
				m = v
			}
		}
	}
	return m
}
