package sobel

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/edgetools/sobel-mcp/internal/pixel"
)

// Orientation renders the gradient direction at every pixel as a hue wheel.
//
// The direction is atan2(vertical response, horizontal response), the angle
// of the intensity gradient vector, mapped from (-pi, pi] onto the full
// 0-360 hue circle. Brightness follows the gradient magnitude normalized
// against the buffer's peak, so flat regions stay black and only real edges
// show their direction color.
//
// Both inputs must have identical dimensions; Orientation fails with
// ErrDimensionMismatch otherwise.
func Orientation(horizontal, vertical *pixel.Buffer) (*pixel.Buffer, error) {
	if err := sameSize(horizontal, vertical, "horizontal", "vertical"); err != nil {
		return nil, err
	}

	w, h := horizontal.Width(), horizontal.Height()

	var maxM float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gh := horizontal.At(x, y).Intensity()
			gv := vertical.At(x, y).Intensity()
			if m := math.Hypot(gh, gv); m > maxM {
				maxM = m
			}
		}
	}

	dst := pixel.NewLike(horizontal)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gh := horizontal.At(x, y).Intensity()
			gv := vertical.At(x, y).Intensity()

			var v float64
			if maxM > 0 {
				v = math.Hypot(gh, gv) / maxM
			}
			// atan2 reaches exactly pi, which would land on hue 360, past
			// the end of the Hsv ramp. The wheel is cyclic: wrap it to 0.
			hue := math.Mod((math.Atan2(gv, gh)+math.Pi)/(2*math.Pi)*360, 360)

			r, g, b := colorful.Hsv(hue, 1, v).RGB255()
			dst.Set(x, y, pixel.RGB{R: float64(r), G: float64(g), B: float64(b)})
		}
	}
	return dst, nil
}
