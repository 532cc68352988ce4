package sobel

import (
	"errors"
	"fmt"
	"math"

	"github.com/edgetools/sobel-mcp/internal/pixel"
)

// ErrDimensionMismatch reports an operation over buffers whose dimensions
// are required to agree but do not.
var ErrDimensionMismatch = errors.New("buffer dimensions do not match")

// Magnitude combines a horizontal and a vertical gradient buffer into one
// edge-magnitude buffer.
//
// For every pixel the two gradient responses are reduced to intensities and
// combined as floor(sqrt(h*h + v*v)), stored in all three channels of a fresh
// buffer. Every pixel is combined, border pixels included: the gradient
// filters leave grayscale values on the frame, so a frame pixel with equal
// intensity v in both inputs comes out as floor(v * sqrt(2)).
//
// Returns ErrDimensionMismatch, wrapped with both sizes, if the buffers
// differ in width or height.
func Magnitude(horizontal, vertical *pixel.Buffer) (*pixel.Buffer, error) {
	if err := sameSize(horizontal, vertical, "horizontal", "vertical"); err != nil {
		return nil, err
	}

	dst := pixel.NewLike(horizontal)
	magnitudeRows(horizontal, vertical, dst, 0, dst.Height())
	return dst, nil
}

// magnitudeRows combines rows y0 <= y < y1.
func magnitudeRows(horizontal, vertical, dst *pixel.Buffer, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < dst.Width(); x++ {
			h := horizontal.At(x, y).Intensity()
			v := vertical.At(x, y).Intensity()
			m := math.Floor(math.Sqrt(h*h + v*v))
			dst.Set(x, y, pixel.Gray(m))
		}
	}
}

// sameSize returns ErrDimensionMismatch describing both buffers unless their
// dimensions agree exactly.
func sameSize(a, b *pixel.Buffer, aName, bName string) error {
	if !a.SameSize(b) {
		return fmt.Errorf("%w: %s %dx%d, %s %dx%d", ErrDimensionMismatch,
			aName, a.Width(), a.Height(), bName, b.Width(), b.Height())
	}
	return nil
}
