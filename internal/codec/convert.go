package codec

import (
	"fmt"
	"image"
	"image/color"

	"github.com/edgetools/sobel-mcp/internal/pixel"
)

// FromImage decodes img into a pixel buffer.
//
// Each channel is reduced from the 16-bit range returned by RGBA to 8-bit
// and stored as a float64, so a freshly decoded buffer holds whole values in
// [0, 255]. The image's bounds offset is discarded; the buffer is always
// addressed from (0, 0).
//
// Parameters:
//   - img: the decoded image to convert
//
// Returns the buffer, or an error when the image has no pixels.
func FromImage(img image.Image) (*pixel.Buffer, error) {
	bounds := img.Bounds()
	buf, err := pixel.New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}

	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			buf.Set(x, y, pixel.RGB{
				R: float64(r >> 8),
				G: float64(g >> 8),
				B: float64(b >> 8),
			})
		}
	}

	return buf, nil
}

// ToImage renders buf as an 8-bit image.
//
// This is the one place channel values are forced into the displayable
// range: each float64 channel is truncated to an integer and clamped to
// [0, 255]. Buffers hold whatever the pipeline produced; out-of-range
// values only matter once they are rendered.
//
// Parameters:
//   - buf: the pixel buffer to render
//
// Returns an opaque NRGBA image of the same dimensions.
func ToImage(buf *pixel.Buffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width(), buf.Height()))
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := buf.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: clamp8(c.R),
				G: clamp8(c.G),
				B: clamp8(c.B),
				A: 255,
			})
		}
	}
	return img
}

// clamp8 truncates v to an integer and clamps it to the 8-bit range.
func clamp8(v float64) uint8 {
	n := int(v)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
