package sobel

import (
	"fmt"

	"github.com/edgetools/sobel-mcp/internal/pixel"
)

// SideBySide places two buffers next to each other on a single canvas.
//
// The canvas is (left.Width() + right.Width()) pixels wide and as tall as
// the inputs. left occupies the columns x < left.Width(); right occupies the
// remaining columns at the same y. Widths may differ freely; heights must
// match or the call fails with ErrDimensionMismatch.
func SideBySide(left, right *pixel.Buffer) (*pixel.Buffer, error) {
	if left.Height() != right.Height() {
		return nil, fmt.Errorf("%w: left %dx%d, right %dx%d", ErrDimensionMismatch,
			left.Width(), left.Height(), right.Width(), right.Height())
	}

	dst, err := pixel.New(left.Width()+right.Width(), left.Height())
	if err != nil {
		return nil, err
	}
	compositeRows(left, right, dst, 0, dst.Height())
	return dst, nil
}

// compositeRows copies rows y0 <= y < y1 of both sources onto dst.
func compositeRows(left, right, dst *pixel.Buffer, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < left.Width(); x++ {
			dst.Set(x, y, left.At(x, y))
		}
		for x := 0; x < right.Width(); x++ {
			dst.Set(left.Width()+x, y, right.At(x, y))
		}
	}
}
