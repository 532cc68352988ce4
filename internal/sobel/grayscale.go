package sobel

import "github.com/edgetools/sobel-mcp/internal/pixel"

// Grayscale converts src to grayscale using the ITU-R BT.601 luma weights.
//
// Every output pixel has all three channels set to the luminance
// 0.299*R + 0.587*G + 0.114*B of the corresponding input pixel. The value
// keeps its fractional part; nothing is rounded or clamped.
//
// Returns a new buffer of the same dimensions. src is not modified.
func Grayscale(src *pixel.Buffer) *pixel.Buffer {
	dst := pixel.NewLike(src)
	grayscaleRows(src, dst, 0, src.Height())
	return dst
}

// grayscaleRows converts rows y0 <= y < y1. Callers partition rows between
// goroutines; each row is written by exactly one of them.
func grayscaleRows(src, dst *pixel.Buffer, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < src.Width(); x++ {
			c := src.At(x, y)
			l := 0.299*c.R + 0.587*c.G + 0.114*c.B
			dst.Set(x, y, pixel.Gray(l))
		}
	}
}
