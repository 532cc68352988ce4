package sobel

import "github.com/edgetools/sobel-mcp/internal/pixel"

// Gradient convolves the interior of src with the given Sobel mask.
//
// The output starts as a copy of src. Interior pixels, those with
// 1 <= x <= width-3 and 1 <= y <= height-3, are overwritten with the
// weighted sum of their 3x3 neighborhood intensities:
//
//	sum over di, dj in {-1, 0, 1} of Intensity(src(x+di, y+dj)) * k[dj+1][di+1]
//
// The sum lands in all three channels, unclamped: strong edges exceed 255
// and edges of the opposite polarity go negative.
//
// The interior stops two pixels short of the right and bottom edges, not
// one. The column x = width-2 and the row y = height-2 keep their input
// values even though their neighborhoods are fully in bounds, and the outer
// border passes through the same way, so the frame of the output is the
// source image rather than black. Buffers with width <= 3 or height <= 3
// have no interior at all and come back as a plain copy.
//
// Returns a new buffer of the same dimensions. src is not modified.
func Gradient(src *pixel.Buffer, k Kernel) *pixel.Buffer {
	dst := src.Clone()
	gradientRows(src, dst, k, 0, src.Height())
	return dst
}

// gradientRows overwrites the interior pixels of rows y0 <= y < y1 in dst,
// which callers prepare as a copy of src. Rows outside the interior band are
// untouched.
func gradientRows(src, dst *pixel.Buffer, k Kernel, y0, y1 int) {
	w := src.Width()
	lo := max(y0, 1)
	hi := min(y1, src.Height()-2) // last interior row is height-3
	for y := lo; y < hi; y++ {
		for x := 1; x <= w-3; x++ {
			dst.Set(x, y, pixel.Gray(convolve(src, k, x, y)))
		}
	}
}

// convolve computes the mask response for the neighborhood centered at (x, y).
//
// The offset grid and the mask advance together: each neighbor's weight is
// fixed by its (di, dj) position, so a neighbor skipped by the bounds guard
// contributes nothing and cannot shift a later neighbor onto the wrong
// weight. For interior centers every neighbor is in bounds and the guard
// never fires; it only matters for callers convolving at the border.
func convolve(src *pixel.Buffer, k Kernel, x, y int) float64 {
	var sum float64
	for dj := -1; dj <= 1; dj++ {
		for di := -1; di <= 1; di++ {
			if !src.InBounds(x+di, y+dj) {
				continue
			}
			sum += src.At(x+di, y+dj).Intensity() * float64(k.weight(di, dj))
		}
	}
	return sum
}
