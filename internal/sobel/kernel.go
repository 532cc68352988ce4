package sobel

// Kernel is a fixed 3x3 convolution mask for the gradient filter.
//
// The weight for the neighbor at offset (di, dj) from the center pixel, with
// di the horizontal offset and dj the vertical offset, both in {-1, 0, 1},
// is Kernel[dj+1][di+1]: matrix rows follow the vertical offset, the way the
// masks are conventionally written. Weights are bound to offsets purely by
// position; the filter walks the offset grid and the mask in lockstep, so
// the pairing cannot drift even when a neighbor is skipped.
type Kernel [3][3]int

var (
	// Horizontal approximates the intensity gradient along X. It weights
	// the column left of the center -1, -2, -1 and the column to the right
	// +1, +2, +1, so vertical edges draw its strongest response.
	Horizontal = Kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	// Vertical approximates the intensity gradient along Y. It weights the
	// row above the center -1, -2, -1 and the row below +1, +2, +1, so
	// horizontal edges draw its strongest response.
	Vertical = Kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// weight returns the mask weight for the neighbor at offset (di, dj).
func (k Kernel) weight(di, dj int) int {
	return k[dj+1][di+1]
}
