package pixel

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimensions reports an attempt to construct a buffer whose width
// or height is not strictly positive.
var ErrInvalidDimensions = errors.New("invalid buffer dimensions")

// RGB is a single pixel value with red, green, and blue channels.
//
// Channels carry float64 values and are not restricted to [0, 255]:
// intermediate stages of the pipeline legitimately produce negative and
// fractional values, and truncating them here would corrupt later stages.
type RGB struct {
	R, G, B float64
}

// Gray returns a pixel with all three channels set to v.
//
// Pipeline stages that compute a single scalar per pixel (gradient response,
// edge magnitude) store it through Gray so the result remains an ordinary
// RGB buffer.
func Gray(v float64) RGB {
	return RGB{R: v, G: v, B: v}
}

// Intensity reduces the pixel to one scalar: the integer average of the three
// channels, computed as floor((R+G+B)/3).
//
// This is the reduction the gradient and magnitude stages apply to every
// neighborhood pixel before weighting. The floor matters: grayscale values
// keep their fractional part, and the average must discard it the same way
// on every pixel for the filter responses to be reproducible.
func (c RGB) Intensity() float64 {
	return math.Floor((c.R + c.G + c.B) / 3)
}

// Buffer is a dense, row-major grid of RGB pixels with fixed dimensions.
//
// Every coordinate with 0 <= x < Width() and 0 <= y < Height() holds exactly
// one pixel value. Buffers do not share storage: Clone and the pipeline
// stages always allocate fresh backing slices, so writing to one buffer never
// mutates another.
//
// # Access Semantics
//
// At and Set are bounds-checked. An out-of-range coordinate is a bug in the
// caller, not a recoverable condition, so both panic with the coordinate and
// the buffer size rather than wrapping, clamping, or returning a zero value.
//
// # Concurrency
//
// A Buffer has no internal locking. Concurrent reads are safe; the pipeline
// partitions rows between goroutines so that no two writers touch the same
// pixel and readers only see buffers from completed stages.
type Buffer struct {
	width  int
	height int
	pix    []RGB
}

// New creates a buffer of the given size with all pixels zero.
//
// Parameters:
//   - width: Buffer width in pixels. Must be >= 1.
//   - height: Buffer height in pixels. Must be >= 1.
//
// Returns:
//   - *Buffer: The new buffer.
//   - error: ErrInvalidDimensions (wrapped with the requested size) if either
//     dimension is zero or negative.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}, nil
}

// NewLike creates a zeroed buffer with the same dimensions as src.
//
// Because src already holds validated dimensions, NewLike cannot fail. Stages
// that derive an output from an existing input use this instead of New to
// avoid an error path that is impossible by construction.
func NewLike(src *Buffer) *Buffer {
	return &Buffer{
		width:  src.width,
		height: src.height,
		pix:    make([]RGB, len(src.pix)),
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// InBounds reports whether (x, y) addresses a pixel inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the pixel at (x, y). It panics if the coordinate is out of range.
func (b *Buffer) At(x, y int) RGB {
	b.check(x, y)
	return b.pix[y*b.width+x]
}

// Set stores c at (x, y). It panics if the coordinate is out of range.
func (b *Buffer) Set(x, y int, c RGB) {
	b.check(x, y)
	b.pix[y*b.width+x] = c
}

func (b *Buffer) check(x, y int) {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("pixel: coordinate (%d,%d) out of range for %dx%d buffer", x, y, b.width, b.height))
	}
}

// Clone returns a deep copy of the buffer. The copy shares no storage with
// the original.
func (b *Buffer) Clone() *Buffer {
	out := NewLike(b)
	copy(out.pix, b.pix)
	return out
}

// Fill sets every pixel in the buffer to c.
func (b *Buffer) Fill(c RGB) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// SameSize reports whether b and o have identical dimensions.
func (b *Buffer) SameSize(o *Buffer) bool {
	return b.width == o.width && b.height == o.height
}
