// Package pixel provides the in-memory pixel buffer that all edge detection
// stages consume and produce.
//
// A Buffer is a dense, row-major grid of RGB values with fixed positive
// dimensions. The coordinate system is 0-based with (0,0) at the top-left
// corner, X increasing rightward and Y increasing downward.
//
// # Channel Range
//
// Channels are float64 and deliberately unbounded. Pipeline stages produce
// values outside the displayable range (gradient sums go negative, luminance
// keeps its fractional part) and those values must survive intact between
// stages. Clamping to [0, 255] happens exactly once, when a buffer is encoded
// back to a standard image (see the codec package).
//
// # Error Handling
//
// Construction with non-positive dimensions fails with ErrInvalidDimensions.
// Access outside the buffer bounds is a programming error and panics with the
// offending coordinate; it is never silently wrapped or clamped.
package pixel
