// Package sobel implements the edge detection pipeline: grayscale
// conversion, Sobel gradient filtering, magnitude combination, and
// side-by-side compositing, plus analysis helpers built on the results.
//
// All operations consume and produce pixel.Buffer values and perform no I/O.
// Decoding, encoding, and persistence belong to the codec package; the
// server and CLI decide what to do with each stage's output.
//
// # Stages
//
//  1. Grayscale: ITU-R BT.601 luminance (0.299*R + 0.587*G + 0.114*B)
//     replicated to all three channels. Fractional values are kept.
//
//  2. Gradient: the two fixed 3x3 Sobel masks over the grayscale buffer.
//     Each interior pixel becomes the weighted sum of its neighborhood
//     intensities, where intensity is floor((R+G+B)/3). The interior leaves
//     a one-pixel frame on the left and top and a two-pixel frame on the
//     right and bottom; frame pixels keep their grayscale values.
//
//  3. Magnitude: per-pixel floor(sqrt(h*h + v*v)) over the two gradient
//     buffers, which must agree in size.
//
//  4. Composite: the source and the edge map placed on one canvas, side by
//     side at matching heights.
//
// # Value Range
//
// Stages never clamp. Gradient responses span [-1020, 1020] for 8-bit
// sources and magnitudes exceed 255 on strong edges; values are reduced to
// the displayable range only when a buffer is encoded (see the codec
// package).
//
// # Concurrency
//
// The free functions are sequential and pure. Pipeline runs the same stage
// code with rows partitioned across goroutines and the two gradient filters
// in flight together; its results are identical to the sequential functions.
package sobel
