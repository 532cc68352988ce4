// Package codec converts between encoded images and pixel buffers.
//
// The pipeline itself never touches the filesystem or an encoded image; this
// package owns both boundaries. Images come in through Open or a path-keyed
// Cache, are turned into buffers with FromImage, and are rendered back with
// ToImage, which is the single place channel values meet the displayable
// 0-255 range.
// EncodeResult and Save cover the outbound paths: base64 PNG payloads for
// tool results, files on disk for the batch command. Smooth offers optional
// Gaussian noise reduction on the decoded image before it enters the
// pipeline.
package codec
