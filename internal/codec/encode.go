package codec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/edgetools/sobel-mcp/internal/pixel"
)

// ImageResult contains a rendered buffer as an inline PNG payload
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodeResult renders a buffer as a base64 PNG for a tool response.
// A scale other than 1.0 resizes the rendered image with Lanczos resampling.
func EncodeResult(buf *pixel.Buffer, scale float64) (*ImageResult, error) {
	rendered := ToImage(buf)

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(rendered.Bounds().Dx()) * scale)
		newHeight := int(float64(rendered.Bounds().Dy()) * scale)
		rendered = imaging.Resize(rendered, newWidth, newHeight, imaging.Lanczos)
	}

	var data bytes.Buffer
	if err := png.Encode(&data, rendered); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &ImageResult{
		Width:       rendered.Bounds().Dx(),
		Height:      rendered.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(data.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save renders a buffer and writes it to path. The output format is chosen
// by file extension; unsupported extensions are an error.
func Save(buf *pixel.Buffer, path string) error {
	if err := imaging.Save(ToImage(buf), path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
