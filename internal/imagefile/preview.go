package imagefile

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/disintegration/imaging"
)

const (
	// PreviewMaxDim bounds the longer edge of a preview image.
	PreviewMaxDim = 512

	// previewQuality is the JPEG quality used for previews. Previews
	// trade fidelity for size; the full-quality PNG is on disk.
	previewQuality = 75
)

// PreviewJPEG decodes image bytes, downscales the image to fit within
// maxDim on both axes (aspect ratio preserved, never upscaled), and
// re-encodes it as JPEG. A maxDim of 0 or less uses PreviewMaxDim.
func PreviewJPEG(data []byte, maxDim int) ([]byte, error) {
	if maxDim <= 0 {
		maxDim = PreviewMaxDim
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image for preview: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: previewQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}
	return buf.Bytes(), nil
}
