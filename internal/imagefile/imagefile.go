package imagefile

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// MIMEFromPath maps a file path to the MIME type implied by its
// extension.
//
// The mapping is a small closed table:
//   - ".png"           -> "image/png"
//   - ".jpg", ".jpeg"  -> "image/jpeg"
//   - ".gif"           -> "image/gif"
//   - ".webp"          -> "image/webp"
//
// Any other extension (including none) falls back to "image/png".
// Matching is case-insensitive, so ".PNG" and ".png" are equivalent.
// File contents are never inspected.
func MIMEFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}

// InputImage is an input file loaded into memory, ready to be attached
// to a generation request.
type InputImage struct {
	// Path is the resolved absolute path the bytes were read from.
	Path string

	// Name is the base name of the file, used in summaries.
	Name string

	// Bytes is the raw file content.
	Bytes []byte

	// MIMEType is derived from the file extension via MIMEFromPath.
	MIMEType string

	// Width and Height come from the image header. Both are zero when
	// the header could not be decoded; loading still succeeds.
	Width  int
	Height int
}

// Describe returns a one-line human-readable summary of the input,
// e.g. "cat.png (1024x768, image/png)". Dimensions are omitted when
// they were not probed.
func (in *InputImage) Describe() string {
	if in.Width > 0 && in.Height > 0 {
		return fmt.Sprintf("%s (%dx%d, %s)", in.Name, in.Width, in.Height, in.MIMEType)
	}
	return fmt.Sprintf("%s (%s)", in.Name, in.MIMEType)
}

// LoadInput reads an input image from disk.
//
// Parameters:
//   - path: Absolute or relative path to the image file. Relative
//     paths are resolved against the current working directory.
//
// Returns:
//   - *InputImage: The loaded image with path, bytes, MIME type, and
//     best-effort dimensions filled in.
//   - error: Non-nil if the file does not exist or cannot be read.
//     A missing file reports the resolved absolute path and satisfies
//     errors.Is(err, fs.ErrNotExist).
//
// The file's bytes are passed through untouched; no re-encoding or
// normalization happens here. Dimension probing decodes only the image
// header and never fails the load.
func LoadInput(path string) (*InputImage, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %q: %w", path, err)
	}

	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input image not found: %s: %w", abs, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to stat input image %s: %w", abs, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read input image %s: %w", abs, err)
	}

	in := &InputImage{
		Path:     abs,
		Name:     filepath.Base(abs),
		Bytes:    data,
		MIMEType: MIMEFromPath(abs),
	}

	// Best effort: a header that fails to decode leaves Width/Height zero.
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		in.Width = cfg.Width
		in.Height = cfg.Height
	}

	return in, nil
}

// Save writes generated image bytes into dir under the given file
// name, creating dir first if needed.
//
// Parameters:
//   - dir: Output directory. Created (with parents) if absent.
//   - name: File name inside dir. The caller controls the extension.
//   - data: Raw image bytes, written verbatim.
//
// Returns:
//   - string: The absolute path of the written file.
//   - error: Non-nil if the directory cannot be created or the write
//     fails.
func Save(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
