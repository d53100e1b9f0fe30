package imagefile

import (
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPNG writes a solid-color PNG into dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{200, 120, 40, 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err, "failed to create test image")
	defer f.Close()

	require.NoError(t, png.Encode(f, img), "failed to encode test image")
	return path
}

func TestMIMEFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"png", "photo.png", "image/png"},
		{"jpg", "photo.jpg", "image/jpeg"},
		{"jpeg", "photo.jpeg", "image/jpeg"},
		{"gif", "anim.gif", "image/gif"},
		{"webp", "pic.webp", "image/webp"},
		{"uppercase png", "PHOTO.PNG", "image/png"},
		{"mixed case jpeg", "Photo.JpEg", "image/jpeg"},
		{"unknown extension", "scan.bmp", "image/png"},
		{"no extension", "rawfile", "image/png"},
		{"nested path", "/a/b/c/cat.webp", "image/webp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MIMEFromPath(tt.path))
		})
	}
}

func TestLoadInput(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "cat.png", 64, 48)

	in, err := LoadInput(path)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(in.Path), "Path should be absolute: %s", in.Path)
	assert.Equal(t, "cat.png", in.Name)
	assert.Equal(t, "image/png", in.MIMEType)
	assert.Equal(t, 64, in.Width)
	assert.Equal(t, 48, in.Height)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, raw, in.Bytes, "bytes should be read verbatim")
}

func TestLoadInput_NonExistent(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.png")

	_, err := LoadInput(missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), missing, "error should name the resolved absolute path")
}

func TestLoadInput_UndecodableStillLoads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	in, err := LoadInput(path)
	require.NoError(t, err, "undecodable content should still load")

	assert.Equal(t, "image/png", in.MIMEType)
	assert.Zero(t, in.Width)
	assert.Zero(t, in.Height)
	assert.Equal(t, []byte("not an image"), in.Bytes)
}

func TestInputImage_Describe(t *testing.T) {
	tests := []struct {
		name  string
		input InputImage
		want  string
	}{
		{
			"with dimensions",
			InputImage{Name: "cat.png", MIMEType: "image/png", Width: 1024, Height: 768},
			"cat.png (1024x768, image/png)",
		},
		{
			"without dimensions",
			InputImage{Name: "scan.webp", MIMEType: "image/webp"},
			"scan.webp (image/webp)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Describe())
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	data := []byte{0x89, 'P', 'N', 'G', 0x01, 0x02, 0x03}

	path, err := Save(dir, "out.png", data)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(path), "Save should return an absolute path: %s", path)
	assert.Equal(t, "out.png", filepath.Base(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, got, "saved bytes should round-trip unchanged")
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "nested", "out")

	path, err := Save(dir, "img.png", []byte("payload"))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), info.Size())
}
