package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name      string
		model     string
		wantID    string
		wantCap   int
		wantSizes bool
		wantErr   bool
	}{
		{"fast", ModelFast, "gemini-2.5-flash-image", 3, false, false},
		{"pro", ModelPro, "gemini-3-pro-image-preview", 14, true, false},
		{"unknown", "banana-9000", "", 0, false, true},
		{"empty", "", "", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := resolveModel(tt.model)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, KindInvalidArgument, KindOf(err))
				assert.Contains(t, err.Error(), "unknown model")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, spec.id)
			assert.Equal(t, tt.wantCap, spec.maxInputs)
			assert.Equal(t, tt.wantSizes, spec.sizes)
		})
	}
}

func TestValidAspectRatio(t *testing.T) {
	for _, ratio := range AspectRatios {
		assert.True(t, validAspectRatio(ratio), "ratio %s should be valid", ratio)
	}
	assert.Len(t, AspectRatios, 10)

	assert.False(t, validAspectRatio("7:5"))
	assert.False(t, validAspectRatio(""))
	assert.False(t, validAspectRatio("1:1 "))
}

func TestValidImageSize(t *testing.T) {
	for _, size := range ImageSizes {
		assert.True(t, validImageSize(size), "size %s should be valid", size)
	}

	assert.False(t, validImageSize("8K"))
	assert.False(t, validImageSize("1k"))
	assert.False(t, validImageSize(""))
}
