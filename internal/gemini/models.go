package gemini

import "strings"

// Public model names exposed through the tool schemas.
const (
	// ModelFast is the fast, lower-resolution model. Up to 3 input
	// images; no image-size selector.
	ModelFast = "nano-banana"

	// ModelPro is the high-quality model. Up to 14 input images;
	// supports the 1K/2K/4K image-size selector.
	ModelPro = "nano-banana-pro"
)

// AspectRatios lists every aspect ratio the API accepts.
var AspectRatios = []string{
	"1:1", "2:3", "3:2", "3:4", "4:3", "4:5", "5:4", "9:16", "16:9", "21:9",
}

// ImageSizes lists the output resolutions selectable on the pro model.
var ImageSizes = []string{"1K", "2K", "4K"}

// modelSpec describes one backing model.
type modelSpec struct {
	// id is the model identifier sent to the API.
	id string

	// maxInputs caps the number of input images per request.
	maxInputs int

	// sizes reports whether the model honors the image-size selector.
	sizes bool
}

var models = map[string]modelSpec{
	ModelFast: {id: "gemini-2.5-flash-image", maxInputs: 3},
	ModelPro:  {id: "gemini-3-pro-image-preview", maxInputs: 14, sizes: true},
}

// resolveModel maps a public model name to its spec. An unknown name
// is an invalid-argument error; this always runs before any API call.
func resolveModel(name string) (modelSpec, error) {
	spec, ok := models[name]
	if !ok {
		return modelSpec{}, invalidArgf("unknown model %q (valid models: %s, %s)", name, ModelFast, ModelPro)
	}
	return spec, nil
}

func validAspectRatio(ratio string) bool {
	for _, r := range AspectRatios {
		if r == ratio {
			return true
		}
	}
	return false
}

func validImageSize(size string) bool {
	for _, s := range ImageSizes {
		if s == size {
			return true
		}
	}
	return false
}

func aspectRatioList() string { return strings.Join(AspectRatios, ", ") }

func imageSizeList() string { return strings.Join(ImageSizes, ", ") }
