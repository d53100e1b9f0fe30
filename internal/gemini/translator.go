package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"nano-banana-mcp/internal/imagefile"
)

// ContentGenerator is the slice of the genai client the translator
// depends on. *genai.Models satisfies it; tests substitute a fake.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Request carries the caller-supplied arguments of one operation.
// Empty fields mean "not supplied"; defaulting happens per operation.
type Request struct {
	Prompt       string
	Model        string
	AspectRatio  string
	ImageSize    string
	InputPaths   []string
	FilenameStem string
}

// Result is the outcome of a successful operation.
type Result struct {
	// SavedPath is the absolute path of the written PNG.
	SavedPath string

	// Text is the model's textual commentary, one fragment per line.
	// Empty when the response carried no text parts.
	Text string

	// Model is the public model name the request ran with.
	Model string

	// AspectRatio and ImageSize are the values sent to the API.
	// Either may be empty when it was omitted from the config.
	AspectRatio string
	ImageSize   string

	// Inputs are the loaded input images, in request order.
	Inputs []*imagefile.InputImage
}

// operation captures how one of the three operations validates and
// defaults its arguments. The pipeline itself is shared.
type operation struct {
	name          string
	prefix        string // output-stem prefix
	defaultModel  string
	defaultAspect string // "" = no implicit aspect ratio
	proSize       string // image-size default on the pro model
	// sizeNeedsAspect withholds the image size unless the caller
	// explicitly chose an aspect ratio.
	sizeNeedsAspect bool
}

var (
	opGenerate = operation{
		name:          "generate",
		prefix:        "generated",
		defaultModel:  ModelFast,
		defaultAspect: "1:1",
		proSize:       "1K",
	}
	opEdit = operation{
		name:            "edit",
		prefix:          "edited",
		defaultModel:    ModelFast,
		proSize:         "1K",
		sizeNeedsAspect: true,
	}
	opCompose = operation{
		name:          "compose",
		prefix:        "composed",
		defaultModel:  ModelPro,
		defaultAspect: "1:1",
		proSize:       "2K",
	}
)

// Translator turns requests into Gemini API calls and API responses
// into files on disk. It holds no per-call state.
type Translator struct {
	gen       ContentGenerator
	outputDir string
	now       func() time.Time
}

// New builds a Translator that calls gen and writes images into
// outputDir.
func New(gen ContentGenerator, outputDir string) *Translator {
	return &Translator{gen: gen, outputDir: outputDir, now: time.Now}
}

// Generate runs a text-to-image request. It takes no input images.
func (t *Translator) Generate(ctx context.Context, req Request) (*Result, error) {
	return t.run(ctx, opGenerate, req)
}

// Edit runs a single-image edit. Exactly one input image is required.
func (t *Translator) Edit(ctx context.Context, req Request) (*Result, error) {
	return t.run(ctx, opEdit, req)
}

// Compose combines 2-14 input images into one. The fast model caps
// inputs at 3.
func (t *Translator) Compose(ctx context.Context, req Request) (*Result, error) {
	return t.run(ctx, opCompose, req)
}

// run is the shared pipeline: validate, load inputs, build the call,
// invoke the API, extract the response. Validation completes before
// any network traffic.
func (t *Translator) run(ctx context.Context, op operation, req Request) (*Result, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, invalidArgf("prompt must not be empty")
	}

	modelName := req.Model
	if modelName == "" {
		modelName = op.defaultModel
	}
	spec, err := resolveModel(modelName)
	if err != nil {
		return nil, err
	}

	if err := validateCount(op, modelName, spec, len(req.InputPaths)); err != nil {
		return nil, err
	}
	if req.AspectRatio != "" && !validAspectRatio(req.AspectRatio) {
		return nil, invalidArgf("unsupported aspect ratio %q (valid: %s)", req.AspectRatio, aspectRatioList())
	}
	if req.ImageSize != "" && !validImageSize(req.ImageSize) {
		return nil, invalidArgf("unsupported image size %q (valid: %s)", req.ImageSize, imageSizeList())
	}
	if err := validateStem(req.FilenameStem); err != nil {
		return nil, err
	}

	inputs, err := loadInputs(req.InputPaths)
	if err != nil {
		return nil, err
	}

	aspect := req.AspectRatio
	if aspect == "" {
		aspect = op.defaultAspect
	}

	size := ""
	if spec.sizes && !(op.sizeNeedsAspect && req.AspectRatio == "") {
		size = req.ImageSize
		if size == "" {
			size = op.proSize
		}
	}

	contents := buildContents(req.Prompt, inputs)
	config := buildConfig(aspect, size)

	resp, err := t.gen.GenerateContent(ctx, spec.id, contents, config)
	if err != nil {
		return nil, upstreamFailure(err)
	}

	stem := req.FilenameStem
	if stem == "" {
		stem = defaultStem(op.prefix, t.now())
	}

	savedPath, text, err := t.extract(resp, stem)
	if err != nil {
		return nil, err
	}

	return &Result{
		SavedPath:   savedPath,
		Text:        text,
		Model:       modelName,
		AspectRatio: aspect,
		ImageSize:   size,
		Inputs:      inputs,
	}, nil
}

// validateCount enforces the per-operation input bounds and the
// model's input cap.
func validateCount(op operation, modelName string, spec modelSpec, n int) error {
	switch op.name {
	case "generate":
		if n != 0 {
			return invalidArgf("generate takes no input images, got %d", n)
		}
	case "edit":
		if n != 1 {
			return invalidArgf("edit requires exactly one input image, got %d", n)
		}
	case "compose":
		if n < 2 {
			return invalidArgf("compose requires at least 2 input images, got %d", n)
		}
	}
	if n > spec.maxInputs {
		return invalidArgf("%s supports up to %d input images, got %d", modelName, spec.maxInputs, n)
	}
	return nil
}

// validateStem rejects output stems that could name anything outside
// the output directory.
func validateStem(stem string) error {
	if stem == "" {
		return nil
	}
	if strings.ContainsAny(stem, `/\`) || strings.Contains(stem, "..") {
		return invalidArgf("filename %q must be a bare name without path separators", stem)
	}
	return nil
}

// loadInputs reads every input image in request order. The first
// failure aborts the load; a missing file reports its resolved
// absolute path.
func loadInputs(paths []string) ([]*imagefile.InputImage, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	inputs := make([]*imagefile.InputImage, 0, len(paths))
	for _, p := range paths {
		in, err := imagefile.LoadInput(p)
		if err != nil {
			return nil, invalidArg(err)
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// buildContents assembles the ordered parts for one request: input
// images first, prompt text last.
func buildContents(prompt string, inputs []*imagefile.InputImage) []*genai.Content {
	parts := make([]*genai.Part, 0, len(inputs)+1)
	for _, in := range inputs {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: in.MIMEType, Data: in.Bytes},
		})
	}
	parts = append(parts, &genai.Part{Text: prompt})

	return []*genai.Content{{Parts: parts, Role: genai.RoleUser}}
}

// buildConfig builds the generation config. Both response modalities
// are always requested; the image config is attached only when at
// least one of aspect/size is in effect.
func buildConfig(aspect, size string) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}
	if aspect != "" || size != "" {
		config.ImageConfig = &genai.ImageConfig{
			AspectRatio: aspect,
			ImageSize:   size,
		}
	}
	return config
}

// extract walks the response parts in order, accumulating text and
// saving image bytes as {stem}.png. Later image parts overwrite
// earlier ones; a response with no image part is a generation failure.
func (t *Translator) extract(resp *genai.GenerateContentResponse, stem string) (savedPath, text string, err error) {
	if resp == nil {
		return "", "", generationFailed("the model returned no image data")
	}

	var sb strings.Builder

	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			if part.Text != "" {
				sb.WriteString(part.Text)
				sb.WriteByte('\n')
			}
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				path, saveErr := imagefile.Save(t.outputDir, stem+".png", part.InlineData.Data)
				if saveErr != nil {
					return "", "", fmt.Errorf("failed to save generated image: %w", saveErr)
				}
				savedPath = path
			}
		}
	}

	if savedPath == "" {
		return "", "", generationFailed("the model returned no image data")
	}
	return savedPath, sb.String(), nil
}

const stampLayout = "2006-01-02T15:04:05.000Z"

var stampCleaner = strings.NewReplacer(":", "-", ".", "-")

// defaultStem names the output file when the caller did not:
// {prefix}_{UTC timestamp}, with ':' and '.' replaced by '-' so the
// name is portable across filesystems.
func defaultStem(prefix string, now time.Time) string {
	return prefix + "_" + stampCleaner.Replace(now.UTC().Format(stampLayout))
}
