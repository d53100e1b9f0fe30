package server

import (
	"encoding/json"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"nano-banana-mcp/internal/gemini"
)

// Tool names as registered with the MCP server.
const (
	toolGenerate = "generate_image"
	toolEdit     = "edit_image"
	toolCompose  = "compose_images"
)

// generateArgs are the arguments of generate_image.
type generateArgs struct {
	Prompt      string `json:"prompt" jsonschema:"Text description of the image to generate"`
	Model       string `json:"model,omitempty" jsonschema:"Model to use: nano-banana (fast) or nano-banana-pro (higher quality, supports image_size)"`
	AspectRatio string `json:"aspect_ratio,omitempty" jsonschema:"Aspect ratio of the generated image, defaults to 1:1"`
	ImageSize   string `json:"image_size,omitempty" jsonschema:"Output resolution, nano-banana-pro only: 1K, 2K or 4K"`
	Filename    string `json:"filename,omitempty" jsonschema:"Output file name without extension; defaults to a timestamped name"`
}

// editArgs are the arguments of edit_image.
type editArgs struct {
	Prompt      string `json:"prompt" jsonschema:"Text description of the edit to apply"`
	ImagePath   string `json:"image_path" jsonschema:"Path to the image file to edit (png, jpg, gif or webp)"`
	Model       string `json:"model,omitempty" jsonschema:"Model to use: nano-banana (fast) or nano-banana-pro (higher quality)"`
	AspectRatio string `json:"aspect_ratio,omitempty" jsonschema:"Aspect ratio of the edited image; omitted, the model keeps the source framing"`
	ImageSize   string `json:"image_size,omitempty" jsonschema:"Output resolution, nano-banana-pro only and only together with aspect_ratio: 1K, 2K or 4K"`
	Filename    string `json:"filename,omitempty" jsonschema:"Output file name without extension; defaults to a timestamped name"`
}

// composeArgs are the arguments of compose_images.
type composeArgs struct {
	Prompt      string   `json:"prompt" jsonschema:"Text description of how to combine the input images"`
	ImagePaths  []string `json:"image_paths" jsonschema:"Paths of the images to combine, in order: 2-14 files (nano-banana accepts at most 3)"`
	Model       string   `json:"model,omitempty" jsonschema:"Model to use: nano-banana (fast, up to 3 inputs) or nano-banana-pro (up to 14 inputs)"`
	AspectRatio string   `json:"aspect_ratio,omitempty" jsonschema:"Aspect ratio of the composed image, defaults to 1:1"`
	ImageSize   string   `json:"image_size,omitempty" jsonschema:"Output resolution, nano-banana-pro only: 1K, 2K or 4K; defaults to 2K"`
	Filename    string   `json:"filename,omitempty" jsonschema:"Output file name without extension; defaults to a timestamped name"`
}

// generateTool declares the generate_image tool.
func generateTool() *mcp.Tool {
	schema := mustSchemaFor[generateArgs]()
	tightenModel(schema, gemini.ModelFast)
	tightenOptions(schema)

	return &mcp.Tool{
		Name: toolGenerate,
		Description: "Generate a new image from a text prompt. The image is written as a PNG " +
			"into the configured output directory and the saved path is returned. " +
			"nano-banana is fast; nano-banana-pro produces higher quality and supports " +
			"an explicit output resolution via image_size.",
		InputSchema: schema,
	}
}

// editTool declares the edit_image tool.
func editTool() *mcp.Tool {
	schema := mustSchemaFor[editArgs]()
	tightenModel(schema, gemini.ModelFast)
	tightenOptions(schema)

	return &mcp.Tool{
		Name: toolEdit,
		Description: "Edit an existing image according to a text prompt, e.g. adding, removing " +
			"or restyling elements. Takes exactly one input image and writes the edited " +
			"result as a new PNG; the source file is never modified.",
		InputSchema: schema,
	}
}

// composeTool declares the compose_images tool.
func composeTool() *mcp.Tool {
	schema := mustSchemaFor[composeArgs]()
	tightenModel(schema, gemini.ModelPro)
	tightenOptions(schema)

	paths := schema.Properties["image_paths"]
	paths.MinItems = intPtr(2)
	paths.MaxItems = intPtr(14)

	return &mcp.Tool{
		Name: toolCompose,
		Description: "Combine several input images (2-14) into a single new image guided by a " +
			"text prompt, e.g. placing a product into a scene or merging characters. " +
			"Input order is preserved. nano-banana accepts at most 3 input images; " +
			"nano-banana-pro accepts up to 14.",
		InputSchema: schema,
	}
}

// mustSchemaFor infers the JSON schema of a tool's argument struct.
// Schemas are static declarations, so a failure here is a programming
// error and panics at startup.
func mustSchemaFor[T any]() *jsonschema.Schema {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		panic(err)
	}
	return schema
}

// tightenModel turns the model property into a closed enum with the
// operation's default.
func tightenModel(schema *jsonschema.Schema, defaultModel string) {
	model := schema.Properties["model"]
	model.Enum = []any{gemini.ModelFast, gemini.ModelPro}
	model.Default = rawString(defaultModel)
}

// tightenOptions closes the aspect_ratio and image_size enums.
func tightenOptions(schema *jsonschema.Schema) {
	schema.Properties["aspect_ratio"].Enum = enumOf(gemini.AspectRatios)
	schema.Properties["image_size"].Enum = enumOf(gemini.ImageSizes)
}

func enumOf(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func rawString(s string) json.RawMessage {
	return json.RawMessage(strconv.Quote(s))
}

func intPtr(i int) *int { return &i }
