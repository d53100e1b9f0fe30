package server

import (
	"context"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"nano-banana-mcp/internal/gemini"
	"nano-banana-mcp/internal/imagefile"
)

// Each tool handler:
//  1. Maps the decoded arguments onto a translator request
//  2. Runs the translator under the serialization lock
//  3. Shapes the outcome into an MCP result (in-band error on failure)

func (s *Server) handleGenerate(ctx context.Context, _ *mcp.CallToolRequest, args generateArgs) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("tool call", "tool", toolGenerate, "model", args.Model)

	res, err := s.svc.Generate(ctx, gemini.Request{
		Prompt:       args.Prompt,
		Model:        args.Model,
		AspectRatio:  args.AspectRatio,
		ImageSize:    args.ImageSize,
		FilenameStem: args.Filename,
	})
	if err != nil {
		return s.errorResult(toolGenerate, err), nil, nil
	}

	s.logger.Info("image generated", "path", res.SavedPath, "model", res.Model)
	return s.successResult("Image generated successfully.", res), nil, nil
}

func (s *Server) handleEdit(ctx context.Context, _ *mcp.CallToolRequest, args editArgs) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("tool call", "tool", toolEdit, "model", args.Model, "image", args.ImagePath)

	res, err := s.svc.Edit(ctx, gemini.Request{
		Prompt:       args.Prompt,
		Model:        args.Model,
		AspectRatio:  args.AspectRatio,
		ImageSize:    args.ImageSize,
		InputPaths:   []string{args.ImagePath},
		FilenameStem: args.Filename,
	})
	if err != nil {
		return s.errorResult(toolEdit, err), nil, nil
	}

	s.logger.Info("image edited", "path", res.SavedPath, "model", res.Model)
	return s.successResult("Image edited successfully.", res), nil, nil
}

func (s *Server) handleCompose(ctx context.Context, _ *mcp.CallToolRequest, args composeArgs) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("tool call", "tool", toolCompose, "model", args.Model, "inputs", len(args.ImagePaths))

	res, err := s.svc.Compose(ctx, gemini.Request{
		Prompt:       args.Prompt,
		Model:        args.Model,
		AspectRatio:  args.AspectRatio,
		ImageSize:    args.ImageSize,
		InputPaths:   args.ImagePaths,
		FilenameStem: args.Filename,
	})
	if err != nil {
		return s.errorResult(toolCompose, err), nil, nil
	}

	s.logger.Info("images composed", "path", res.SavedPath, "model", res.Model)
	return s.successResult("Images composed successfully.", res), nil, nil
}

// successResult renders the outcome as a text block, plus an inline
// preview when enabled.
func (s *Server) successResult(confirmation string, res *gemini.Result) *mcp.CallToolResult {
	var sb strings.Builder
	sb.WriteString(confirmation)
	sb.WriteString("\n\nSaved to: ")
	sb.WriteString(res.SavedPath)
	sb.WriteString("\nModel: ")
	sb.WriteString(res.Model)

	if res.AspectRatio != "" {
		sb.WriteString("\nAspect ratio: ")
		sb.WriteString(res.AspectRatio)
	}
	if res.ImageSize != "" {
		sb.WriteString("\nImage size: ")
		sb.WriteString(res.ImageSize)
	}
	if len(res.Inputs) > 0 {
		sb.WriteString("\nInput images:")
		for _, in := range res.Inputs {
			sb.WriteString("\n  - ")
			sb.WriteString(in.Describe())
		}
	}
	if text := strings.TrimSpace(res.Text); text != "" {
		sb.WriteString("\n\nModel notes:\n")
		sb.WriteString(text)
	}

	content := []mcp.Content{&mcp.TextContent{Text: sb.String()}}
	if s.preview {
		if img := s.previewContent(res.SavedPath); img != nil {
			content = append(content, img)
		}
	}

	return &mcp.CallToolResult{Content: content}
}

// previewContent builds a downscaled JPEG rendition of the saved file.
// Previews are best effort; any failure just drops the block.
func (s *Server) previewContent(path string) mcp.Content {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("preview skipped", "path", path, "error", err)
		return nil
	}
	jpg, err := imagefile.PreviewJPEG(data, imagefile.PreviewMaxDim)
	if err != nil {
		s.logger.Warn("preview skipped", "path", path, "error", err)
		return nil
	}
	return &mcp.ImageContent{Data: jpg, MIMEType: "image/jpeg"}
}

// errorResult surfaces a generation failure to the calling agent as an
// in-band tool error, prefixed with its kind when classified.
func (s *Server) errorResult(tool string, err error) *mcp.CallToolResult {
	msg := err.Error()
	if kind := gemini.KindOf(err); kind != "" {
		msg = string(kind) + ": " + msg
	}

	s.logger.Error("tool failed", "tool", tool, "error", err)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}
