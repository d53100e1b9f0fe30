package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"nano-banana-mcp/internal/gemini"
)

// serverName identifies this server to MCP clients.
const serverName = "nano-banana-mcp"

// GenerationService is what the handlers need from the translator.
// *gemini.Translator satisfies it; tests substitute a fake.
type GenerationService interface {
	Generate(ctx context.Context, req gemini.Request) (*gemini.Result, error)
	Edit(ctx context.Context, req gemini.Request) (*gemini.Result, error)
	Compose(ctx context.Context, req gemini.Request) (*gemini.Result, error)
}

// Server wires the three image tools to a GenerationService.
type Server struct {
	svc     GenerationService
	logger  *slog.Logger
	version string
	preview bool

	// mu serializes tool calls: one generation runs at a time, start
	// to finish, API round trip included.
	mu sync.Mutex
}

// New creates a server around svc. The logger must write to stderr;
// stdout carries the protocol.
func New(svc GenerationService, logger *slog.Logger, version string, preview bool) *Server {
	return &Server{
		svc:     svc,
		logger:  logger,
		version: version,
		preview: preview,
	}
}

// Run serves MCP over stdio until ctx is canceled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.build().Run(ctx, &mcp.StdioTransport{})
}

// build assembles the SDK server with all three tools registered.
func (s *Server) build() *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: s.version}, nil)

	mcp.AddTool(srv, generateTool(), s.handleGenerate)
	mcp.AddTool(srv, editTool(), s.handleEdit)
	mcp.AddTool(srv, composeTool(), s.handleCompose)

	return srv
}
