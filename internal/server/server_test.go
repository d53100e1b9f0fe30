package server

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nano-banana-mcp/internal/gemini"
)

// The real translator must satisfy the handler-facing interface.
var _ GenerationService = (*gemini.Translator)(nil)

func TestNew(t *testing.T) {
	svc := &fakeService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s := New(svc, logger, "1.2.3", true)
	require.NotNil(t, s)
	assert.Equal(t, "1.2.3", s.version)
	assert.True(t, s.preview)
}

func TestBuild_RegistersServer(t *testing.T) {
	s := newTestServer(&fakeService{}, false)

	srv := s.build()
	require.NotNil(t, srv, "build should produce a runnable MCP server")
}
