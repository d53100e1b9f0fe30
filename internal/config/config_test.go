package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := FromEnv()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("NANO_BANANA_OUTPUT_DIR", "")
	t.Setenv("NANO_BANANA_LOG_LEVEL", "")
	t.Setenv("NANO_BANANA_PREVIEW", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.True(t, cfg.Preview)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "  test-key  ")
	t.Setenv("NANO_BANANA_OUTPUT_DIR", "/tmp/renders")
	t.Setenv("NANO_BANANA_LOG_LEVEL", "debug")
	t.Setenv("NANO_BANANA_PREVIEW", "off")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "/tmp/renders", cfg.OutputDir)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.False(t, cfg.Preview)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"empty defaults to info", "", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"mixed case", "DeBuG", slog.LevelDebug},
		{"unknown defaults to info", "verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestParseSwitch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback bool
		want     bool
	}{
		{"empty keeps fallback true", "", true, true},
		{"empty keeps fallback false", "", false, false},
		{"on", "on", false, true},
		{"true", "true", false, true},
		{"one", "1", false, true},
		{"off", "off", true, false},
		{"false", "false", true, false},
		{"zero", "0", true, false},
		{"garbage keeps fallback", "maybe", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSwitch(tt.input, tt.fallback))
		})
	}
}
