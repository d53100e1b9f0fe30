// Package config reads the server's environment configuration.
//
// All environment access happens here, once, at startup. The resulting
// Config is injected into the packages that need it and treated as
// read-only for the life of the process.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// DefaultOutputDir is where generated images land when
// NANO_BANANA_OUTPUT_DIR is unset.
const DefaultOutputDir = "generated-images"

const (
	envAPIKey    = "GEMINI_API_KEY"
	envOutputDir = "NANO_BANANA_OUTPUT_DIR"
	envLogLevel  = "NANO_BANANA_LOG_LEVEL"
	envPreview   = "NANO_BANANA_PREVIEW"
)

// Config carries everything the server needs from the environment.
type Config struct {
	// APIKey authenticates calls to the Gemini API. Mandatory.
	APIKey string

	// OutputDir is the directory generated images are written to.
	OutputDir string

	// LogLevel controls stderr logging verbosity.
	LogLevel slog.Level

	// Preview controls whether tool results carry a downscaled
	// preview of the generated image.
	Preview bool
}

// FromEnv builds a Config from the process environment. A missing API
// key is an error; every other variable has a default.
func FromEnv() (*Config, error) {
	key := strings.TrimSpace(os.Getenv(envAPIKey))
	if key == "" {
		return nil, fmt.Errorf("%s is not set", envAPIKey)
	}

	return &Config{
		APIKey:    key,
		OutputDir: getenv(envOutputDir, DefaultOutputDir),
		LogLevel:  parseLogLevel(os.Getenv(envLogLevel)),
		Preview:   parseSwitch(os.Getenv(envPreview), true),
	}, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseSwitch(s string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return true
	case "off", "false", "0", "no":
		return false
	default:
		return fallback
	}
}
