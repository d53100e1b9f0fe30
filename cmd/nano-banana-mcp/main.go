package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"nano-banana-mcp/internal/config"
	"nano-banana-mcp/internal/gemini"
	"nano-banana-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("nano-banana-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nano-banana-mcp: %v\n", err)
		os.Exit(1)
	}

	// Log to stderr (stdout is for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := run(cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	translator := gemini.New(client.Models, cfg.OutputDir)
	srv := server.New(translator, logger, Version, cfg.Preview)

	logger.Info("starting", "version", Version, "output_dir", cfg.OutputDir, "preview", cfg.Preview)
	// A signal cancels ctx; that is a clean shutdown, not an error.
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func printHelp() {
	fmt.Println("nano-banana-mcp - MCP server for Gemini image generation")
	fmt.Println()
	fmt.Println("Usage: nano-banana-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Tools:")
	fmt.Println("  generate_image   Generate a new image from a text prompt")
	fmt.Println("  edit_image       Edit an existing image per a text prompt")
	fmt.Println("  compose_images   Combine 2-14 images into a single image")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  GEMINI_API_KEY           API credential (required)")
	fmt.Println("  NANO_BANANA_OUTPUT_DIR   Output directory (default: generated-images)")
	fmt.Println("  NANO_BANANA_LOG_LEVEL    debug|info|warn|error (default: info)")
	fmt.Println("  NANO_BANANA_PREVIEW      Attach result previews, on|off (default: on)")
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
