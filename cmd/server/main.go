// Package main implements the Social Spark server, which generates social
// media post text and images and serves the single-page UI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/social-spark/internal/config"
	"github.com/phrazzld/social-spark/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a generation log migration command (up, down, status, version) and exit")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		log.Fatalf("social-spark: %v", err)
	}
}

func run(ctx context.Context, migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	logConfigSummary(cfg, l)

	if migrateCmd != "" {
		return handleMigrations(ctx, cfg, migrateCmd, l)
	}

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}

// logConfigSummary reports what is configured without printing secrets.
func logConfigSummary(cfg *config.Config, l *slog.Logger) {
	l.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"text_model", cfg.LLM.TextModel,
		"image_model", cfg.LLM.ImageModel,
		"secondary_image_model", cfg.LLM.SecondaryImageModel,
		"database_driver", databaseDriverName(cfg))

	if cfg.LLM.MistralAPIKey == "" {
		l.Warn("MISTRAL_API_KEY is not set; text generation will report a configuration error")
	}
	if cfg.LLM.GeminiAPIKey == "" {
		l.Warn("GEMINI_API_KEY is not set; image generation will report a configuration error")
	}
}

func databaseDriverName(cfg *config.Config) string {
	if cfg.Database.Driver == "" {
		return "memory"
	}
	return cfg.Database.Driver
}
