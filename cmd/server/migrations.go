package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/social-spark/internal/config"
	"github.com/phrazzld/social-spark/internal/platform/migrations"
)

// handleMigrations runs a single migration command against the configured
// database and returns.
func handleMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	if cfg.Database.Driver == "" {
		return fmt.Errorf("migrations need database.driver to be postgres or sqlite3")
	}

	db, err := openDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing database connection", "error", err)
		}
	}()

	logger.Info("executing migrations", "command", command, "driver", cfg.Database.Driver)
	return migrations.Run(ctx, db, cfg.Database.Driver, command, logger)
}
