package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/social-spark/internal/config"
	"github.com/phrazzld/social-spark/internal/platform/postgres"
	"github.com/phrazzld/social-spark/internal/platform/sqlite"
	"github.com/phrazzld/social-spark/internal/store"
)

// memoryLogCapacity bounds the in-memory generation log.
const memoryLogCapacity = 1000

// openDatabase connects to the configured generation log database.
// It returns a nil *sql.DB when the log is kept in memory.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	switch cfg.Driver {
	case "":
		return nil, nil
	case "sqlite3":
		db, err := sqlite.Open(ctx, cfg.URL)
		if err != nil {
			return nil, err
		}
		logger.Info("sqlite database opened")
		return db, nil
	case "postgres":
		db, err := sql.Open("pgx", cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		logger.Info("database connection established")
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// newGenerationLogStore returns the store for driver backed by db.
func newGenerationLogStore(driver string, db *sql.DB, logger *slog.Logger) store.GenerationLogStore {
	switch driver {
	case "sqlite3":
		return sqlite.NewSQLiteGenerationLogStore(db, logger)
	case "postgres":
		return postgres.NewPostgresGenerationLogStore(db, logger)
	default:
		return store.NewMemoryGenerationLogStore(memoryLogCapacity)
	}
}
