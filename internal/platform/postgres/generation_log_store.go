package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/social-spark/internal/platform/logger"
	"github.com/phrazzld/social-spark/internal/store"
)

// PostgresGenerationLogStore implements store.GenerationLogStore
// using a PostgreSQL database as the storage backend.
type PostgresGenerationLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.GenerationLogStore = (*PostgresGenerationLogStore)(nil)

// NewPostgresGenerationLogStore creates a PostgresGenerationLogStore.
// It panics if db is nil. If logger is nil, the default logger is used.
func NewPostgresGenerationLogStore(db store.DBTX, logger *slog.Logger) *PostgresGenerationLogStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresGenerationLogStore{
		db:     db,
		logger: logger.With(slog.String("component", "generation_log_store")),
	}
}

// Record implements store.GenerationLogStore.
func (s *PostgresGenerationLogStore) Record(ctx context.Context, entry *store.GenerationLog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("generation log validation failed", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO generation_logs
			(id, kind, provider, model, status, error_message, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.Kind,
		entry.Provider,
		entry.Model,
		entry.Status,
		entry.ErrorMessage,
		entry.DurationMS,
		entry.CreatedAt,
	)
	if err != nil {
		log.Error("failed to record generation",
			slog.String("error", err.Error()),
			slog.String("id", entry.ID.String()))
		return store.NewStoreError("generation_log", "record", "insert failed", MapError(err))
	}

	return nil
}

// ListRecent implements store.GenerationLogStore.
func (s *PostgresGenerationLogStore) ListRecent(ctx context.Context, limit int) ([]*store.GenerationLog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, kind, provider, model, status, error_message, duration_ms, created_at
		FROM generation_logs
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, store.ClampLimit(limit))
	if err != nil {
		log.Error("failed to list generations", slog.String("error", err.Error()))
		return nil, store.NewStoreError("generation_log", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	entries := make([]*store.GenerationLog, 0)
	for rows.Next() {
		var e store.GenerationLog
		if err := rows.Scan(
			&e.ID,
			&e.Kind,
			&e.Provider,
			&e.Model,
			&e.Status,
			&e.ErrorMessage,
			&e.DurationMS,
			&e.CreatedAt,
		); err != nil {
			return nil, store.NewStoreError("generation_log", "list", "scan failed", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("generation_log", "list", "row iteration failed", MapError(err))
	}

	return entries, nil
}
