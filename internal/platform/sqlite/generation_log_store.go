package sqlite

import (
	"context"
	"log/slog"

	"github.com/phrazzld/social-spark/internal/platform/logger"
	"github.com/phrazzld/social-spark/internal/store"
)

// SQLiteGenerationLogStore implements store.GenerationLogStore on SQLite.
type SQLiteGenerationLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.GenerationLogStore = (*SQLiteGenerationLogStore)(nil)

// NewSQLiteGenerationLogStore creates a SQLiteGenerationLogStore.
// It panics if db is nil. If logger is nil, the default logger is used.
func NewSQLiteGenerationLogStore(db store.DBTX, logger *slog.Logger) *SQLiteGenerationLogStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteGenerationLogStore{
		db:     db,
		logger: logger.With(slog.String("component", "sqlite_generation_log_store")),
	}
}

// Record implements store.GenerationLogStore.
func (s *SQLiteGenerationLogStore) Record(ctx context.Context, entry *store.GenerationLog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generation_logs (id, kind, provider, model, status, error_message, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID.String(), entry.Kind, entry.Provider, entry.Model, entry.Status,
		entry.ErrorMessage, entry.DurationMS, entry.CreatedAt.UTC(),
	)
	if err != nil {
		log.Error("failed to record generation", "error", err, "id", entry.ID)
		return store.NewStoreError("generation_log", "record", "insert failed", MapError(err))
	}
	return nil
}

// ListRecent implements store.GenerationLogStore.
func (s *SQLiteGenerationLogStore) ListRecent(ctx context.Context, limit int) ([]*store.GenerationLog, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, provider, model, status, error_message, duration_ms, created_at
		 FROM generation_logs ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		store.ClampLimit(limit),
	)
	if err != nil {
		return nil, store.NewStoreError("generation_log", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	entries := make([]*store.GenerationLog, 0)
	for rows.Next() {
		var e store.GenerationLog
		if err := rows.Scan(&e.ID, &e.Kind, &e.Provider, &e.Model, &e.Status,
			&e.ErrorMessage, &e.DurationMS, &e.CreatedAt); err != nil {
			return nil, store.NewStoreError("generation_log", "list", "scan failed", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("generation_log", "list", "row iteration failed", err)
	}
	return entries, nil
}
