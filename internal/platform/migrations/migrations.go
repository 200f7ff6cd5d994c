// Package migrations applies the generation log schema with goose.
//
// SQL files are embedded per dialect under sql/<dialect>, so the server binary
// carries its own schema and needs no migrations directory at runtime.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed sql
var embedded embed.FS

// TableName is the goose version table.
const TableName = "schema_migrations"

// Supported commands.
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandStatus  = "status"
	CommandVersion = "version"
)

// goose keeps its configuration in package globals.
var gooseMu sync.Mutex

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements goose.Logger.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements goose.Logger. It logs at error level and does not exit,
// so callers can handle the returned error.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// FS returns the embedded migrations for dialect ("postgres" or "sqlite3").
func FS(dialect string) (fs.FS, error) {
	switch dialect {
	case "postgres", "sqlite3":
	default:
		return nil, fmt.Errorf("unsupported migration dialect %q", dialect)
	}
	return fs.Sub(embedded, "sql/"+dialect)
}

// Run executes command against db using the embedded migrations for dialect.
func Run(ctx context.Context, db *sql.DB, dialect, command string, logger *slog.Logger) error {
	fsys, err := FS(dialect)
	if err != nil {
		return err
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "migrations"), slog.String("dialect", dialect))

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetLogger(&slogGooseLogger{logger: logger})
	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)
	goose.SetTableName(TableName)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	logger.Info("running migrations", slog.String("command", command))

	switch command {
	case CommandUp:
		err = goose.UpContext(ctx, db, ".")
	case CommandDown:
		err = goose.DownContext(ctx, db, ".")
	case CommandStatus:
		err = goose.StatusContext(ctx, db, ".")
	case CommandVersion:
		err = goose.VersionContext(ctx, db, ".")
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}
