package migrations_test

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/phrazzld/social-spark/internal/platform/migrations"
	"github.com/phrazzld/social-spark/internal/platform/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS(t *testing.T) {
	for _, dialect := range []string{"postgres", "sqlite3"} {
		t.Run(dialect, func(t *testing.T) {
			fsys, err := migrations.FS(dialect)
			require.NoError(t, err)

			files, err := fs.Glob(fsys, "*.sql")
			require.NoError(t, err)
			assert.Contains(t, files, "00001_create_generation_logs.sql")
		})
	}

	_, err := migrations.FS("mysql")
	assert.Error(t, err)
}

func TestRunSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, migrations.Run(ctx, db, "sqlite3", migrations.CommandUp, nil))
	// Applying twice is a no-op.
	require.NoError(t, migrations.Run(ctx, db, "sqlite3", migrations.CommandUp, nil))

	var count int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'generation_logs'`).Scan(&count))
	assert.Equal(t, 1, count)

	require.NoError(t, migrations.Run(ctx, db, "sqlite3", migrations.CommandDown, nil))
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'generation_logs'`).Scan(&count))
	assert.Equal(t, 0, count)

	assert.Error(t, migrations.Run(ctx, db, "sqlite3", "sideways", nil))
}
