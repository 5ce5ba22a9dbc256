package database

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "hangman.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"saved_game", "game_results"} {
		var name string
		err := db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "hangman.db"))
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"010_extra.sql": {Data: []byte(`CREATE TABLE extra (id INTEGER PRIMARY KEY);`)},
		"011_empty.sql": {Data: []byte("  \n")},
	}
	require.NoError(t, Migrate(ctx, db, fsys))
	require.NoError(t, Migrate(ctx, db, fsys))

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(1) FROM _migrations WHERE name='010_extra.sql'`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestMigrate_BadSQL(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "hangman.db"))
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(ctx, db, fstest.MapFS{"020_bad.sql": {Data: []byte(`CREATE TABLEX nope;`)}})
	assert.ErrorContains(t, err, "apply 020_bad.sql")
}
