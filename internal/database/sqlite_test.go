package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToOpenDatabase)
}

func TestMigrateSQLite(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, MigrateSQLite(ctx, db))
	require.NoError(t, MigrateSQLite(ctx, db), "second run should be a no-op")

	var name string
	err = db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'player_skills'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "player_skills", name)

	_, err = db.ExecContext(ctx, `INSERT INTO player_skills (player_id, skill, xp, updated_at) VALUES ('p', 'mining', -1, 0)`)
	assert.Error(t, err, "negative xp violates the check constraint")
}
