package db

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/parkour/errors"
)

func TestOpenWithMigrations(t *testing.T) {
	t.Run("creates leaderboard tables", func(t *testing.T) {
		db, err := OpenWithMigrations(filepath.Join(t.TempDir(), "scores.db"), nil)
		require.NoError(t, err)
		defer db.Close()

		for _, table := range []string{"schema_migrations", "scores", "balances", "deposits"} {
			var n int
			err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&n)
			require.NoError(t, err)
			assert.Equal(t, 1, n, table)
		}

		versions, err := AppliedVersions(db)
		require.NoError(t, err)
		assert.Equal(t, []string{"000", "001", "002"}, versions)
	})

	t.Run("open failure carries a stack", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("directory permissions are not enforced for root")
		}
		dir := t.TempDir()
		path := filepath.Join(dir, "scores.db")

		first, err := Open(path, nil)
		require.NoError(t, err)
		first.Close()

		require.NoError(t, os.Chmod(dir, 0555))
		defer os.Chmod(dir, 0755)

		db, err := OpenWithMigrations(path, nil)
		require.Error(t, err)
		assert.Nil(t, db)
		assert.NotNil(t, errors.GetStack(err))

		detailed := fmt.Sprintf("%+v", err)
		assert.Contains(t, detailed, "connection.go")
	})
}

func TestMigrate(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		db, err := Open(filepath.Join(t.TempDir(), "scores.db"), nil)
		require.NoError(t, err)
		defer db.Close()

		require.NoError(t, Migrate(db, nil))
		require.NoError(t, Migrate(db, nil))

		versions, err := AppliedVersions(db)
		require.NoError(t, err)
		assert.Len(t, versions, 3)
	})

	t.Run("scores table enforces one row per owner", func(t *testing.T) {
		db, err := OpenWithMigrations(filepath.Join(t.TempDir(), "scores.db"), nil)
		require.NoError(t, err)
		defer db.Close()

		_, err = db.Exec("INSERT INTO scores (owner_id, score) VALUES ('a', 1)")
		require.NoError(t, err)
		_, err = db.Exec("INSERT INTO scores (owner_id, score) VALUES ('a', 2)")
		assert.Error(t, err)
	})

	t.Run("closed database", func(t *testing.T) {
		db, err := Open(filepath.Join(t.TempDir(), "scores.db"), nil)
		require.NoError(t, err)
		db.Close()

		err = Migrate(db, nil)
		require.Error(t, err)
		assert.True(t, IsDatabaseClosed(err))
	})
}

func TestEmbeddedMigrationsOrdered(t *testing.T) {
	ms, err := embeddedMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, ms)
	assert.Equal(t, "000", ms[0].version)
	for i := 1; i < len(ms); i++ {
		assert.Less(t, ms[i-1].file, ms[i].file)
	}
}
