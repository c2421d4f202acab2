package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/teranos/parkour/errors"
)

func TestOpen(t *testing.T) {
	t.Run("applies pragmas", func(t *testing.T) {
		db, err := Open(filepath.Join(t.TempDir(), "scores.db"), nil)
		require.NoError(t, err)
		defer db.Close()

		var journalMode string
		require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&journalMode))
		assert.Equal(t, "wal", journalMode)

		var foreignKeys int
		require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&foreignKeys))
		assert.Equal(t, 1, foreignKeys)

		var busyTimeout int
		require.NoError(t, db.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout))
		assert.Equal(t, SQLiteBusyTimeoutMS, busyTimeout)
	})

	t.Run("invalid path carries a stack", func(t *testing.T) {
		db, err := Open("/invalid/nonexistent/path/scores.db", nil)
		// sql.Open is lazy on some platforms
		if err == nil && db != nil {
			err = db.Ping()
			db.Close()
		}
		require.Error(t, err)
		assert.NotNil(t, errors.GetStack(err))
	})

	t.Run("creates the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "new.db")
		_, err := os.Stat(path)
		require.True(t, os.IsNotExist(err))

		db, err := Open(path, nil)
		require.NoError(t, err)
		defer db.Close()

		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("closed handle", func(t *testing.T) {
		db, err := Open(filepath.Join(t.TempDir(), "scores.db"), nil)
		require.NoError(t, err)
		db.Close()

		_, err = db.Exec("SELECT 1")
		require.Error(t, err)
		assert.True(t, IsDatabaseClosed(err))
	})
}

func TestOpen_WithLogger(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "scores.db"), zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	defer db.Close()
}

func TestErrorClassifiers(t *testing.T) {
	assert.False(t, IsDatabaseClosed(nil))
	assert.True(t, IsDatabaseClosed(errors.Wrap(ErrDatabaseClosed, "payout")))
	assert.True(t, IsDatabaseClosed(errors.New("sql: database is closed")))
	assert.False(t, IsDatabaseClosed(errors.New("no such table: scores")))

	assert.False(t, IsBusy(nil))
	assert.True(t, IsBusy(errors.New("database is locked")))
	assert.False(t, IsBusy(errors.New("constraint failed")))
}
