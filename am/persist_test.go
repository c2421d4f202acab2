package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "am.toml")

	require.NoError(t, SetValue(path, "scan.rows_per_second", "25"))
	require.NoError(t, SetValue(path, "world.names", "world, nether ,end"))
	require.NoError(t, SetValue(path, "leaderboard.rewards.1", "100.5"))
	require.NoError(t, SetValue(path, "placeholder.identifier", "witp"))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 25.0, cfg.Scan.RowsPerSecond)
	assert.Equal(t, []string{"world", "nether", "end"}, cfg.World.Names)
	assert.Equal(t, "witp", cfg.Placeholder.Identifier)

	rewards, err := cfg.Leaderboard.RankRewards()
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{1: 100.5}, rewards)
}

func TestSetValueRotatesBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "am.toml")
	for i := range 5 {
		require.NoError(t, SetValue(path, "leaderboard.top", string(rune('1'+i))))
	}

	for i := 1; i <= backupCount; i++ {
		_, err := os.Stat(backupPath(path, i))
		assert.NoError(t, err, "back%d", i)
	}
	_, err := os.Stat(backupPath(path, backupCount+1))
	assert.True(t, os.IsNotExist(err))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Leaderboard.Top)

	prev, err := LoadFromFile(backupPath(path, 1))
	require.NoError(t, err)
	assert.Equal(t, 4, prev.Leaderboard.Top)
}

func TestSetValueRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "am.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [toml"), DefaultFilePermissions))
	assert.Error(t, SetValue(path, "database.path", "x.db"))
	assert.Error(t, SetValue(path, "", "x"))
}

func TestTypedValue(t *testing.T) {
	assert.Equal(t, true, typedValue("k", "true"))
	assert.Equal(t, int64(3), typedValue("k", "3"))
	assert.Equal(t, 0.5, typedValue("k", "0.5"))
	assert.Equal(t, "scores.db", typedValue("k", "scores.db"))
	assert.Equal(t, []string{"a"}, typedValue("world.names", "a"))
}

func TestIsBackupFile(t *testing.T) {
	assert.True(t, isBackupFile("/x/am.toml.back1"))
	assert.True(t, isBackupFile("am.toml.back3"))
	assert.False(t, isBackupFile("am.toml"))
	assert.False(t, isBackupFile("am.toml.back4"))
}
