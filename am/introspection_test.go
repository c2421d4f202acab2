package am

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigIntrospection(t *testing.T) {
	home, _ := isolate(t)
	userPath := filepath.Join(home, ".parkour", "am.toml")
	writeFile(t, userPath, `
[scan]
rows_per_second = 40.0

[leaderboard.rewards]
1 = 10.0
`)
	t.Setenv("PARKOUR_WORLD_DEFAULT", "lobby")

	in, err := GetConfigIntrospection()
	require.NoError(t, err)

	rps, ok := in.Lookup("scan.rows_per_second")
	require.True(t, ok)
	assert.Equal(t, SourceUser, rps.Source)
	assert.Equal(t, userPath, rps.SourcePath)

	path, ok := in.Lookup("database.path")
	require.True(t, ok)
	assert.Equal(t, SourceDefault, path.Source)

	def, ok := in.Lookup("world.default")
	require.True(t, ok)
	assert.Equal(t, SourceEnvironment, def.Source)
	assert.Equal(t, "PARKOUR_WORLD_DEFAULT", def.SourcePath)

	rewards, ok := in.Lookup("leaderboard.rewards")
	require.True(t, ok, "rewards stay one setting")
	assert.Equal(t, SourceUser, rewards.Source)
}

func TestFlattenSettingsSorted(t *testing.T) {
	in := &ConfigIntrospection{}
	flattenSettingsWithSources(map[string]interface{}{
		"world":    map[string]interface{}{"default": "w", "names": []string{"w"}},
		"database": map[string]interface{}{"path": "p"},
	}, "", in, map[string]SourceInfo{"database.path": {Source: SourceProject, Path: "/x/am.toml"}})

	require.Len(t, in.Settings, 3)
	assert.Equal(t, "database.path", in.Settings[0].Key)
	assert.Equal(t, SourceProject, in.Settings[0].Source)
	assert.Equal(t, "world.default", in.Settings[1].Key)
	assert.Equal(t, SourceDefault, in.Settings[1].Source)
}
