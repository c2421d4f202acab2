package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/parkour/errors"
)

func TestInfoStrings(t *testing.T) {
	i := Info{CommitHash: "abcdef123456", BuildTime: "now", Version: "dev"}
	assert.Equal(t, "abcdef1", i.Short())
	assert.Equal(t, "dev-abcdef1", i.Display())
	assert.Contains(t, i.String(), "parkour dev")

	i.Version = "1.4.0"
	assert.Equal(t, "1.4.0", i.Display())
	assert.Contains(t, i.String(), "parkour 1.4.0")

	assert.Equal(t, "abc", Info{CommitHash: "abc"}.Short())
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		version    string
		constraint string
		want       bool
	}{
		{"1.4.0", ">= 1.2", true},
		{"1.4.0", "^2", false},
		{"2.0.0-beta.1", ">= 1.0", false},
		{"v1.2.3", "~1.2", true},
		{"dev", "> 100", true},
	}
	for _, tt := range tests {
		t.Run(tt.version+" "+tt.constraint, func(t *testing.T) {
			got, err := Info{Version: tt.version}.Satisfies(tt.constraint)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSatisfiesErrors(t *testing.T) {
	_, err := Info{Version: "1.0.0"}.Satisfies("not a constraint ~~")
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
	assert.NotEmpty(t, errors.GetAllHints(err))

	_, err = Info{Version: "banana"}.Satisfies(">= 1")
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
