package display

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/parkour/errors"
)

type sample struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Score int    `json:"score" yaml:"score" toml:"score"`
}

func TestEncode(t *testing.T) {
	v := sample{Name: "Bob", Score: 80}

	tests := []struct {
		format Format
		want   []string
	}{
		{FormatJSON, []string{`"name": "Bob"`, `"score": 80`}},
		{FormatYAML, []string{"# scores", "name: Bob", "score: 80"}},
		{FormatTOML, []string{"# scores", "Bob", "score = 80"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, tt.format, "scores", v))
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}

	err := Encode(&bytes.Buffer{}, "xml", "", v)
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
}

func TestShouldOutputJSON(t *testing.T) {
	root := &cobra.Command{Use: "parkour"}
	root.PersistentFlags().Bool("json", false, "")
	child := &cobra.Command{Use: "top"}
	root.AddCommand(child)

	t.Setenv(EnvOutput, "")
	assert.False(t, ShouldOutputJSON(child))

	t.Setenv(EnvOutput, "JSON")
	assert.True(t, ShouldOutputJSON(child))
	assert.True(t, ShouldOutputJSON(nil))

	t.Setenv(EnvOutput, "")
	require.NoError(t, root.PersistentFlags().Set("json", "true"))
	assert.True(t, ShouldOutputJSON(child))
}

func TestTable(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, []string{"Rank", "Name"}, [][]string{{"1", "Bob"}, {"2", "Carol"}}))
	out := buf.String()
	assert.Contains(t, out, "Rank")
	assert.Contains(t, out, "Carol")

	buf.Reset()
	require.NoError(t, KeyValues(&buf, [][2]string{{"Volume", "27"}}))
	assert.Contains(t, buf.String(), "27")
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputJSON(&buf, sample{Name: "A"}))
	assert.Contains(t, buf.String(), `"name"`)
}
