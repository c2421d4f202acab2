package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingReader records how many cells were read
type countingReader struct {
	BlockReader
	reads int
}

func (c *countingReader) MaterialAt(world string, cell Cell) Material {
	c.reads++
	return c.BlockReader.MaterialAt(world, cell)
}

func mustRegion(t *testing.T, a, b Position) Region {
	t.Helper()
	r, err := Normalize(a, b)
	require.NoError(t, err)
	return r
}

func TestContainsNonMatching(t *testing.T) {
	w := NewMemWorld()
	floor := mustRegion(t, At(0, 0, 0, "lobby"), At(3, 0, 3, "lobby"))
	w.Fill(floor, "glass")

	assert.False(t, ContainsNonMatching(floor, w, "glass"))
	assert.True(t, ContainsNonMatching(floor, w, "stone"))

	air := mustRegion(t, At(0, 1, 0, "lobby"), At(3, 4, 3, "lobby"))
	assert.False(t, ContainsNonMatching(air, w, Air))

	w.Set("lobby", Cell{2, 3, 1}, "torch")
	assert.True(t, ContainsNonMatching(air, w, Air))
}

func TestContainsNonMatching_ShortCircuits(t *testing.T) {
	w := NewMemWorld()
	r := mustRegion(t, At(0, 0, 0, ""), At(9, 9, 9, ""))
	w.Set("", Cell{0, 0, 1}, "stone")

	reader := &countingReader{BlockReader: w}
	assert.True(t, ContainsNonMatching(r, reader, Air))
	assert.Equal(t, 2, reader.reads)
}

func TestCollectBlocks(t *testing.T) {
	w := NewMemWorld()
	w.Set("lobby", Cell{1, 0, 0}, "stone")
	w.Set("lobby", Cell{0, 1, 1}, "gold_block")
	w.Set("lobby", Cell{0, 0, 1}, "stone")
	w.Set("nether", Cell{0, 0, 0}, "netherrack")

	r := mustRegion(t, At(1, 1, 1, "lobby"), At(0, 0, 0, "lobby"))

	t.Run("default predicate skips air", func(t *testing.T) {
		got := CollectBlocks(r, w, nil)
		assert.Equal(t, []Block{
			{Cell{0, 0, 1}, "stone"},
			{Cell{0, 1, 1}, "gold_block"},
			{Cell{1, 0, 0}, "stone"},
		}, got)
	})

	t.Run("custom predicate", func(t *testing.T) {
		got := CollectBlocks(r, w, func(b Block) bool { return b.Material == "stone" })
		assert.Len(t, got, 2)
	})

	t.Run("empty region of air", func(t *testing.T) {
		empty := mustRegion(t, At(5, 5, 5, "lobby"), At(6, 6, 6, "lobby"))
		assert.Empty(t, CollectBlocks(empty, w, nil))
	})
}
