package ranked

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abc() *Index[string, struct{}] {
	return FromEntries([]Entry[string, struct{}]{
		{Key: "A", Score: 50},
		{Key: "B", Score: 80},
		{Key: "C", Score: 80},
	})
}

func TestFromEntries_StableDescending(t *testing.T) {
	ix := abc()

	keys := make([]string, 0, ix.Len())
	for _, e := range ix.Top(ix.Len()) {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"B", "C", "A"}, keys)

	for key, want := range map[string]int{"B": 1, "C": 2, "A": 3} {
		rank, ok := ix.RankOf(key)
		require.True(t, ok, key)
		assert.Equal(t, want, rank, key)
	}
}

func TestValueAt(t *testing.T) {
	ix := abc()

	tests := []struct {
		rank   int
		want   int
		wantOK bool
	}{
		{1, 80, true},
		{2, 80, true},
		{3, 50, true},
		{0, 0, false},
		{-1, 0, false},
		{4, 0, false},
		{999999, 0, false},
	}
	for _, tt := range tests {
		got, ok := ix.ValueAt(tt.rank)
		assert.Equal(t, tt.wantOK, ok, "rank %d", tt.rank)
		assert.Equal(t, tt.want, got, "rank %d", tt.rank)
	}

	key, ok := ix.KeyAt(3)
	assert.True(t, ok)
	assert.Equal(t, "A", key)
}

func TestRankOfAndValueAtAreInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	scores := make(map[int]int)
	var entries []Entry[int, string]
	for i := 0; i < 1000; i++ {
		key := rng.Intn(600)
		score := rng.Intn(50) // plenty of ties
		scores[key] = score
		entries = append(entries, Entry[int, string]{Key: key, Score: score})
	}

	ix := FromEntries(entries)
	require.Equal(t, len(scores), ix.Len())

	for key, score := range scores {
		rank, ok := ix.RankOf(key)
		require.True(t, ok)
		got, ok := ix.ValueAt(rank)
		require.True(t, ok)
		assert.Equal(t, score, got, "key %d", key)
	}

	prev := int(^uint(0) >> 1)
	for rank := 1; rank <= ix.Len(); rank++ {
		v, _ := ix.ValueAt(rank)
		require.LessOrEqual(t, v, prev, "not descending at rank %d", rank)
		prev = v
	}
}

func TestFromEntries_DuplicateKeyKeepsFirstSlot(t *testing.T) {
	ix := FromEntries([]Entry[string, string]{
		{Key: "A", Score: 10, Value: "old"},
		{Key: "B", Score: 20},
		{Key: "A", Score: 20, Value: "new"},
	})
	require.Equal(t, 2, ix.Len())

	first, _ := ix.EntryAt(1)
	assert.Equal(t, "A", first.Key, "A was inserted first and ties with B")
	assert.Equal(t, "new", first.Value)
}

func TestLookupAndTop(t *testing.T) {
	ix := abc()

	e, ok := ix.Lookup("C")
	require.True(t, ok)
	assert.Equal(t, 80, e.Score)

	_, ok = ix.Lookup("Z")
	assert.False(t, ok)
	_, ok = ix.RankOf("Z")
	assert.False(t, ok)

	assert.Len(t, ix.Top(2), 2)
	assert.Len(t, ix.Top(10), 3)
	assert.Nil(t, ix.Top(0))
	assert.Nil(t, ix.Top(-5))

	top := ix.Top(1)
	top[0].Score = -1
	v, _ := ix.ValueAt(1)
	assert.Equal(t, 80, v, "Top returns a copy")
}

func TestNilIndex(t *testing.T) {
	var ix *Index[string, int]
	assert.Equal(t, 0, ix.Len())
	_, ok := ix.ValueAt(1)
	assert.False(t, ok)
	_, ok = ix.RankOf("x")
	assert.False(t, ok)
	assert.Nil(t, ix.Top(3))
}
