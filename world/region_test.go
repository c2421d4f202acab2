package world

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/parkour/errors"
)

func TestNormalize(t *testing.T) {
	t.Run("orders corners per axis", func(t *testing.T) {
		r, err := Normalize(At(5, -2, 9, "lobby"), At(-3, 7, 1, "lobby"))
		require.NoError(t, err)
		assert.Equal(t, At(-3, -2, 1, "lobby"), r.Min)
		assert.Equal(t, At(5, 7, 9, "lobby"), r.Max)
	})

	t.Run("takes the world of whichever corner has one", func(t *testing.T) {
		r, err := Normalize(At(0, 0, 0, ""), At(1, 1, 1, "nether"))
		require.NoError(t, err)
		assert.Equal(t, "nether", r.World())
		assert.Equal(t, "nether", r.Max.World)
	})

	t.Run("rejects corners in different worlds", func(t *testing.T) {
		_, err := Normalize(At(0, 0, 0, "lobby"), At(1, 1, 1, "nether"))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidRegion(err))
	})

	t.Run("rejects non-finite coordinates", func(t *testing.T) {
		for _, bad := range []Position{
			At(math.NaN(), 0, 0, ""),
			At(0, math.Inf(1), 0, ""),
			At(0, 0, math.Inf(-1), ""),
		} {
			_, err := Normalize(At(0, 0, 0, ""), bad)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidPosition(err), "%v", bad)

			_, err = Normalize(bad, At(0, 0, 0, ""))
			assert.True(t, errors.IsInvalidPosition(err), "%v", bad)
		}
	})
}

func TestCells_VisitsEveryCellOnce(t *testing.T) {
	corners := [][2]Position{
		{At(0, 0, 0, ""), At(0, 0, 0, "")},
		{At(0, 0, 0, ""), At(3, 2, 1, "")},
		{At(4, 4, 4, ""), At(-2, 1, 3, "")},
		{At(-0.5, 10.9, -7.2, ""), At(2.3, 8, -9.99, "")},
		{At(15, 0, 15, ""), At(16, 1, 16, "")},
	}

	for _, c := range corners {
		r, err := Normalize(c[0], c[1])
		require.NoError(t, err)

		lo, hi := r.MinCell(), r.MaxCell()
		want := (hi.X - lo.X + 1) * (hi.Y - lo.Y + 1) * (hi.Z - lo.Z + 1)

		seen := make(map[Cell]bool)
		count := 0
		for cell := range r.Cells() {
			assert.False(t, seen[cell], "cell %v visited twice", cell)
			seen[cell] = true
			count++
		}
		assert.Equal(t, want, count, "region %v", r)
		vol, ok := r.Volume()
		assert.True(t, ok)
		assert.Equal(t, want, vol)
	}
}

func TestCells_Order(t *testing.T) {
	r, err := Normalize(At(1, 1, 1, ""), At(0, 0, 0, ""))
	require.NoError(t, err)

	var got []Cell
	for c := range r.Cells() {
		got = append(got, c)
	}
	want := []Cell{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}
	assert.Equal(t, want, got)
}

func TestCells_Restartable(t *testing.T) {
	r, err := Normalize(At(0, 0, 0, ""), At(2, 2, 2, ""))
	require.NoError(t, err)

	seq := r.Cells()
	var first, second []Cell
	for c := range seq {
		first = append(first, c)
	}
	for c := range seq {
		second = append(second, c)
	}
	assert.Equal(t, first, second)

	// early break leaves the sequence reusable
	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestZeroVolumeRegion(t *testing.T) {
	p := At(7.5, 64, -3.25, "lobby")
	r, err := Normalize(p, p)
	require.NoError(t, err)
	vol, ok := r.Volume()
	assert.True(t, ok)
	assert.Equal(t, 1, vol)

	var cells []Cell
	for c := range r.Cells() {
		cells = append(cells, c)
	}
	assert.Equal(t, []Cell{{7, 64, -4}}, cells)
}

func TestContains(t *testing.T) {
	r, err := Normalize(At(0, 0, 0, "lobby"), At(10, 5, 10, "lobby"))
	require.NoError(t, err)

	assert.True(t, r.Contains(At(5, 2, 5, "lobby")))
	assert.True(t, r.Contains(At(10.05, 5, 10, "lobby")), "inside tolerance")
	assert.True(t, r.Contains(At(-0.1, 0, 0, "")), "unset world is comparable")
	assert.False(t, r.Contains(At(10.2, 5, 10, "lobby")))
	assert.False(t, r.Contains(At(5, 2, 5, "nether")))
}

func TestBounds(t *testing.T) {
	r, err := Bounds([]Position{
		At(3, 1, 2, ""),
		At(-1, 9, 4, "lobby"),
		At(2, 0, -6, "lobby"),
	})
	require.NoError(t, err)
	assert.Equal(t, At(-1, 0, -6, "lobby"), r.Min)
	assert.Equal(t, At(3, 9, 4, "lobby"), r.Max)

	_, err = Bounds(nil)
	assert.True(t, errors.IsInvalidRegion(err))

	_, err = Bounds([]Position{At(0, 0, 0, "a"), At(1, 1, 1, "b")})
	assert.True(t, errors.IsInvalidRegion(err))
}

func TestParseFacing(t *testing.T) {
	tests := map[string]Cell{
		"north": {Z: -1},
		"South": {Z: 1},
		" east": {X: 1},
		"WEST":  {X: -1},
	}
	for face, want := range tests {
		got, ok := ParseFacing(face)
		assert.True(t, ok, face)
		assert.Equal(t, want, got, face)
	}

	_, ok := ParseFacing("up")
	assert.False(t, ok)
}

func TestPositionCell(t *testing.T) {
	assert.Equal(t, Cell{-1, 0, 2}, At(-0.5, 0.99, 2, "").Cell())
	assert.Equal(t, "(1,2,3)", Cell{1, 2, 3}.String())
	assert.Equal(t, At(1, 2, 3, "w"), Cell{1, 2, 3}.Position("w"))
	assert.Equal(t, Cell{2, 2, 2}, Cell{1, 1, 1}.Add(Cell{1, 1, 1}))
}

func TestVolume_Overflow(t *testing.T) {
	r, err := Normalize(At(0, 0, 0, ""), At(3e6, 3e6, 3e6, ""))
	require.NoError(t, err)

	dx, dy, dz := r.Size()
	assert.Equal(t, [3]int{3000001, 3000001, 3000001}, [3]int{dx, dy, dz})

	vol, ok := r.Volume()
	assert.False(t, ok)
	assert.Equal(t, math.MaxInt, vol)

	// the widest representable axis saturates instead of wrapping
	r = Region{Min: Position{X: math.MinInt64}, Max: Position{X: 1 << 62}}
	dx, _, _ = r.Size()
	assert.Equal(t, math.MaxInt, dx)
}
