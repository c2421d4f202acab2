package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapf(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "wrapped: %d", 42)

	assert.Contains(t, wrapped.Error(), "wrapped: 42")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"invalid region", Wrapf(ErrInvalidRegion, "worlds %q and %q", "a", "b"), IsInvalidRegion},
		{"invalid position", Wrap(ErrInvalidPosition, "x is NaN"), IsInvalidPosition},
		{"malformed location", Wrapf(ErrMalformedLocation, "segment %d", 2), IsMalformedLocation},
		{"malformed token", Wrap(ErrMalformedToken, "score_rank_x"), IsMalformedToken},
		{"not found", NewNotFoundError("owner %s", "abc"), IsNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.True(t, tt.check(Wrap(tt.err, "outer")))
			assert.False(t, tt.check(nil))
			assert.False(t, tt.check(New("unrelated")))
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	err := Wrap(ErrMalformedToken, "bad suffix")
	assert.False(t, IsMalformedLocation(err))
	assert.False(t, IsInvalidRegion(err))
}

func TestWithHint(t *testing.T) {
	err := WithHint(Wrap(ErrMalformedLocation, "decode"), "write positions as (x,y,z,world)")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "write positions as (x,y,z,world)", hints[0])
	assert.True(t, IsMalformedLocation(err))
}

func TestGetStack(t *testing.T) {
	err := New("with stack")
	assert.NotNil(t, GetStack(err))
}

func TestFormatVerbose(t *testing.T) {
	err := Wrap(New("inner"), "outer")
	verbose := fmt.Sprintf("%+v", err)
	assert.Contains(t, verbose, "outer")
	assert.Contains(t, verbose, "inner")
}

func TestNewInvalidRequestError(t *testing.T) {
	err := NewInvalidRequestError("rank %d out of range", 0)
	assert.True(t, Is(err, ErrInvalidRequest))
	assert.Contains(t, err.Error(), "rank 0 out of range")
}
