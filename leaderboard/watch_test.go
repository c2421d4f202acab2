package leaderboard

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestFileWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"00000000-0000-0000-0000-000000000010": {"name": "A", "score": 1}}`), 0o644))

	loads := make(chan []Record, 4)
	fw, err := NewFileWatcher(path, func(r []Record) { loads <- r }, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	fw.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fw.Run(ctx) }()

	first := <-loads
	require.Len(t, first, 1)

	require.NoError(t, os.WriteFile(path, []byte(`{
  "00000000-0000-0000-0000-000000000010": {"name": "A", "score": 1},
  "00000000-0000-0000-0000-000000000011": {"name": "B", "score": 2}
}`), 0o644))

	select {
	case second := <-loads:
		assert.Len(t, second, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestFileWatcherNoLoadAfterRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	var calls atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})
	fw, err := NewFileWatcher(path, func([]Record) {
		if calls.Add(1) == 2 {
			close(entered)
			<-release
		}
	}, nil)
	require.NoError(t, err)
	fw.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fw.Run(ctx) }()

	// wait for the initial load before touching the file
	require.Eventually(t, func() bool { return calls.Load() == 1 }, 5*time.Second, 5*time.Millisecond)
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"00000000-0000-0000-0000-000000000010": {"name": "A", "score": 1}}`), 0o644))

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	cancel()
	select {
	case <-done:
		t.Fatal("Run returned while a reload was still delivering")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	assert.NoError(t, <-done)
	returned := calls.Load()

	// a write after Run returned is never delivered
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, returned, calls.Load())
}
