package world

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/parkour/logger"
)

// cancelAfter cancels a context once a given number of reads happened
type cancelAfter struct {
	BlockReader
	after  int64
	reads  atomic.Int64
	cancel context.CancelFunc
}

func (c *cancelAfter) MaterialAt(world string, cell Cell) Material {
	if c.reads.Add(1) == c.after {
		c.cancel()
	}
	return c.BlockReader.MaterialAt(world, cell)
}

func TestScanner_CollectMatchesCollectBlocks(t *testing.T) {
	w := NewMemWorld()
	r := mustRegion(t, At(0, 0, 0, "lobby"), At(7, 3, 7, "lobby"))
	w.Set("lobby", Cell{3, 2, 1}, "stone")
	w.Set("lobby", Cell{7, 3, 7}, "beacon")

	s := NewScanner(w, ScanOptions{Logger: zaptest.NewLogger(t).Sugar()})
	got, err := s.Collect(context.Background(), r, nil)
	require.NoError(t, err)
	assert.Equal(t, CollectBlocks(r, w, nil), got)
}

func TestScanner_CancelsBetweenRows(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := mustRegion(t, At(0, 0, 0, ""), At(3, 3, 9, ""))
	// cancel in the middle of the first row (z-run of 10 cells)
	reader := &cancelAfter{BlockReader: NewMemWorld(), after: 4, cancel: cancel}

	s := NewScanner(reader, ScanOptions{})
	blocks, err := s.Collect(ctx, r, func(Block) bool { return true })
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, blocks)
	// the row in progress was finished, nothing after it was read
	assert.Equal(t, int64(10), reader.reads.Load())
}

func TestScanner_CollectAsync(t *testing.T) {
	w := NewMemWorld()
	w.Fill(mustRegion(t, At(0, 0, 0, ""), At(2, 0, 2, "")), "stone")
	r := mustRegion(t, At(0, 0, 0, ""), At(4, 1, 4, ""))

	s := NewScanner(w, ScanOptions{RowsPerSecond: 1000})

	var mu sync.Mutex
	var results [][]Block
	calls := 0
	for i := 0; i < 3; i++ {
		s.CollectAsync(context.Background(), r, nil, func(blocks []Block, err error) {
			mu.Lock()
			defer mu.Unlock()
			assert.NoError(t, err)
			results = append(results, blocks)
			calls++
		})
	}
	s.Wait()

	assert.Equal(t, 3, calls)
	for _, blocks := range results {
		assert.Len(t, blocks, 9)
	}
}

func TestScanner_AsyncCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScanner(NewMemWorld(), ScanOptions{RowsPerSecond: 1})
	done := make(chan error, 1)
	s.CollectAsync(ctx, Region{}, nil, func(_ []Block, err error) {
		done <- err
	})
	s.Wait()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestNewScanner_Burst(t *testing.T) {
	s := NewScanner(NewMemWorld(), ScanOptions{RowsPerSecond: 0.5})
	require.NotNil(t, s.limiter)
	assert.Equal(t, 1, s.limiter.Burst())

	s = NewScanner(NewMemWorld(), ScanOptions{RowsPerSecond: 200, Burst: 20})
	assert.Equal(t, 20, s.limiter.Burst())

	s = NewScanner(NewMemWorld(), ScanOptions{})
	assert.Nil(t, s.limiter)
}

func TestScanner_LogsContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := mustRegion(t, At(0, 0, 0, ""), At(1, 1, 3, ""))

	s := NewScanner(NewMemWorld(), ScanOptions{TraceRows: true, Logger: zap.New(core).Sugar()})
	ctx := logger.WithRequestID(context.Background(), "scan-42")
	_, err := s.Collect(ctx, r, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, logs.FilterMessage("Scanned row").Len())
	done := logs.FilterMessage("Region scan complete").All()
	require.Len(t, done, 1)
	fields := done[0].ContextMap()
	assert.Equal(t, "scan-42", fields[logger.FieldRequestID])
	assert.Equal(t, "collect", fields[logger.FieldOperation])
}

func TestScanner_NoRowTraceByDefault(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := mustRegion(t, At(0, 0, 0, ""), At(1, 1, 3, ""))

	s := NewScanner(NewMemWorld(), ScanOptions{Logger: zap.New(core).Sugar()})
	_, err := s.Collect(context.Background(), r, nil)
	require.NoError(t, err)
	assert.Zero(t, logs.FilterMessage("Scanned row").Len())
}
