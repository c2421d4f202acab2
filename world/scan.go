package world

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/teranos/parkour/errors"
	"github.com/teranos/parkour/logger"
)

// ScanOptions configures a Scanner.
type ScanOptions struct {
	// RowsPerSecond throttles scans; <= 0 runs unthrottled.
	RowsPerSecond float64
	// Burst is the number of rows that may run back to back. Defaults to
	// max(1, RowsPerSecond).
	Burst int
	// TraceRows logs every finished row at debug level.
	TraceRows bool
	Logger    *zap.SugaredLogger
}

// Scanner runs block collection off the caller's goroutine. Cancellation is
// checked between rows (one z-run at fixed x, y), never inside a row.
type Scanner struct {
	blocks  BlockReader
	limiter   *rate.Limiter
	traceRows bool
	logger    *zap.SugaredLogger
	wg        sync.WaitGroup
}

// NewScanner creates a Scanner reading from blocks.
func NewScanner(blocks BlockReader, opts ScanOptions) *Scanner {
	s := &Scanner{
		blocks:    blocks,
		traceRows: opts.TraceRows,
		logger:    logger.OrNop(opts.Logger),
	}
	if opts.RowsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = max(1, int(opts.RowsPerSecond))
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RowsPerSecond), burst)
	}
	return s
}

// Collect gathers the blocks of r accepted by keep (nil selects NotAir).
// On cancellation it returns the context error and no blocks.
func (s *Scanner) Collect(ctx context.Context, r Region, keep Predicate) ([]Block, error) {
	if keep == nil {
		keep = NotAir
	}
	log := logger.ForContext(s.logger, ctx).With(logger.FieldOperation, "collect")
	start := time.Now()
	world := r.World()
	lo, hi := r.MinCell(), r.MaxCell()

	var out []Block
	rows := 0
	for x, y := range r.rows() {
		if err := ctx.Err(); err != nil {
			return nil, s.stopped(log, r, rows, err)
		}
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return nil, s.stopped(log, r, rows, err)
			}
		}
		for z := lo.Z; z <= hi.Z; z++ {
			c := Cell{X: x, Y: y, Z: z}
			b := Block{Cell: c, Material: s.blocks.MaterialAt(world, c)}
			if keep(b) {
				out = append(out, b)
			}
		}
		rows++
		if s.traceRows {
			log.Debugw("Scanned row", "x", x, "y", y, logger.FieldCount, len(out))
		}
	}

	log.Debugw("Region scan complete",
		logger.FieldRegion, r.String(),
		logger.FieldRows, rows,
		logger.FieldCount, len(out),
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return out, nil
}

// CollectAsync runs Collect on a new goroutine and hands the result to done,
// which is called exactly once.
func (s *Scanner) CollectAsync(ctx context.Context, r Region, keep Predicate, done func([]Block, error)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		done(s.Collect(ctx, r, keep))
	}()
}

// Wait blocks until every CollectAsync call has delivered its result.
func (s *Scanner) Wait() {
	s.wg.Wait()
}

func (s *Scanner) stopped(log *zap.SugaredLogger, r Region, rows int, cause error) error {
	log.Infow("Region scan stopped",
		logger.FieldRegion, r.String(),
		logger.FieldRows, rows,
		logger.FieldError, cause,
	)
	return errors.Wrapf(cause, "scan of %s stopped after %d rows", r, rows)
}
