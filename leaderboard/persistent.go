package leaderboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/parkour/errors"
	"github.com/teranos/parkour/logger"
)

// Persistent is a Board whose changes are written through to a Store.
// Writes are serialized: the store is written first and the board only
// changes once the write succeeded, so the two never disagree. The board
// is not exposed; Persistent forwards its read side.
type Persistent struct {
	mu     sync.Mutex
	board  *Board
	store  Store
	logger *zap.SugaredLogger
}

// NewPersistent wraps board and store. Call Reload to populate the board.
func NewPersistent(board *Board, store Store, log *zap.SugaredLogger) *Persistent {
	return &Persistent{board: board, store: store, logger: logger.OrNop(log)}
}

// Reload replaces the board contents with what the store holds.
func (p *Persistent) Reload(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	recs, err := p.store.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "reload leaderboard")
	}
	p.board.Load(recs)
	logger.ForContext(p.logger, ctx).Debugw("Leaderboard loaded", logger.FieldCount, len(recs))
	return nil
}

// Submit persists rec when it improves the owner's score.
func (p *Persistent) Submit(ctx context.Context, rec Record) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cur, ok := p.board.Record(rec.OwnerID); ok && rec.Score <= cur.Score {
		return false, nil
	}
	if err := p.store.Save(ctx, rec); err != nil {
		return false, err
	}
	if !p.board.Submit(rec) {
		return false, nil
	}
	rank, _ := p.board.RankOf(rec.OwnerID)
	logger.ForContext(p.logger, ctx).Infow("New high score",
		logger.FieldOperation, "submit",
		logger.FieldOwnerID, rec.OwnerID,
		logger.FieldScore, rec.Score,
		logger.FieldRank, rank,
	)
	return true, nil
}

// Put persists rec unconditionally.
func (p *Persistent) Put(ctx context.Context, rec Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.Save(ctx, rec); err != nil {
		return err
	}
	p.board.Put(rec)
	return nil
}

// Remove deletes the owner's record from the store and the board.
func (p *Persistent) Remove(ctx context.Context, owner uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.Delete(ctx, owner); err != nil {
		return err
	}
	p.board.Remove(owner)
	return nil
}

// Standings returns the current snapshot.
func (p *Persistent) Standings() Standings { return p.board.Standings() }

// AtPlace returns the record at rank (1 = best).
func (p *Persistent) AtPlace(rank int) (Record, bool) { return p.board.AtPlace(rank) }

// Record returns the owner's stored record.
func (p *Persistent) Record(owner uuid.UUID) (Record, bool) { return p.board.Record(owner) }

// HighScore returns the owner's best score, or 0 when they have none.
func (p *Persistent) HighScore(owner uuid.UUID) int { return p.board.HighScore(owner) }

// RankOf returns the owner's rank.
func (p *Persistent) RankOf(owner uuid.UUID) (int, bool) { return p.board.RankOf(owner) }

// Top returns up to n records, best first.
func (p *Persistent) Top(n int) []Record { return p.board.Top(n) }

// Len returns the number of ranked owners.
func (p *Persistent) Len() int { return p.board.Len() }
