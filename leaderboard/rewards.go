package leaderboard

import (
	"context"
	"database/sql"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/parkour/errors"
	"github.com/teranos/parkour/logger"
)

// Economy credits money to an owner.
type Economy interface {
	Deposit(ctx context.Context, owner uuid.UUID, amount float64, reason string) error
}

// SQLLedger is an Economy backed by the balances and deposits tables.
type SQLLedger struct {
	db *sql.DB
}

// NewSQLLedger wraps a migrated database handle.
func NewSQLLedger(db *sql.DB) *SQLLedger {
	return &SQLLedger{db: db}
}

// Deposit implements Economy.
func (l *SQLLedger) Deposit(ctx context.Context, owner uuid.UUID, amount float64, reason string) error {
	if amount <= 0 {
		return errors.NewInvalidRequestError("deposit amount must be positive, got %v", amount)
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO balances (owner_id, amount) VALUES (?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET amount = amount + excluded.amount`,
		owner.String(), amount); err != nil {
		return errors.Wrapf(err, "failed to credit %s", owner)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO deposits (owner_id, amount, reason) VALUES (?, ?, ?)",
		owner.String(), amount, reason); err != nil {
		return errors.Wrapf(err, "failed to record deposit for %s", owner)
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// Balance returns the owner's balance, 0 when they never received a deposit.
func (l *SQLLedger) Balance(ctx context.Context, owner uuid.UUID) (float64, error) {
	var amount float64
	err := l.db.QueryRowContext(ctx,
		"SELECT amount FROM balances WHERE owner_id = ?", owner.String()).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read balance for %s", owner)
	}
	return amount, nil
}

// Payment is one reward attempt.
type Payment struct {
	Rank   int       `json:"rank"`
	Owner  uuid.UUID `json:"owner_id"`
	Name   string    `json:"name"`
	Amount float64   `json:"amount"`
	Paid   bool      `json:"paid"`
}

// Rewarder pays a configured amount to each rewarded rank.
type Rewarder struct {
	economy Economy
	amounts map[int]float64
	logger  *zap.SugaredLogger
}

// NewRewarder creates a Rewarder. amounts maps rank to payout.
func NewRewarder(economy Economy, amounts map[int]float64, log *zap.SugaredLogger) *Rewarder {
	return &Rewarder{economy: economy, amounts: amounts, logger: logger.OrNop(log)}
}

// Payout credits every rewarded rank that is occupied in standings, in
// rank order. A failed deposit is logged and reported as unpaid; it never
// aborts the payout.
func (r *Rewarder) Payout(ctx context.Context, standings Standings) []Payment {
	ranks := make([]int, 0, len(r.amounts))
	for rank := range r.amounts {
		ranks = append(ranks, rank)
	}
	slices.Sort(ranks)

	log := logger.ForContext(r.logger, ctx).With(logger.FieldOperation, "payout")
	var payments []Payment
	for _, rank := range ranks {
		amount := r.amounts[rank]
		e, ok := standings.EntryAt(rank)
		if !ok || amount <= 0 {
			continue
		}
		p := Payment{Rank: rank, Owner: e.Key, Name: e.Value.Name, Amount: amount}
		if err := r.economy.Deposit(ctx, e.Key, amount, "leaderboard rank reward"); err != nil {
			log.Errorw("Reward deposit failed",
				logger.FieldRank, rank,
				logger.FieldOwnerID, e.Key,
				logger.FieldError, err,
			)
		} else {
			p.Paid = true
		}
		payments = append(payments, p)
	}
	return payments
}
