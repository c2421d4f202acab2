package leaderboard

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/teranos/parkour/errors"
)

// Store persists records.
type Store interface {
	// Load returns every record in first-submission order.
	Load(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, rec Record) error
	Delete(ctx context.Context, owner uuid.UUID) error
}

// SQLStore keeps records in the scores table. Row order (rowid) is the
// order owners first submitted; upserts keep it.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore wraps a migrated database handle.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Load implements Store.
func (s *SQLStore) Load(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT owner_id, name, score, time, difficulty
		FROM scores
		ORDER BY rowid`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query scores")
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var (
			owner string
			rec   Record
		)
		if err := rows.Scan(&owner, &rec.Name, &rec.Score, &rec.Time, &rec.Difficulty); err != nil {
			return nil, errors.Wrap(err, "failed to scan score row")
		}
		id, err := uuid.Parse(owner)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid owner id %q in scores", owner)
		}
		rec.OwnerID = id
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate scores")
	}
	return recs, nil
}

const upsertScore = `
	INSERT INTO scores (owner_id, name, score, time, difficulty, updated_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(owner_id) DO UPDATE SET
		name = excluded.name,
		score = excluded.score,
		time = excluded.time,
		difficulty = excluded.difficulty,
		updated_at = excluded.updated_at`

// Save implements Store.
func (s *SQLStore) Save(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, upsertScore,
		rec.OwnerID.String(), rec.Name, rec.Score, rec.Time, rec.Difficulty)
	if err != nil {
		return errors.Wrapf(err, "failed to save score for %s", rec.OwnerID)
	}
	return nil
}

// SaveAll upserts recs in order inside one transaction.
func (s *SQLStore) SaveAll(ctx context.Context, recs []Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertScore)
	if err != nil {
		return errors.Wrap(err, "failed to prepare upsert")
	}
	defer stmt.Close()

	for _, rec := range recs {
		if _, err := stmt.ExecContext(ctx,
			rec.OwnerID.String(), rec.Name, rec.Score, rec.Time, rec.Difficulty); err != nil {
			return errors.Wrapf(err, "failed to save score for %s", rec.OwnerID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// Delete implements Store. A missing owner is ErrNotFound.
func (s *SQLStore) Delete(ctx context.Context, owner uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM scores WHERE owner_id = ?", owner.String())
	if err != nil {
		return errors.Wrapf(err, "failed to delete score for %s", owner)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if n == 0 {
		return errors.NewNotFoundError("no score for %s", owner)
	}
	return nil
}
