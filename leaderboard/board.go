// Package leaderboard keeps per-owner best scores and ranks them.
//
// Board is the in-process view, backed by a ranked.Holder so that readers
// always query one consistent snapshot. Store persists records; Persistent
// ties the two together.
package leaderboard

import (
	"github.com/google/uuid"

	"github.com/teranos/parkour/ranked"
)

// Record is an owner's best run.
type Record struct {
	OwnerID    uuid.UUID `json:"owner_id" yaml:"-"`
	Name       string    `json:"name" yaml:"name"`
	Score      int       `json:"score" yaml:"score"`
	Time       string    `json:"time" yaml:"time"`
	Difficulty string    `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
}

// Standings is one immutable ordering of records.
type Standings = *ranked.Index[uuid.UUID, Record]

// Board ranks records by descending score. Ties keep the order in which
// owners first appeared.
type Board struct {
	holder *ranked.Holder[uuid.UUID, Record]
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{holder: ranked.NewHolder[uuid.UUID, Record]()}
}

// Submit stores rec when the owner is new or rec beats their current score.
// It reports whether the record was stored.
func (b *Board) Submit(rec Record) bool {
	return b.holder.Update(func(t *ranked.Table[uuid.UUID, Record]) bool {
		if cur, ok := t.Get(rec.OwnerID); ok && rec.Score <= cur.Score {
			return false
		}
		t.Set(rec.OwnerID, rec.Score, rec)
		return true
	})
}

// Put stores rec unconditionally.
func (b *Board) Put(rec Record) {
	b.holder.Set(rec.OwnerID, rec.Score, rec)
}

// Remove drops the owner's record and reports whether it existed.
func (b *Board) Remove(owner uuid.UUID) bool {
	return b.holder.Delete(owner)
}

// Load replaces every record. Order of recs is the tie-break order.
func (b *Board) Load(recs []Record) {
	entries := make([]ranked.Entry[uuid.UUID, Record], len(recs))
	for i, r := range recs {
		entries[i] = ranked.Entry[uuid.UUID, Record]{Key: r.OwnerID, Score: r.Score, Value: r}
	}
	b.holder.Replace(entries)
}

// Standings returns the current snapshot. Callers answering several
// queries for one request should hold on to it.
func (b *Board) Standings() Standings {
	return b.holder.Index()
}

// AtPlace returns the record at rank (1 = best).
func (b *Board) AtPlace(rank int) (Record, bool) {
	e, ok := b.Standings().EntryAt(rank)
	return e.Value, ok
}

// Record returns the owner's stored record.
func (b *Board) Record(owner uuid.UUID) (Record, bool) {
	e, ok := b.Standings().Lookup(owner)
	return e.Value, ok
}

// HighScore returns the owner's best score, or 0 when they have none.
func (b *Board) HighScore(owner uuid.UUID) int {
	e, _ := b.Standings().Lookup(owner)
	return e.Score
}

// RankOf returns the owner's rank.
func (b *Board) RankOf(owner uuid.UUID) (int, bool) {
	return b.Standings().RankOf(owner)
}

// Top returns up to n records, best first.
func (b *Board) Top(n int) []Record {
	top := b.Standings().Top(n)
	out := make([]Record, len(top))
	for i, e := range top {
		out[i] = e.Value
	}
	return out
}

// Len returns the number of ranked owners.
func (b *Board) Len() int {
	return b.Standings().Len()
}
