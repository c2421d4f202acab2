// Package ranked keeps score tables in descending order and answers
// rank<->score queries against them.
//
// An Index is immutable once built. Holder owns the mutable table and
// publishes a fresh Index after every change, so readers always see either
// the previous ordering or the next one, never a partial sort.
package ranked

import (
	"cmp"
	"slices"
)

// Entry is one row of a score table. Value carries auxiliary data
// (display name, time text) alongside the score.
type Entry[K comparable, V any] struct {
	Key   K
	Score int
	Value V
}

// Index is a score table sorted by descending score. Equal scores keep
// their insertion order. Rank 1 is the highest score.
type Index[K comparable, V any] struct {
	entries []Entry[K, V]
	ranks   map[K]int
}

// FromEntries builds an Index from entries in insertion order. When a key
// appears more than once, the last entry wins but keeps the first slot.
func FromEntries[K comparable, V any](entries []Entry[K, V]) *Index[K, V] {
	deduped := make([]Entry[K, V], 0, len(entries))
	slot := make(map[K]int, len(entries))
	for _, e := range entries {
		if i, ok := slot[e.Key]; ok {
			deduped[i] = e
			continue
		}
		slot[e.Key] = len(deduped)
		deduped = append(deduped, e)
	}

	slices.SortStableFunc(deduped, func(a, b Entry[K, V]) int {
		return cmp.Compare(b.Score, a.Score)
	})

	ranks := make(map[K]int, len(deduped))
	for i, e := range deduped {
		ranks[e.Key] = i + 1
	}
	return &Index[K, V]{entries: deduped, ranks: ranks}
}

// FromTable builds an Index from a Table snapshot.
func FromTable[K comparable, V any](t *Table[K, V]) *Index[K, V] {
	return FromEntries(t.Entries())
}

// Len returns the number of ranked keys.
func (ix *Index[K, V]) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// EntryAt returns the entry holding rank. Ranks outside [1, Len] are absent.
func (ix *Index[K, V]) EntryAt(rank int) (Entry[K, V], bool) {
	if rank < 1 || rank > ix.Len() {
		var zero Entry[K, V]
		return zero, false
	}
	return ix.entries[rank-1], true
}

// ValueAt returns the score at rank.
func (ix *Index[K, V]) ValueAt(rank int) (int, bool) {
	e, ok := ix.EntryAt(rank)
	return e.Score, ok
}

// KeyAt returns the key at rank.
func (ix *Index[K, V]) KeyAt(rank int) (K, bool) {
	e, ok := ix.EntryAt(rank)
	return e.Key, ok
}

// RankOf returns the rank of key.
func (ix *Index[K, V]) RankOf(key K) (int, bool) {
	if ix == nil {
		return 0, false
	}
	rank, ok := ix.ranks[key]
	return rank, ok
}

// Lookup returns the entry for key.
func (ix *Index[K, V]) Lookup(key K) (Entry[K, V], bool) {
	rank, ok := ix.RankOf(key)
	if !ok {
		var zero Entry[K, V]
		return zero, false
	}
	return ix.entries[rank-1], true
}

// Top returns the first n entries, n clamped to [0, Len]. The returned
// slice is a copy.
func (ix *Index[K, V]) Top(n int) []Entry[K, V] {
	n = min(max(n, 0), ix.Len())
	if n == 0 {
		return nil
	}
	return slices.Clone(ix.entries[:n])
}
