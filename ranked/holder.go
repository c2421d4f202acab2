package ranked

import (
	"sync"
	"sync/atomic"
)

// Holder pairs a Table with its published Index. Writers are serialized;
// each change rebuilds the whole Index and swaps it in atomically. Readers
// call Index and never block.
type Holder[K comparable, V any] struct {
	mu    sync.Mutex
	table *Table[K, V]
	index atomic.Pointer[Index[K, V]]
}

// NewHolder creates a Holder with an empty table.
func NewHolder[K comparable, V any]() *Holder[K, V] {
	h := &Holder[K, V]{table: NewTable[K, V]()}
	h.index.Store(FromEntries[K, V](nil))
	return h
}

// Index returns the current snapshot.
func (h *Holder[K, V]) Index() *Index[K, V] {
	return h.index.Load()
}

// Set stores a row and republishes.
func (h *Holder[K, V]) Set(key K, score int, value V) {
	h.Update(func(t *Table[K, V]) bool {
		t.Set(key, score, value)
		return true
	})
}

// Delete removes a row and republishes when it existed.
func (h *Holder[K, V]) Delete(key K) bool {
	return h.Update(func(t *Table[K, V]) bool {
		return t.Delete(key)
	})
}

// Replace swaps in a whole new table built from entries in order.
func (h *Holder[K, V]) Replace(entries []Entry[K, V]) {
	h.Update(func(t *Table[K, V]) bool {
		*t = *NewTable[K, V]()
		for _, e := range entries {
			t.Set(e.Key, e.Score, e.Value)
		}
		return true
	})
}

// Update runs fn against the table under the writer lock. When fn reports
// a change the index is rebuilt and published before Update returns.
func (h *Holder[K, V]) Update(fn func(t *Table[K, V]) bool) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !fn(h.table) {
		return false
	}
	h.index.Store(FromTable(h.table))
	return true
}
