package ranked

// Table is an insertion-ordered key -> (score, value) mapping. It is not
// safe for concurrent use; Holder serializes access to it.
type Table[K comparable, V any] struct {
	order []K
	rows  map[K]Entry[K, V]
}

// NewTable creates an empty Table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{rows: make(map[K]Entry[K, V])}
}

// Set stores score and value for key. An existing key keeps its original
// insertion slot.
func (t *Table[K, V]) Set(key K, score int, value V) {
	if _, ok := t.rows[key]; !ok {
		t.order = append(t.order, key)
	}
	t.rows[key] = Entry[K, V]{Key: key, Score: score, Value: value}
}

// Get returns the row for key.
func (t *Table[K, V]) Get(key K) (Entry[K, V], bool) {
	e, ok := t.rows[key]
	return e, ok
}

// Delete removes key. It reports whether the key was present.
func (t *Table[K, V]) Delete(key K) bool {
	if _, ok := t.rows[key]; !ok {
		return false
	}
	delete(t.rows, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of rows.
func (t *Table[K, V]) Len() int {
	return len(t.order)
}

// Entries returns the rows in insertion order.
func (t *Table[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], len(t.order))
	for i, k := range t.order {
		entries[i] = t.rows[k]
	}
	return entries
}
