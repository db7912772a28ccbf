package dict

import "hashdict/chain"

// A Cursor is a forward-only traversal over a dictionary's entries: ascending
// slot order, and within one slot most recently inserted first.
//
// A cursor captures the bucket array that is current when it is created and
// never re-reads the dictionary. A later Add, Remove, Set, Clear or resize
// therefore does not redirect the cursor: it keeps walking its captured
// array, which may no longer be the one the dictionary owns. Such a stale
// walk never fails, but it can surface entries that the dictionary has since
// removed or rehashed elsewhere. Callers that mutate while iterating get the
// snapshot, not the live state.
type Cursor[K, V any] struct {
	buckets []*chain.List[Entry[K, V]]
	slot    int
	node    *chain.Node[Entry[K, V]]
}

// Cursor returns a cursor over the current bucket array, positioned before
// the first entry. Call Advance before Current.
func (d *Dict[K, V]) Cursor() *Cursor[K, V] {
	return &Cursor[K, V]{buckets: d.buckets, slot: -1}
}

// Advance moves to the next entry and reports whether one exists. Once it
// returns false the cursor is exhausted and stays so until Reset.
func (c *Cursor[K, V]) Advance() bool {
	if c.node != nil {
		c.node = c.node.Next()
		if c.node != nil {
			return true
		}
	}
	for c.slot++; c.slot < len(c.buckets); c.slot++ {
		b := c.buckets[c.slot]
		if b != nil && b.Front() != nil {
			c.node = b.Front()
			return true
		}
	}
	c.slot = len(c.buckets) - 1 // keep further Advance calls cheap and false
	return false
}

// Current returns the entry at the cursor position. It fails with
// ErrInvalidState before the first Advance and after exhaustion.
func (c *Cursor[K, V]) Current() (Entry[K, V], error) {
	if c.node == nil {
		var zero Entry[K, V]
		return zero, ErrInvalidState
	}
	return c.node.Value, nil
}

// Reset returns the cursor to the position before the first entry of its
// captured array. It does not re-read the dictionary: a cursor created before
// a resize still walks the pre-resize array after Reset.
func (c *Cursor[K, V]) Reset() {
	c.slot = -1
	c.node = nil
}
