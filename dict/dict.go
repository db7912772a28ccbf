// Package dict implements a hash dictionary with separate chaining and
// load-factor driven resizing.
//
// Keys are hashed into a bucket array; colliding entries live in a doubly
// linked chain ([hashdict/chain]) with the most recent insertion at the head.
// The bucket array doubles when the filled-bucket ratio reaches 0.7 and
// halves when it comes back near 0.3, never dropping below the initial
// length. Resizing relinks the existing chain nodes into the new array, so no
// entry is ever copied or rebuilt.
//
// A Dict is not safe for concurrent use.
package dict

import (
	"math"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"

	"hashdict/chain"
)

const (
	// DefaultInitialBuckets is the bucket-array length used by New.
	DefaultInitialBuckets = 16

	growLoad        = 0.7
	shrinkLoad      = 0.3
	shrinkTolerance = 0.1
)

// An Entry is one key/value association. The key never changes once stored;
// Set replaces the whole entry rather than mutating the value in place.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// A Dict maps keys to values using the caller-supplied hash function and
// equality predicate. The two must agree: equal(a, b) implies
// hash(a) == hash(b).
type Dict[K, V any] struct {
	hash  func(K) int64
	equal func(K, K) bool

	// buckets[i] is nil while slot i is empty
	buckets        []*chain.List[Entry[K, V]]
	count          uint64
	filled         uint64
	initialBuckets uint64
}

// New returns an empty dictionary with DefaultInitialBuckets slots.
func New[K, V any](hash func(K) int64, equal func(K, K) bool) *Dict[K, V] {
	return NewSize[K, V](hash, equal, DefaultInitialBuckets)
}

// NewSize returns an empty dictionary whose bucket array starts at, and never
// shrinks below, initialBuckets slots.
func NewSize[K, V any](hash func(K) int64, equal func(K, K) bool, initialBuckets uint64) *Dict[K, V] {
	if initialBuckets == 0 {
		panic("dict: initialBuckets must be positive")
	}
	return &Dict[K, V]{
		hash:           hash,
		equal:          equal,
		buckets:        make([]*chain.List[Entry[K, V]], initialBuckets),
		initialBuckets: initialBuckets,
	}
}

// bucketIndex maps a hash code onto [0, buckets). Negative codes are
// normalized by two's complement negation, so math.MinInt64 (whose absolute
// value is not representable) lands on 1<<63 rather than misbehaving.
func bucketIndex(h int64, buckets uint64) uint64 {
	var u uint64
	if h < 0 {
		u = uint64(-h)
	} else {
		u = uint64(h)
	}
	return u % buckets
}

func (d *Dict[K, V]) bucketFor(key K) uint64 {
	return bucketIndex(d.hash(key), uint64(len(d.buckets)))
}

// findNode scans b for key and returns its node, or nil if absent.
func (d *Dict[K, V]) findNode(b *chain.List[Entry[K, V]], key K) *chain.Node[Entry[K, V]] {
	for n := b.Front(); n != nil; n = n.Next() {
		if d.equal(n.Value.Key, key) {
			return n
		}
	}
	return nil
}

// Add inserts a new entry. It fails with ErrDuplicateKey, changing nothing,
// if key is already present.
//
// The grow check runs after the duplicate scan and before the insertion, and
// counts the incoming entry: the array doubles once the prospective
// filled-bucket count reaches 0.7 of its length.
func (d *Dict[K, V]) Add(key K, value V) error {
	idx := d.bucketFor(key)
	if b := d.buckets[idx]; b != nil && d.findNode(b, key) != nil {
		return ErrDuplicateKey
	}

	if float64(d.filled+1) >= growLoad*float64(len(d.buckets)) {
		d.rehash(uint64(len(d.buckets)) * 2)
		idx = d.bucketFor(key)
	}

	b := d.buckets[idx]
	if b == nil {
		b = chain.New[Entry[K, V]]()
		d.buckets[idx] = b
		d.filled = std.SumAssumeNoOverflow(d.filled, 1)
	}
	b.PushFront(Entry[K, V]{Key: key, Value: value})
	d.count = std.SumAssumeNoOverflow(d.count, 1)
	return nil
}

// Remove deletes the entry for key. It fails with ErrKeyNotFound, changing
// nothing, if key is absent. The shrink check runs after a successful
// deletion.
func (d *Dict[K, V]) Remove(key K) error {
	idx := d.bucketFor(key)
	b := d.buckets[idx]
	if b == nil {
		return ErrKeyNotFound
	}
	n := d.findNode(b, key)
	if n == nil {
		return ErrKeyNotFound
	}

	b.Remove(n)
	if b.Empty() {
		d.buckets[idx] = nil
		d.filled--
	}
	d.count--

	if d.shouldShrink() {
		d.rehash(uint64(len(d.buckets)) / 2)
	}
	return nil
}

// shouldShrink reports whether the bucket array should halve: the
// filled-bucket count sits within the tolerance band around 0.3 of the
// length, and halving would not go below the initial length. The band test is
// a proximity check, not a threshold, so removals can step over it without
// firing.
func (d *Dict[K, V]) shouldShrink() bool {
	length := uint64(len(d.buckets))
	if length/2 < d.initialBuckets {
		return false
	}
	return math.Abs(float64(d.filled)-shrinkLoad*float64(length)) < shrinkTolerance
}

// rehash replaces the bucket array with one of newBuckets slots, relinking
// every live node into its new chain. Nodes move by reference: entry identity
// is preserved and nothing is reallocated. filled is recounted from scratch.
func (d *Dict[K, V]) rehash(newBuckets uint64) {
	old := d.buckets
	d.buckets = make([]*chain.List[Entry[K, V]], newBuckets)
	d.filled = 0

	var relinked uint64
	for _, b := range old {
		if b == nil {
			continue
		}
		n := b.Front()
		for n != nil {
			next := n.Next()
			idx := bucketIndex(d.hash(n.Value.Key), newBuckets)
			nb := d.buckets[idx]
			if nb == nil {
				nb = chain.New[Entry[K, V]]()
				d.buckets[idx] = nb
				d.filled++
			}
			nb.PushNode(n)
			relinked++
			n = next
		}
	}
	primitive.Assert(relinked == d.count)
}

// Get returns the value stored for key, or ErrKeyNotFound.
func (d *Dict[K, V]) Get(key K) (V, error) {
	b := d.buckets[d.bucketFor(key)]
	if b != nil {
		if n := d.findNode(b, key); n != nil {
			return n.Value.Value, nil
		}
	}
	var zero V
	return zero, ErrKeyNotFound
}

// Set replaces the value stored for key. It is not an upsert: if key is
// absent it fails with ErrKeyNotFound and inserts nothing. A successful Set
// is exactly Remove followed by Add, so both resize checks run and the entry
// moves to the head of its chain.
func (d *Dict[K, V]) Set(key K, value V) error {
	if err := d.Remove(key); err != nil {
		return err
	}
	return d.Add(key, value)
}

// ContainsKey reports whether key is present. It has no side effects.
func (d *Dict[K, V]) ContainsKey(key K) bool {
	b := d.buckets[d.bucketFor(key)]
	return b != nil && d.findNode(b, key) != nil
}

// Clear empties the dictionary and resets the bucket array to its initial
// length. Chains reachable from previously created cursors are unaffected.
func (d *Dict[K, V]) Clear() {
	d.buckets = make([]*chain.List[Entry[K, V]], d.initialBuckets)
	d.count = 0
	d.filled = 0
}

// Count returns the number of live entries. It is maintained incrementally,
// never recomputed by scanning.
func (d *Dict[K, V]) Count() uint64 {
	return d.count
}

// Buckets returns the current bucket-array length.
func (d *Dict[K, V]) Buckets() uint64 {
	return uint64(len(d.buckets))
}

// FilledBuckets returns the number of non-empty slots.
func (d *Dict[K, V]) FilledBuckets() uint64 {
	return d.filled
}
