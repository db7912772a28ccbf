// Package memoize caches the results of a pure function in a dictionary.
package memoize

import "hashdict/dict"

type Memoize struct {
	f       func(uint64) uint64
	results *dict.Dict[uint64, uint64]
}

func NewMemoize(f func(uint64) uint64) Memoize {
	return Memoize{
		f:       f,
		results: dict.New[uint64, uint64](dict.Uint64Hash, dict.Equal[uint64]),
	}
}

func (m Memoize) Call(x uint64) uint64 {
	cached, err := m.results.Get(x)
	if err == nil {
		return cached
	}
	y := m.f(x)
	// x was just absent, so Add cannot report a duplicate
	_ = m.results.Add(x, y)
	return y
}

// Size returns the number of cached results.
func (m Memoize) Size() uint64 {
	return m.results.Count()
}

// Reset drops all cached results.
func (m Memoize) Reset() {
	m.results.Clear()
}

// MockMemoize has the same API as Memoize but with an implementation that
// doesn't actually save any results.
type MockMemoize struct {
	f func(uint64) uint64
}

func NewMockMemoize(f func(uint64) uint64) *MockMemoize {
	return &MockMemoize{f: f}
}

func (m *MockMemoize) Call(x uint64) uint64 {
	return m.f(x)
}
