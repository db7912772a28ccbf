package dict

import "errors"

var (
	// ErrDuplicateKey is returned by Add when the key is already present.
	ErrDuplicateKey = errors.New("dict: duplicate key")

	// ErrKeyNotFound is returned by Remove, Get and Set when the key is
	// absent.
	ErrKeyNotFound = errors.New("dict: key not found")

	// ErrInvalidState is returned by Cursor.Current before the first
	// Advance and after exhaustion.
	ErrInvalidState = errors.New("dict: cursor has no current entry")
)
