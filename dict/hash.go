package dict

import "github.com/cespare/xxhash/v2"

// Stock hash functions and the equality predicate for comparable keys. A
// dictionary works with any caller-supplied pair as long as equal keys hash
// alike; these cover the common cases.

// StringHash hashes s with xxHash. The reinterpreted sign bit means roughly
// half of all strings get a negative code, which bucketIndex normalizes.
func StringHash(s string) int64 {
	return int64(xxhash.Sum64String(s))
}

// BytesHash hashes b with xxHash.
func BytesHash(b []byte) int64 {
	return int64(xxhash.Sum64(b))
}

// Int64Hash is the identity hash.
func Int64Hash(x int64) int64 {
	return x
}

// Uint64Hash reinterprets x as a signed code.
func Uint64Hash(x uint64) int64 {
	return int64(x)
}

// Equal is the == predicate for comparable key types.
func Equal[T comparable](x, y T) bool {
	return x == y
}
