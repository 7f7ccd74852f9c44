package index

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/colgo/colgo/internal/base"
)

// HashInt is a base.Hash[int] built on xxhash rather than Go's randomized
// built-in map hash, matching spec §4.3's "internal hash... at
// construction" with a fixed, non-randomized function so Index's bucketing
// is reproducible across runs (useful for the property tests in §8).
func HashInt(k int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(k))
	return xxhash.Sum64(buf[:])
}

// HashInt64 is HashInt's sibling for int64 keys.
func HashInt64(k int64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(k))
	return xxhash.Sum64(buf[:])
}

// HashString is a base.Hash[string] built on xxhash.
func HashString(k string) uint64 {
	return xxhash.Sum64String(k)
}

// HashFloat64 is a base.Hash[float64] built on xxhash, hashing the IEEE-754
// bit pattern.
func HashFloat64(k float64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(k))
	return xxhash.Sum64(buf[:])
}

var _ base.Hash[int] = HashInt
var _ base.Hash[int64] = HashInt64
var _ base.Hash[string] = HashString
var _ base.Hash[float64] = HashFloat64
