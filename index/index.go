// Package index implements the keyed mapping from logical row position to
// (key, underlying row), used for ordering, lookup, grouping, and
// cogrouping — the workhorse that drives every binary Series/Frame
// operation (see package join).
package index

import (
	"sort"

	"github.com/colgo/colgo/internal/base"
)

// Index is the ordered or unordered mapping described in spec §4.3:
// keys[i] is the key at logical position i, positions[i] is the row into
// the associated Column. Index values are immutable once constructed.
type Index[K any] struct {
	keys      []K
	positions []int
	ordered   bool
	cmp       base.Compare[K]

	// hash and buckets, when non-nil, back Get with an xxhash-bucketed
	// lookup table instead of a linear scan (spec §4.3: "for unordered, an
	// internal hash ... at construction"). Collisions within a bucket are
	// resolved by a linear scan under cmp, so correctness never depends on
	// hash quality.
	hash    base.Hash[K]
	buckets map[uint64][]int
}

// FromUnordered builds an Index over keys/positions with no ordering
// guarantee. Lookup (Get) falls back to a linear scan under cmp, per spec
// §4.3 ("for unordered, an internal hash or linear scan at construction").
// Use FromUnorderedHashed for the hash-backed alternative.
func FromUnordered[K any](keys []K, positions []int, cmp base.Compare[K]) Index[K] {
	base.AssertTrue(len(keys) == len(positions), "index: keys and positions must have equal length")
	return Index[K]{keys: keys, positions: positions, ordered: false, cmp: cmp}
}

// FromUnorderedHashed builds an unordered Index exactly as FromUnordered
// does, but additionally builds an internal hash-bucketed lookup table
// under hash so Get runs in expected O(1) instead of a linear scan —
// spec §4.3's "internal hash... at construction" alternative. hash need
// not be collision-free; Get resolves collisions within a bucket with cmp.
func FromUnorderedHashed[K any](keys []K, positions []int, cmp base.Compare[K], hash base.Hash[K]) Index[K] {
	base.AssertTrue(len(keys) == len(positions), "index: keys and positions must have equal length")
	buckets := make(map[uint64][]int, len(keys))
	for i, k := range keys {
		h := hash(k)
		buckets[h] = append(buckets[h], i)
	}
	return Index[K]{keys: keys, positions: positions, ordered: false, cmp: cmp, hash: hash, buckets: buckets}
}

// Ordered builds an Index over keys/positions that the caller asserts is
// already non-decreasing under cmp. Use Sorted to get this guarantee from
// arbitrary input instead of asserting it.
func Ordered[K any](keys []K, positions []int, cmp base.Compare[K]) Index[K] {
	base.AssertTrue(len(keys) == len(positions), "index: keys and positions must have equal length")
	ix := Index[K]{keys: keys, positions: positions, ordered: true, cmp: cmp}
	ix.checkOrderedInvariant()
	return ix
}

func (ix Index[K]) checkOrderedInvariant() {
	for i := 1; i < len(ix.keys); i++ {
		base.AssertTrue(ix.cmp(ix.keys[i-1], ix.keys[i]) <= 0,
			"index: Ordered called with non-monotonic keys at position %d", i)
	}
}

// Len returns the number of logical rows in the index.
func (ix Index[K]) Len() int { return len(ix.keys) }

// IsOrdered reports whether ix carries the ordered invariant.
func (ix Index[K]) IsOrdered() bool { return ix.ordered }

// Compare returns the key-order comparator ix was built with.
func (ix Index[K]) Compare() base.Compare[K] { return ix.cmp }

// KeyAt returns the key at logical position i.
func (ix Index[K]) KeyAt(i int) K { return ix.keys[i] }

// PositionAt returns the underlying row (into the associated Column) at
// logical position i.
func (ix Index[K]) PositionAt(i int) int { return ix.positions[i] }

// Positions returns the full positions slice, shared with ix — callers
// must not mutate it.
func (ix Index[K]) Positions() []int { return ix.positions }

// Keys returns the full keys slice, shared with ix — callers must not
// mutate it.
func (ix Index[K]) Keys() []K { return ix.keys }

// Get looks up the logical position of k. For an ordered Index this is an
// O(log n) binary search; for unordered, a linear scan under cmp. Returns
// the first matching logical position (keys may repeat) and false if k is
// absent — a bad lookup is not an error, per spec §7 ("a bad key lookup
// returns NA"); callers translate the bool into NA at the Series layer.
func (ix Index[K]) Get(k K) (int, bool) {
	if ix.ordered {
		n := len(ix.keys)
		lo, hi := 0, n
		for lo < hi {
			mid := (lo + hi) / 2
			if ix.cmp(ix.keys[mid], k) < 0 {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo < n && ix.cmp(ix.keys[lo], k) == 0 {
			return lo, true
		}
		return 0, false
	}
	if ix.buckets != nil {
		for _, i := range ix.buckets[ix.hash(k)] {
			if ix.cmp(ix.keys[i], k) == 0 {
				return i, true
			}
		}
		return 0, false
	}
	for i, key := range ix.keys {
		if ix.cmp(key, k) == 0 {
			return i, true
		}
	}
	return 0, false
}

// Foreach calls f with every (key, underlying row) pair in logical
// position order.
func (ix Index[K]) Foreach(f func(k K, position int)) {
	for i := range ix.keys {
		f(ix.keys[i], ix.positions[i])
	}
}

// Sorted returns an Index over the same (key, position) pairs, stably
// sorted by key — insertion order is preserved within equal keys (spec §8
// item 10).
func (ix Index[K]) Sorted() Index[K] {
	perm := make([]int, len(ix.keys))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return ix.cmp(ix.keys[perm[a]], ix.keys[perm[b]]) < 0
	})
	keys := make([]K, len(perm))
	positions := make([]int, len(perm))
	for i, p := range perm {
		keys[i] = ix.keys[p]
		positions[i] = ix.positions[p]
	}
	return Index[K]{keys: keys, positions: positions, ordered: true, cmp: ix.cmp}
}

// ResetIndices returns an Index over the same keys in the same logical
// order, with positions replaced by 0..n-1 — used after an operation
// (e.g. Compact) that has materialized a fresh, densely-packed Column.
func (ix Index[K]) ResetIndices() Index[K] {
	positions := make([]int, len(ix.keys))
	for i := range positions {
		positions[i] = i
	}
	return Index[K]{keys: ix.keys, positions: positions, ordered: ix.ordered, cmp: ix.cmp}
}

// Reindex returns an unordered Index with the same comparator, whose keys
// and positions are gathered through newPositions: result.keys[i] =
// ix.keys[newPositions[i]] and result.positions[i] =
// ix.positions[newPositions[i]]. This is used internally by series
// operations that need to carry an index's keys through a row permutation
// without touching the backing Column.
func (ix Index[K]) Reindex(newPositions []int) Index[K] {
	keys := make([]K, len(newPositions))
	positions := make([]int, len(newPositions))
	for i, p := range newPositions {
		keys[i] = ix.keys[p]
		positions[i] = ix.positions[p]
	}
	return Index[K]{keys: keys, positions: positions, ordered: false, cmp: ix.cmp}
}
