package series

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
	"github.com/colgo/colgo/index"
	"github.com/colgo/colgo/internal/base"
	"github.com/colgo/colgo/internal/invariants"
)

// Builder accumulates (key, cell) appends into a Series, per spec §6's
// Series builder contract. A Builder is owned by one caller and is not
// thread-safe.
//
// The ordered variant (NewOrderedBuilder) requires the caller to append
// keys in non-decreasing order and verifies this as it goes, matching
// index.Ordered's cheaper, caller-guaranteed path. The unordered variant
// (NewUnorderedBuilder) accepts keys in any order and sorts them on
// Result() ("sorts on finalize if needed"), paying the cost once instead of
// on every append.
type Builder[K, V any] struct {
	keys    []K
	col     column.Builder[V]
	cmp     base.Compare[K]
	ordered bool
	closed  invariants.CloseChecker
}

// NewOrderedBuilder returns a Builder that asserts each appended key is >=
// the previous one under cmp.
func NewOrderedBuilder[K, V any](cmp base.Compare[K]) *Builder[K, V] {
	return &Builder[K, V]{cmp: cmp, ordered: true}
}

// NewUnorderedBuilder returns a Builder that accepts keys in any order and
// sorts on Result().
func NewUnorderedBuilder[K, V any](cmp base.Compare[K]) *Builder[K, V] {
	return &Builder[K, V]{cmp: cmp, ordered: false}
}

// SizeHint preallocates backing storage for at least n more appends.
func (b *Builder[K, V]) SizeHint(n int) {
	if cap(b.keys)-len(b.keys) < n {
		grown := make([]K, len(b.keys), len(b.keys)+n)
		copy(grown, b.keys)
		b.keys = grown
	}
	b.col.SizeHint(n)
}

// Append appends (key, c).
func (b *Builder[K, V]) Append(key K, c cell.Cell[V]) {
	if b.ordered && len(b.keys) > 0 {
		base.AssertTrue(b.cmp(b.keys[len(b.keys)-1], key) <= 0,
			"series: ordered Builder appended a key out of order")
	}
	b.keys = append(b.keys, key)
	b.col.Add(c)
}

// AppendValue appends (key, Value(v)).
func (b *Builder[K, V]) AppendValue(key K, v V) { b.Append(key, cell.Of(v)) }

// AppendNonValue appends (key, NA|NM).
func (b *Builder[K, V]) AppendNonValue(key K, nv cell.Variant) {
	b.Append(key, cell.OfVariant[V](nv))
}

// Len reports how many rows have been appended so far.
func (b *Builder[K, V]) Len() int { return len(b.keys) }

// Result finalizes the Series. The builder's storage is transferred to the
// result; the builder must not be reused afterwards.
func (b *Builder[K, V]) Result() Series[K, V] {
	b.closed.Close()
	positions := make([]int, len(b.keys))
	for i := range positions {
		positions[i] = i
	}
	col := b.col.Result()
	if b.ordered {
		return Series[K, V]{Index: index.Ordered(b.keys, positions, b.cmp), Column: col}
	}
	return Series[K, V]{Index: index.FromUnordered(b.keys, positions, b.cmp).Sorted(), Column: col}
}
