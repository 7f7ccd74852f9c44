package series

import (
	"github.com/colgo/colgo/column"
	"github.com/colgo/colgo/index"
)

// Concat appends that's logical rows after this's, with no realignment by
// key (spec §4.5's "++"). The result is ordered only if both inputs were
// already ordered and that's first key is strictly greater than this's
// last key — i.e. that strictly follows this in key order.
func Concat[K, V any](this, that Series[K, V]) Series[K, V] {
	n := this.Len() + that.Len()
	var b column.Builder[V]
	b.SizeHint(n)
	keys := make([]K, 0, n)
	for i := 0; i < this.Len(); i++ {
		b.Add(this.At(i))
		keys = append(keys, this.KeyAt(i))
	}
	for i := 0; i < that.Len(); i++ {
		b.Add(that.At(i))
		keys = append(keys, that.KeyAt(i))
	}
	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}

	cmp := this.Index.Compare()
	if concatPreservesOrder(this, that, cmp) {
		return Series[K, V]{Index: index.Ordered(keys, positions, cmp), Column: b.Result()}
	}
	return Series[K, V]{Index: index.FromUnordered(keys, positions, cmp), Column: b.Result()}
}

func concatPreservesOrder[K, V any](this, that Series[K, V], cmp func(a, b K) int) bool {
	if !this.Index.IsOrdered() || !that.Index.IsOrdered() {
		return false
	}
	if this.Len() == 0 || that.Len() == 0 {
		return true
	}
	return cmp(this.KeyAt(this.Len()-1), that.KeyAt(0)) < 0
}
