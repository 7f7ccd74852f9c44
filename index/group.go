package index

import "github.com/colgo/colgo/internal/base"

// Group walks contiguous runs of equal keys in an ordered Index and calls f
// with each run's key and the logical [start, end) range of that run.
// Requires ix.IsOrdered(); unordered indices must be Sorted() first (spec
// §5 ordering guarantees).
func (ix Index[K]) Group(f func(key K, start, end int)) {
	base.AssertTrue(ix.ordered, "index: Group requires an ordered index; call Sorted() first")
	n := len(ix.keys)
	for i := 0; i < n; {
		j := i + 1
		for j < n && ix.cmp(ix.keys[i], ix.keys[j]) == 0 {
			j++
		}
		f(ix.keys[i], i, j)
		i = j
	}
}
