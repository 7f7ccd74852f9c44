package series

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
	"github.com/colgo/colgo/index"
	"github.com/colgo/colgo/reduce"
)

// Reduce applies r once over the whole series, in logical position order
// (spec §4.5: "produces indices = [index.index_at(i) for i in 0..size],
// then calls the reducer over [0, size)").
func Reduce[K, A, B any](s Series[K, A], r reduce.Func[A, B]) cell.Cell[B] {
	return r(s.Column, s.Index.Positions(), 0, s.Index.Len())
}

// ReduceByKey groups s's sorted index into contiguous runs of equal keys and
// applies r to each run, producing a Series whose index is the distinct keys
// in order and whose column holds one reduced cell per key (spec §4.5).
// s.Index must already be ordered (Sorted() first if not).
func ReduceByKey[K, A, B any](s Series[K, A], r reduce.Func[A, B]) Series[K, B] {
	var keys []K
	var b column.Builder[B]
	positions := s.Index.Positions()
	s.Index.Group(func(key K, start, end int) {
		keys = append(keys, key)
		b.Add(r(s.Column, positions, start, end))
	})
	out := make([]int, len(keys))
	for i := range out {
		out[i] = i
	}
	return Series[K, B]{
		Index:  index.Ordered(keys, out, s.Index.Compare()),
		Column: b.Result(),
	}
}
