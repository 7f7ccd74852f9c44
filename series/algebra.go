package series

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
	"github.com/colgo/colgo/index"
	"github.com/colgo/colgo/internal/base"
	"github.com/colgo/colgo/join"
)

// stateSeries turns an accumulated join.State into a fresh Series over a
// freshly built Column, using Builder to apply perCell to each aligned pair.
// Cogroup only ever presents non-decreasing keys (its two inputs are both
// ordered under cmp), so the output Index can be built as Ordered rather
// than FromUnordered, keeping downstream Group/ReduceByKey/Get at O(log n).
func stateSeries[K, C any](st *join.State[K], cmp base.Compare[K], perCell func(i int) cell.Cell[C]) Series[K, C] {
	var b column.Builder[C]
	b.SizeHint(st.Len())
	for i := 0; i < st.Len(); i++ {
		b.Add(perCell(i))
	}
	positions := make([]int, st.Len())
	for i := range positions {
		positions[i] = i
	}
	return Series[K, C]{
		Index:  index.Ordered(st.Keys, positions, cmp),
		Column: b.Result(),
	}
}

// ZipMap aligns a and b by key (Merger, Inner: positional within a run,
// dropping a key not present on both sides) and combines each pair with f.
// Per spec §4.5: both present → Value(f(a,b)); either side NM → NM;
// otherwise NA. The resulting index's keys are the intersection of the
// inputs' keys, with multiplicities (spec §8 item 5).
func ZipMap[K, A, B, C any](a Series[K, A], b Series[K, B], f func(A, B) C, cmp base.Compare[K]) Series[K, C] {
	st := join.RunMerge(a.Index, b.Index, join.Merger[K]{Kind: join.MergeInner})
	return stateSeries(st, cmp, func(i int) cell.Cell[C] {
		return cell.Map2(cellAt(a.Column, st.Lefts[i]), cellAt(b.Column, st.Rights[i]), f)
	})
}

// Merge aligns a and b by key (Merger, Outer: positional within a run,
// padding the side missing a key) and folds each pair under sg. Per spec
// §4.5: both present → Value(a⊕b); exactly one present → that value;
// neither present → NM if either side is NM there, else NA — which is
// exactly cell.Combine's absorbing/identity rule.
func Merge[K, V any](a, b Series[K, V], sg cell.Semigroup[V], cmp base.Compare[K]) Series[K, V] {
	st := join.RunMerge(a.Index, b.Index, join.Merger[K]{Kind: join.MergeOuter})
	return stateSeries(st, cmp, func(i int) cell.Cell[V] {
		return cell.Combine(sg, cellAt(a.Column, st.Lefts[i]), cellAt(b.Column, st.Rights[i]))
	})
}

// OrElse aligns a and b by key (Merger, Outer) and takes the first
// non-absent value, a taking precedence over b; if both are absent, NM
// absorbs (i.e. the result is NM if either side is NM, else NA).
func OrElse[K, V any](a, b Series[K, V], cmp base.Compare[K]) Series[K, V] {
	st := join.RunMerge(a.Index, b.Index, join.Merger[K]{Kind: join.MergeOuter})
	return stateSeries(st, cmp, func(i int) cell.Cell[V] {
		lv := cellAt(a.Column, st.Lefts[i])
		if lv.IsValue() {
			return lv
		}
		rv := cellAt(b.Column, st.Rights[i])
		if rv.IsValue() {
			return rv
		}
		if lv.IsNM() || rv.IsNM() {
			return cell.OfNM[V]()
		}
		return cell.OfNA[V]()
	})
}
