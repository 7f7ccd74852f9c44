// Package series implements the Series[K,V] algebra described in spec §4.5:
// an Index paired with a Column, with zipMap/merge/orElse/roll-forward and
// the grouped reduction operators built on top of package join's cogroupers.
package series

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
	"github.com/colgo/colgo/index"
)

// Series is the (Index[K], Column[V]) pairing of spec §3: row i yields
// (keys[i], column[indices[i]]). It is immutable; every transformation in
// this package returns a fresh Series.
type Series[K, V any] struct {
	Index  index.Index[K]
	Column column.Column[V]
}

// New pairs ix and col into a Series. Callers are responsible for ix's
// positions addressing legal (possibly absent) rows of col.
func New[K, V any](ix index.Index[K], col column.Column[V]) Series[K, V] {
	return Series[K, V]{Index: ix, Column: col}
}

// Len returns the number of logical rows.
func (s Series[K, V]) Len() int { return s.Index.Len() }

// KeyAt returns the key at logical position i.
func (s Series[K, V]) KeyAt(i int) K { return s.Index.KeyAt(i) }

// At returns the cell at logical position i.
func (s Series[K, V]) At(i int) cell.Cell[V] {
	return s.Column.Get(s.Index.PositionAt(i))
}

// Lookup returns the cell for the first logical position holding key k, or
// NA if k is absent — a bad key lookup is not an error (spec §7).
func (s Series[K, V]) Lookup(k K) cell.Cell[V] {
	pos, ok := s.Index.Get(k)
	if !ok {
		return cell.OfNA[V]()
	}
	return s.At(pos)
}

// Sorted returns a Series over the same rows, stably sorted by key.
func (s Series[K, V]) Sorted() Series[K, V] {
	return Series[K, V]{Index: s.Index.Sorted(), Column: s.Column}
}

// Compact materializes a dense backing holding exactly the rows s.Index
// visits, breaking any reindex/map view chain on the underlying Column and
// resetting the Index's positions to address it directly.
func (s Series[K, V]) Compact() Series[K, V] {
	positions := s.Index.Positions()
	return Series[K, V]{
		Index:  s.Index.ResetIndices(),
		Column: s.Column.Compact(positions),
	}
}

// cellAt reads col at p, treating the join/merge Skip sentinel (and any
// other negative position) as absent — Column.Get already maps out-of-range
// rows to NA, so this is just a readability wrapper at call sites.
func cellAt[V any](col column.Column[V], p int) cell.Cell[V] {
	return col.Get(p)
}
