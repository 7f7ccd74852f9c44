// Package reduce implements the reducer contract (spec §3, §4.6): a pure
// function over a column window bounded by an index's positions slice,
// and the concrete reducers (Count, First, Mean, Quantile, ...) built on
// top of it.
package reduce

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
)

// Func is a Reducer[A,B]: given col, the positions slice of some Index,
// and a [start, end) window into positions, it must not touch positions
// outside that window, must use col.IsValueAt/ValueAt/NonValueAt (never
// assume contiguity of valid rows), and must surface NM if any row in the
// window is NM — except for the reducers spec §4.6's table defines
// entirely on presence: Count ignores NM rows outright (counts values
// only), Exists/ForAll skip them while scanning for a witness (an NM row
// is neither evidence for nor against the predicate), and Unique is the
// one presence-defined reducer that still hard-stops to NM, per the
// table's own "Any NM in window" column for each of these four.
type Func[A, B any] func(col column.Column[A], positions []int, start, end int) cell.Cell[B]

// window is a tiny iteration helper shared by every concrete reducer
// below: it walks [start,end) over positions, stopping early (returning
// sawNM=true) the moment it finds a row that is NM.
func window[A any](col column.Column[A], positions []int, start, end int, onValue func(v A)) (sawNM bool) {
	for i := start; i < end; i++ {
		row := positions[i]
		if col.IsValueAt(row) {
			onValue(col.ValueAt(row))
			continue
		}
		if col.NonValueAt(row) == cell.NM {
			return true
		}
	}
	return false
}
