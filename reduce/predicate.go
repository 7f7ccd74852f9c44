package reduce

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
)

// Exists returns Value(true) iff some present value in the window
// satisfies p, Value(false) for an empty window or a window with no
// satisfying value. Per spec §4.6's table, NM rows are skipped rather than
// causing the whole reduction to surface NM (see DESIGN.md for how this
// reconciles with §4.6's general NM-absorption paragraph).
func Exists[A any](p func(A) bool) Func[A, bool] {
	return func(col column.Column[A], positions []int, start, end int) cell.Cell[bool] {
		for i := start; i < end; i++ {
			row := positions[i]
			if col.IsValueAt(row) && p(col.ValueAt(row)) {
				return cell.Of(true)
			}
		}
		return cell.Of(false)
	}
}

// ForAll returns Value(true) iff every present value in the window
// satisfies p (vacuously true for an empty window, or a window with no
// present values). NM rows are skipped, as for Exists.
func ForAll[A any](p func(A) bool) Func[A, bool] {
	return func(col column.Column[A], positions []int, start, end int) cell.Cell[bool] {
		for i := start; i < end; i++ {
			row := positions[i]
			if col.IsValueAt(row) && !p(col.ValueAt(row)) {
				return cell.Of(false)
			}
		}
		return cell.Of(true)
	}
}
