package reduce

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
)

// Unique returns the set of distinct present values in the window as a
// map[A]struct{}, Value(∅) if the window is empty, or NM if any row in
// the window is NM. Unlike Count (ignores NM) and Exists/ForAll (skip NM
// while scanning), Unique hard-stops to NM — it is the one presence-based
// reducer in spec §4.6's table whose "Any NM in window" cell is NM rather
// than a pass-through rule. See DESIGN.md.
func Unique[A comparable]() Func[A, map[A]struct{}] {
	return func(col column.Column[A], positions []int, start, end int) cell.Cell[map[A]struct{}] {
		set := make(map[A]struct{})
		sawNM := window(col, positions, start, end, func(v A) {
			set[v] = struct{}{}
		})
		if sawNM {
			return cell.OfNM[map[A]struct{}]()
		}
		return cell.Of(set)
	}
}
