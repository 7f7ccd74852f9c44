package reduce

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
)

// Count returns the number of present values in the window. An empty
// window yields Value(0); NM rows are ignored rather than surfaced, per
// spec §4.6's table ("counts values only (ignores NM)").
func Count[A any]() Func[A, int] {
	return func(col column.Column[A], positions []int, start, end int) cell.Cell[int] {
		n := 0
		for i := start; i < end; i++ {
			if col.IsValueAt(positions[i]) {
				n++
			}
		}
		return cell.Of(n)
	}
}
