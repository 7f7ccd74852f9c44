package reduce

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
)

// Max returns the greatest present value in the window under cmp, NA if
// the window is empty, or NM if any row in the window is NM.
func Max[A any](cmp func(a, b A) int) Func[A, A] {
	return extremum(cmp, func(c int) bool { return c > 0 })
}

// Min is Max's mirror.
func Min[A any](cmp func(a, b A) int) Func[A, A] {
	return extremum(cmp, func(c int) bool { return c < 0 })
}

func extremum[A any](cmp func(a, b A) int, better func(cmpResult int) bool) Func[A, A] {
	return func(col column.Column[A], positions []int, start, end int) cell.Cell[A] {
		var best A
		hasBest := false
		sawNM := window(col, positions, start, end, func(v A) {
			if !hasBest || better(cmp(v, best)) {
				best, hasBest = v, true
			}
		})
		if sawNM {
			return cell.OfNM[A]()
		}
		if !hasBest {
			return cell.OfNA[A]()
		}
		return cell.Of(best)
	}
}
