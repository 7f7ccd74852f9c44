package reduce

import (
	"sort"

	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
)

// Median returns the median of the window's present values under cmp, NA
// if the window is empty, or NM if any row in the window is NM. For an
// even number of present values it averages the two middle elements via
// average.
//
// Spec §4.6 describes this as "quick-select on copied values"; this
// implementation instead sorts the copy outright (see DESIGN.md) since
// Quantile needs the full sorted order anyway and a full sort keeps both
// reducers' semantics visibly identical.
func Median[A any](cmp func(a, b A) int, average func(a, b A) A) Func[A, A] {
	return func(col column.Column[A], positions []int, start, end int) cell.Cell[A] {
		var values []A
		sawNM := window(col, positions, start, end, func(v A) {
			values = append(values, v)
		})
		if sawNM {
			return cell.OfNM[A]()
		}
		if len(values) == 0 {
			return cell.OfNA[A]()
		}
		sort.Slice(values, func(i, j int) bool { return cmp(values[i], values[j]) < 0 })
		mid := len(values) / 2
		if len(values)%2 == 1 {
			return cell.Of(values[mid])
		}
		return cell.Of(average(values[mid-1], values[mid]))
	}
}
