package reduce

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
)

// FirstN returns the first n present values in the window as a slice, NA
// if fewer than n values are present, or NM if any row in the window is
// NM.
func FirstN[A any](n int) Func[A, []A] {
	return func(col column.Column[A], positions []int, start, end int) cell.Cell[[]A] {
		var found []A
		sawNM := window(col, positions, start, end, func(v A) {
			if len(found) < n {
				found = append(found, v)
			}
		})
		if sawNM {
			return cell.OfNM[[]A]()
		}
		if len(found) < n {
			return cell.OfNA[[]A]()
		}
		return cell.Of(found)
	}
}

// LastN is FirstN over the window walked in reverse: it returns the last n
// present values, in their original (forward) order.
func LastN[A any](n int) Func[A, []A] {
	return func(col column.Column[A], positions []int, start, end int) cell.Cell[[]A] {
		var found []A
		sawNM := false
		for i := end - 1; i >= start; i-- {
			row := positions[i]
			if col.IsValueAt(row) {
				if len(found) < n {
					found = append(found, col.ValueAt(row))
				}
				continue
			}
			if col.NonValueAt(row) == cell.NM {
				sawNM = true
				break
			}
		}
		if sawNM {
			return cell.OfNM[[]A]()
		}
		if len(found) < n {
			return cell.OfNA[[]A]()
		}
		// found was collected back-to-front; restore forward order.
		for i, j := 0, len(found)-1; i < j; i, j = i+1, j-1 {
			found[i], found[j] = found[j], found[i]
		}
		return cell.Of(found)
	}
}
