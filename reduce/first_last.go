package reduce

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
)

// First returns the first present value in the window, NA if the window
// is empty, or NM if any row in the window (before or after the first
// value) is NM.
func First[A any]() Func[A, A] {
	return func(col column.Column[A], positions []int, start, end int) cell.Cell[A] {
		var found A
		hasFound := false
		sawNM := window(col, positions, start, end, func(v A) {
			if !hasFound {
				found, hasFound = v, true
			}
		})
		if sawNM {
			return cell.OfNM[A]()
		}
		if !hasFound {
			return cell.OfNA[A]()
		}
		return cell.Of(found)
	}
}

// Last is First's mirror.
func Last[A any]() Func[A, A] {
	return func(col column.Column[A], positions []int, start, end int) cell.Cell[A] {
		var found A
		hasFound := false
		sawNM := window(col, positions, start, end, func(v A) {
			found, hasFound = v, true
		})
		if sawNM {
			return cell.OfNM[A]()
		}
		if !hasFound {
			return cell.OfNA[A]()
		}
		return cell.Of(found)
	}
}
