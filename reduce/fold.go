package reduce

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
)

// MonoidReducer folds the window's present values with m.Combine, starting
// from m.Identity — so an empty window yields Value(m.Identity) rather
// than NA.
func MonoidReducer[A any](m cell.Monoid[A]) Func[A, A] {
	return func(col column.Column[A], positions []int, start, end int) cell.Cell[A] {
		acc := m.Identity
		sawNM := window(col, positions, start, end, func(v A) {
			acc = m.Combine(acc, v)
		})
		if sawNM {
			return cell.OfNM[A]()
		}
		return cell.Of(acc)
	}
}

// SemigroupReducer folds the window's present values with sg.Combine. An
// empty window has no identity to fall back on, so it yields NA.
func SemigroupReducer[A any](sg cell.Semigroup[A]) Func[A, A] {
	return func(col column.Column[A], positions []int, start, end int) cell.Cell[A] {
		var acc A
		hasAcc := false
		sawNM := window(col, positions, start, end, func(v A) {
			if !hasAcc {
				acc, hasAcc = v, true
				return
			}
			acc = sg.Combine(acc, v)
		})
		if sawNM {
			return cell.OfNM[A]()
		}
		if !hasAcc {
			return cell.OfNA[A]()
		}
		return cell.Of(acc)
	}
}
