package reduce

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
)

// Field is the numeric strategy Mean needs: an additive identity, a way to
// combine two values, and a way to divide an accumulated sum by an
// integer count. It mirrors column.Field's "explicit parameter instead of
// a type-class instance" shape (spec §9), scoped to what sum/count
// division actually requires.
type Field[A any] struct {
	Zero   A
	Add    func(a, b A) A
	DivInt func(sum A, n int) A
}

// Float64Field is the Field instance for float64 means.
var Float64Field = Field[float64]{
	Zero:   0,
	Add:    func(a, b float64) float64 { return a + b },
	DivInt: func(sum float64, n int) float64 { return sum / float64(n) },
}

// FieldFromColumn adapts a column.Field into a reduce.Field for numeric
// types that already have one defined (keeps Mean and the algebraic
// column operators agreeing on what Zero/Add mean for a given type, per
// SPEC_FULL's "both places agree on what zero... mean").
func FieldFromColumn[A any](f column.Field[A], divInt func(sum A, n int) A) Field[A] {
	return Field[A]{Zero: f.Zero, Add: f.Add, DivInt: divInt}
}

// Mean returns sum/count of the present values in the window (spec §4.6:
// "sum/count in Field"), NA if the window is empty, or NM if any row in
// the window is NM.
func Mean[A any](f Field[A]) Func[A, A] {
	return func(col column.Column[A], positions []int, start, end int) cell.Cell[A] {
		sum := f.Zero
		n := 0
		sawNM := window(col, positions, start, end, func(v A) {
			sum = f.Add(sum, v)
			n++
		})
		if sawNM {
			return cell.OfNM[A]()
		}
		if n == 0 {
			return cell.OfNA[A]()
		}
		return cell.Of(f.DivInt(sum, n))
	}
}
