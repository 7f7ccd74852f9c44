package column

import "github.com/colgo/colgo/cell"

// Field is the explicit numeric strategy passed to the algebraic column
// operators, per spec §9's "prefer explicit parameters... prefer
// monomorphization for numeric hot paths" — there is no generic Number
// constraint here on purpose, since colgo must support any A a caller
// wants to treat as a field (big.Rat, a fixed-point decimal, plain
// float64), not just the types Go's builtin operators cover.
type Field[A any] struct {
	Zero               A
	Add, Sub, Mul, Div func(a, b A) A
	IsZero             func(a A) bool
}

// Add returns a lazy view where each row is Value(f.Add(a,b)) when both
// sides are present, following the cell algebra's Map2 rule (NM absorbs,
// otherwise NA) for absence.
func Add[A any](left, right Column[A], f Field[A]) Column[A] {
	return ZipWith(left, right, func(a, b cell.Cell[A]) cell.Cell[A] {
		return cell.Map2(a, b, f.Add)
	})
}

// Sub is Add's sibling for subtraction.
func Sub[A any](left, right Column[A], f Field[A]) Column[A] {
	return ZipWith(left, right, func(a, b cell.Cell[A]) cell.Cell[A] {
		return cell.Map2(a, b, f.Sub)
	})
}

// Mul is Add's sibling for multiplication.
func Mul[A any](left, right Column[A], f Field[A]) Column[A] {
	return ZipWith(left, right, func(a, b cell.Cell[A]) cell.Cell[A] {
		return cell.Map2(a, b, f.Mul)
	})
}

// Div is Add's sibling for division, with one additional rule: dividing by
// a present zero divisor yields NM (spec §4.2: "division producing NM on
// zero divisors is the responsibility of the numeric A's semantics lifted
// to cells").
func Div[A any](left, right Column[A], f Field[A]) Column[A] {
	return ZipWith(left, right, func(a, b cell.Cell[A]) cell.Cell[A] {
		if a.IsValue() && b.IsValue() && f.IsZero(b.Get()) {
			return cell.OfNM[A]()
		}
		return cell.Map2(a, b, f.Div)
	})
}

// Float64Field is the Field instance for float64, following ordinary
// IEEE-754 arithmetic.
var Float64Field = Field[float64]{
	Zero:   0,
	Add:    func(a, b float64) float64 { return a + b },
	Sub:    func(a, b float64) float64 { return a - b },
	Mul:    func(a, b float64) float64 { return a * b },
	Div:    func(a, b float64) float64 { return a / b },
	IsZero: func(a float64) bool { return a == 0 },
}

// IntField is the Field instance for int.
var IntField = Field[int]{
	Zero:   0,
	Add:    func(a, b int) int { return a + b },
	Sub:    func(a, b int) int { return a - b },
	Mul:    func(a, b int) int { return a * b },
	Div:    func(a, b int) int { return a / b },
	IsZero: func(a int) bool { return a == 0 },
}
