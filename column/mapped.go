package column

import "github.com/colgo/colgo/cell"

// mapped is a lazy view applying f to every cell of base on read. Go does
// not permit a generic method that changes a receiver's type parameter, so
// Map is a free function rather than a Column method (spec §9: the
// "lazy mapped column via closures" shape).
type mapped[A, B any] struct {
	base Column[A]
	f    func(cell.Cell[A]) cell.Cell[B]
}

var _ Column[int] = mapped[string, int]{}

// Map returns a lazy view of src with f applied to every cell. Call
// .Compact on the result to materialize it.
func Map[A, B any](src Column[A], f func(cell.Cell[A]) cell.Cell[B]) Column[B] {
	return mapped[A, B]{base: src, f: f}
}

// MapValues is a convenience over Map for functions that only need to
// transform a present value; NA/NM pass through unchanged (cell.Map's
// variant-preserving rule).
func MapValues[A, B any](src Column[A], f func(A) B) Column[B] {
	return Map(src, func(c cell.Cell[A]) cell.Cell[B] { return cell.Map(c, f) })
}

func (m mapped[A, B]) Get(row int) cell.Cell[B] {
	return m.f(m.base.Get(row))
}

func (m mapped[A, B]) IsValueAt(row int) bool {
	return m.Get(row).IsValue()
}

func (m mapped[A, B]) ValueAt(row int) B {
	c := m.Get(row)
	return c.Get()
}

func (m mapped[A, B]) NonValueAt(row int) cell.Variant {
	return m.Get(row).Variant()
}

func (m mapped[A, B]) Reindex(positions []int) Column[B] {
	return reindexed[B]{base: m, positions: positions}
}

func (m mapped[A, B]) Compact(positions []int) Column[B] {
	return compact[B](m, positions)
}
