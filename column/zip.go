package column

import "github.com/colgo/colgo/cell"

// zipped is a lazy two-ary view: row i combines left.Get(i) and right.Get(i)
// via f. It backs the algebraic column operators (Add/Sub/Mul/Div); unlike
// Series.ZipMap, there is no join here — rows are paired by position only,
// which is the right granularity for a column (Columns don't carry keys).
type zipped[A, B, C any] struct {
	left  Column[A]
	right Column[B]
	f     func(cell.Cell[A], cell.Cell[B]) cell.Cell[C]
}

var _ Column[int] = zipped[int, int, int]{}

// ZipWith combines left and right position-wise via f.
func ZipWith[A, B, C any](left Column[A], right Column[B], f func(cell.Cell[A], cell.Cell[B]) cell.Cell[C]) Column[C] {
	return zipped[A, B, C]{left: left, right: right, f: f}
}

func (z zipped[A, B, C]) Get(row int) cell.Cell[C] {
	return z.f(z.left.Get(row), z.right.Get(row))
}

func (z zipped[A, B, C]) IsValueAt(row int) bool { return z.Get(row).IsValue() }

func (z zipped[A, B, C]) ValueAt(row int) C { return z.Get(row).Get() }

func (z zipped[A, B, C]) NonValueAt(row int) cell.Variant { return z.Get(row).Variant() }

func (z zipped[A, B, C]) Reindex(positions []int) Column[C] {
	return reindexed[C]{base: z, positions: positions}
}

func (z zipped[A, B, C]) Compact(positions []int) Column[C] {
	return compact[C](z, positions)
}
