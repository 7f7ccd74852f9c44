package column

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/mask"
)

func buildInts(cells ...cell.Cell[int]) Column[int] {
	var b Builder[int]
	for _, c := range cells {
		b.Add(c)
	}
	return b.Result()
}

func TestBuilderRoundTrip(t *testing.T) {
	col := buildInts(cell.Of(1), cell.OfNA[int](), cell.OfNM[int](), cell.Of(4))

	require.Equal(t, cell.Of(1), col.Get(0))
	require.True(t, col.Get(1).IsNA())
	require.True(t, col.Get(2).IsNM())
	require.Equal(t, cell.Of(4), col.Get(3))

	// out of range reads as NA.
	require.True(t, col.Get(4).IsNA())
	require.True(t, col.Get(-1).IsNA())
}

func TestIsValueAtValueAtNonValueAt(t *testing.T) {
	col := buildInts(cell.Of(10), cell.OfNA[int](), cell.OfNM[int]())

	require.True(t, col.IsValueAt(0))
	require.Equal(t, 10, col.ValueAt(0))

	require.False(t, col.IsValueAt(1))
	require.Equal(t, cell.NA, col.NonValueAt(1))

	require.False(t, col.IsValueAt(2))
	require.Equal(t, cell.NM, col.NonValueAt(2))
}

func TestValueAtPanicsOnNonValue(t *testing.T) {
	col := buildInts(cell.OfNA[int]())
	require.Panics(t, func() { col.ValueAt(0) })
}

func TestReindex(t *testing.T) {
	col := buildInts(cell.Of(1), cell.Of(2), cell.Of(3))
	view := col.Reindex([]int{2, -1, 0, 99})

	require.Equal(t, cell.Of(3), view.Get(0))
	require.True(t, view.Get(1).IsNA())
	require.Equal(t, cell.Of(1), view.Get(2))
	require.True(t, view.Get(3).IsNA())
	// beyond the reindex's own logical length
	require.True(t, view.Get(4).IsNA())
}

func TestReindexComposition(t *testing.T) {
	col := buildInts(cell.Of(1), cell.Of(2), cell.Of(3), cell.Of(4))
	once := col.Reindex([]int{3, 2, 1, 0})
	twice := once.Reindex([]int{0, 3})

	require.Equal(t, cell.Of(4), twice.Get(0))
	require.Equal(t, cell.Of(1), twice.Get(1))
}

func TestMapValuesPreservesVariant(t *testing.T) {
	col := buildInts(cell.Of(2), cell.OfNA[int](), cell.OfNM[int]())
	doubled := MapValues(col, func(v int) int { return v * 2 })

	require.Equal(t, cell.Of(4), doubled.Get(0))
	require.True(t, doubled.Get(1).IsNA())
	require.True(t, doubled.Get(2).IsNM())
}

func TestCompactCollapsesViewChain(t *testing.T) {
	col := buildInts(cell.Of(1), cell.Of(2), cell.Of(3))
	view := col.Reindex([]int{2, 0})
	compacted := view.Compact([]int{0, 1})

	require.IsType(t, dense[int]{}, compacted)
	require.Equal(t, cell.Of(3), compacted.Get(0))
	require.Equal(t, cell.Of(1), compacted.Get(1))
}

func TestDivByZeroYieldsNM(t *testing.T) {
	left := buildInts(cell.Of(10), cell.Of(10))
	right := buildInts(cell.Of(2), cell.Of(0))
	quot := Div(left, right, IntField)

	require.Equal(t, cell.Of(5), quot.Get(0))
	require.True(t, quot.Get(1).IsNM())
}

func TestAlgebraicAbsencePropagation(t *testing.T) {
	left := buildInts(cell.Of(1), cell.OfNA[int](), cell.OfNM[int]())
	right := buildInts(cell.OfNA[int](), cell.Of(2), cell.Of(3))
	sum := Add(left, right, IntField)

	require.True(t, sum.Get(0).IsNA()) // Value + NA -> NA (Map2 fallback since not both values, no NM)
	require.True(t, sum.Get(1).IsNA())
	require.True(t, sum.Get(2).IsNM())
}

func TestDenseRejectsOverlappingMasks(t *testing.T) {
	require.Panics(t, func() {
		Dense([]int{1, 2}, mask.Of(0), mask.Of(0))
	})
}

func TestBuildParallelMatchesSequential(t *testing.T) {
	n := 257
	fn := func(row int) cell.Cell[int] {
		if row%7 == 0 {
			return cell.OfNA[int]()
		}
		if row%11 == 0 {
			return cell.OfNM[int]()
		}
		return cell.Of(row * 2)
	}

	got, err := BuildParallel[int](context.Background(), n, 4, fn)
	require.NoError(t, err)

	var want Builder[int]
	for i := 0; i < n; i++ {
		want.Add(fn(i))
	}
	wantCol := want.Result()

	for i := 0; i < n; i++ {
		require.Equal(t, wantCol.Get(i), got.Get(i), "row %d", i)
	}
}
