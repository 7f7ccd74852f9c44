package reduce

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
)

func buildFloats(cells ...cell.Cell[float64]) column.Column[float64] {
	var b column.Builder[float64]
	for _, c := range cells {
		b.Add(c)
	}
	return b.Result()
}

func buildInts(cells ...cell.Cell[int]) column.Column[int] {
	var b column.Builder[int]
	for _, c := range cells {
		b.Add(c)
	}
	return b.Result()
}

func identityPositions(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func intCmp(a, b int) int { return cmp.Compare(a, b) }

func TestCountIgnoresNM(t *testing.T) {
	col := buildInts(cell.Of(1), cell.OfNM[int](), cell.Of(3), cell.OfNA[int]())
	got := Count[int]()(col, identityPositions(4), 0, 4)
	require.Equal(t, cell.Of(3), got)
}

func TestCountEmptyWindowIsZero(t *testing.T) {
	col := buildInts()
	got := Count[int]()(col, identityPositions(0), 0, 0)
	require.Equal(t, cell.Of(0), got)
}

func TestExistsSkipsNM(t *testing.T) {
	col := buildInts(cell.OfNM[int](), cell.Of(2), cell.OfNA[int]())
	got := Exists(func(v int) bool { return v > 1 })(col, identityPositions(3), 0, 3)
	require.Equal(t, cell.Of(true), got)
}

func TestExistsNoWitnessIsFalseEvenWithNM(t *testing.T) {
	col := buildInts(cell.OfNM[int](), cell.Of(1), cell.OfNA[int]())
	got := Exists(func(v int) bool { return v > 10 })(col, identityPositions(3), 0, 3)
	require.Equal(t, cell.Of(false), got)
}

func TestForAllSkipsNM(t *testing.T) {
	col := buildInts(cell.Of(2), cell.OfNM[int](), cell.Of(4))
	got := ForAll(func(v int) bool { return v%2 == 0 })(col, identityPositions(3), 0, 3)
	require.Equal(t, cell.Of(true), got)
}

func TestForAllVacuouslyTrueOnEmptyWindow(t *testing.T) {
	col := buildInts()
	got := ForAll(func(v int) bool { return false })(col, identityPositions(0), 0, 0)
	require.Equal(t, cell.Of(true), got)
}

func TestForAllFalseOnFirstViolation(t *testing.T) {
	col := buildInts(cell.Of(2), cell.Of(3), cell.OfNM[int]())
	got := ForAll(func(v int) bool { return v%2 == 0 })(col, identityPositions(3), 0, 3)
	require.Equal(t, cell.Of(false), got)
}

func TestUniqueHardStopsOnNM(t *testing.T) {
	col := buildInts(cell.Of(1), cell.OfNM[int](), cell.Of(1))
	got := Unique[int]()(col, identityPositions(3), 0, 3)
	require.True(t, got.IsNM())
}

func TestUniqueEmptyWindowYieldsEmptySet(t *testing.T) {
	col := buildInts()
	got := Unique[int]()(col, identityPositions(0), 0, 0)
	require.Equal(t, map[int]struct{}{}, got.Get())
}

func TestUniqueCollapsesDuplicates(t *testing.T) {
	col := buildInts(cell.Of(1), cell.Of(2), cell.Of(1), cell.OfNA[int]())
	got := Unique[int]()(col, identityPositions(4), 0, 4)
	require.Equal(t, map[int]struct{}{1: {}, 2: {}}, got.Get())
}

func TestFirstLastHardStopOnNM(t *testing.T) {
	col := buildInts(cell.Of(1), cell.OfNM[int](), cell.Of(3))
	require.True(t, First[int]()(col, identityPositions(3), 0, 3).IsNM())
	require.True(t, Last[int]()(col, identityPositions(3), 0, 3).IsNM())
}

func TestFirstLastEmptyWindowIsNA(t *testing.T) {
	col := buildInts(cell.OfNA[int](), cell.OfNA[int]())
	require.True(t, First[int]()(col, identityPositions(2), 0, 2).IsNA())
	require.True(t, Last[int]()(col, identityPositions(2), 0, 2).IsNA())
}

func TestFirstLastPickEnds(t *testing.T) {
	col := buildInts(cell.OfNA[int](), cell.Of(5), cell.Of(9), cell.OfNA[int]())
	require.Equal(t, cell.Of(5), First[int]()(col, identityPositions(4), 0, 4))
	require.Equal(t, cell.Of(9), Last[int]()(col, identityPositions(4), 0, 4))
}

func TestFirstNLastNRequireEnoughValues(t *testing.T) {
	col := buildInts(cell.Of(1), cell.OfNA[int](), cell.Of(2))
	require.True(t, FirstN[int](3)(col, identityPositions(3), 0, 3).IsNA())
	require.Equal(t, cell.Of([]int{1, 2}), FirstN[int](2)(col, identityPositions(3), 0, 3))
	require.True(t, LastN[int](3)(col, identityPositions(3), 0, 3).IsNA())
	require.Equal(t, cell.Of([]int{1, 2}), LastN[int](2)(col, identityPositions(3), 0, 3))
}

func TestLastNRestoresForwardOrder(t *testing.T) {
	col := buildInts(cell.Of(1), cell.Of(2), cell.Of(3), cell.Of(4))
	require.Equal(t, cell.Of([]int{3, 4}), LastN[int](2)(col, identityPositions(4), 0, 4))
}

func TestFirstNHardStopsOnNM(t *testing.T) {
	col := buildInts(cell.Of(1), cell.OfNM[int](), cell.Of(2))
	require.True(t, FirstN[int](1)(col, identityPositions(3), 0, 3).IsNM())
}

func TestLastNHardStopsOnNM(t *testing.T) {
	col := buildInts(cell.Of(1), cell.OfNM[int](), cell.Of(2))
	require.True(t, LastN[int](1)(col, identityPositions(3), 0, 3).IsNM())
}

func TestMaxMinExtremum(t *testing.T) {
	col := buildInts(cell.Of(3), cell.Of(1), cell.Of(4), cell.OfNA[int]())
	require.Equal(t, cell.Of(4), Max[int](intCmp)(col, identityPositions(4), 0, 4))
	require.Equal(t, cell.Of(1), Min[int](intCmp)(col, identityPositions(4), 0, 4))
}

func TestMaxMinEmptyWindowIsNA(t *testing.T) {
	col := buildInts()
	require.True(t, Max[int](intCmp)(col, identityPositions(0), 0, 0).IsNA())
	require.True(t, Min[int](intCmp)(col, identityPositions(0), 0, 0).IsNA())
}

func TestMaxMinHardStopOnNM(t *testing.T) {
	col := buildInts(cell.Of(3), cell.OfNM[int]())
	require.True(t, Max[int](intCmp)(col, identityPositions(2), 0, 2).IsNM())
	require.True(t, Min[int](intCmp)(col, identityPositions(2), 0, 2).IsNM())
}

func TestMeanSumOverCount(t *testing.T) {
	col := buildFloats(cell.Of(2.0), cell.Of(4.0), cell.OfNA[float64]())
	got := Mean(Float64Field)(col, identityPositions(3), 0, 3)
	require.Equal(t, cell.Of(3.0), got)
}

func TestMeanEmptyWindowIsNA(t *testing.T) {
	col := buildFloats()
	require.True(t, Mean(Float64Field)(col, identityPositions(0), 0, 0).IsNA())
}

func TestMeanHardStopsOnNM(t *testing.T) {
	col := buildFloats(cell.Of(2.0), cell.OfNM[float64]())
	require.True(t, Mean(Float64Field)(col, identityPositions(2), 0, 2).IsNM())
}

func TestMedianOddAndEvenCounts(t *testing.T) {
	average := func(a, b float64) float64 { return (a + b) / 2 }
	floatCmp := func(a, b float64) int { return cmp.Compare(a, b) }

	odd := buildFloats(cell.Of(3.0), cell.Of(1.0), cell.Of(2.0))
	require.Equal(t, cell.Of(2.0), Median(floatCmp, average)(odd, identityPositions(3), 0, 3))

	even := buildFloats(cell.Of(1.0), cell.Of(2.0), cell.Of(3.0), cell.Of(4.0))
	require.Equal(t, cell.Of(2.5), Median(floatCmp, average)(even, identityPositions(4), 0, 4))
}

func TestMedianEmptyWindowIsNA(t *testing.T) {
	floatCmp := func(a, b float64) int { return cmp.Compare(a, b) }
	average := func(a, b float64) float64 { return (a + b) / 2 }
	col := buildFloats()
	require.True(t, Median(floatCmp, average)(col, identityPositions(0), 0, 0).IsNA())
}

func TestQuantileInterpolates(t *testing.T) {
	col := buildFloats(cell.Of(1.0), cell.Of(2.0), cell.Of(3.0), cell.Of(4.0))
	got := Quantile([]float64{0, 0.5, 1})(col, identityPositions(4), 0, 4)
	require.Equal(t, cell.Of([]float64{1.0, 2.5, 4.0}), got)
}

func TestQuantileEmptyWindowIsNA(t *testing.T) {
	col := buildFloats()
	require.True(t, Quantile([]float64{0.5})(col, identityPositions(0), 0, 0).IsNA())
}

func TestQuantileHardStopsOnNM(t *testing.T) {
	col := buildFloats(cell.Of(1.0), cell.OfNM[float64]())
	require.True(t, Quantile([]float64{0.5})(col, identityPositions(2), 0, 2).IsNM())
}

func TestOutliersFlagsBeyondFences(t *testing.T) {
	col := buildFloats(
		cell.Of(1.0), cell.Of(2.0), cell.Of(2.0), cell.Of(3.0), cell.Of(100.0),
	)
	got := Outliers(1.5)(col, identityPositions(5), 0, 5)
	require.Equal(t, cell.Of([]float64{100.0}), got)
}

func TestOutliersEmptyWindowIsNA(t *testing.T) {
	col := buildFloats()
	require.True(t, Outliers(1.5)(col, identityPositions(0), 0, 0).IsNA())
}

func TestMonoidReducerEmptyWindowYieldsIdentity(t *testing.T) {
	sumMonoid := cell.Monoid[int]{Semigroup: cell.Semigroup[int]{Combine: func(a, b int) int { return a + b }}, Identity: 0}
	col := buildInts()
	got := MonoidReducer(sumMonoid)(col, identityPositions(0), 0, 0)
	require.Equal(t, cell.Of(0), got)
}

func TestMonoidReducerFoldsPresentValues(t *testing.T) {
	sumMonoid := cell.Monoid[int]{Semigroup: cell.Semigroup[int]{Combine: func(a, b int) int { return a + b }}, Identity: 0}
	col := buildInts(cell.Of(1), cell.OfNA[int](), cell.Of(2))
	got := MonoidReducer(sumMonoid)(col, identityPositions(3), 0, 3)
	require.Equal(t, cell.Of(3), got)
}

func TestSemigroupReducerEmptyWindowIsNA(t *testing.T) {
	concat := cell.Semigroup[string]{Combine: func(a, b string) string { return a + b }}
	var b column.Builder[string]
	col := b.Result()
	got := SemigroupReducer(concat)(col, identityPositions(0), 0, 0)
	require.True(t, got.IsNA())
}

func TestSemigroupReducerHardStopsOnNM(t *testing.T) {
	concat := cell.Semigroup[string]{Combine: func(a, b string) string { return a + b }}
	var b column.Builder[string]
	b.AddValue("a")
	b.AddNM()
	col := b.Result()
	got := SemigroupReducer(concat)(col, identityPositions(2), 0, 2)
	require.True(t, got.IsNM())
}
