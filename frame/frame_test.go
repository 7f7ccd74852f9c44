package frame

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
	"github.com/colgo/colgo/index"
)

func intCmp(a, b int) int { return cmp.Compare(a, b) }

func ordered(keys []int) index.Index[int] {
	positions := make([]int, len(keys))
	for i := range positions {
		positions[i] = i
	}
	return index.Ordered(keys, positions, intCmp)
}

func floatColumn(values ...float64) column.Column[float64] {
	var b column.Builder[float64]
	for _, v := range values {
		b.AddValue(v)
	}
	return b.Result()
}

func TestWithColumnAndSelect(t *testing.T) {
	f := New(ordered([]int{1, 2, 3}))

	f, err := f.WithColumn("price", Box(floatColumn(1.0, 2.0, 3.0)))
	require.NoError(t, err)
	f, err = f.WithColumn("qty", Box(floatColumn(10.0, 20.0, 30.0)))
	require.NoError(t, err)
	require.Equal(t, []string{"price", "qty"}, f.ColumnNames())

	sel := f.Select("qty")
	require.Equal(t, []string{"qty"}, sel.ColumnNames())
	_, ok := sel.Column("price")
	require.False(t, ok)
}

func TestWithColumnCollisionReturnsError(t *testing.T) {
	f := New(ordered([]int{1}))
	f, err := f.WithColumn("x", Box(floatColumn(1.0)))
	require.NoError(t, err)

	_, err = f.WithColumn("x", Box(floatColumn(2.0)))
	require.Error(t, err)
}

func TestTypedSeriesCastMismatchYieldsNM(t *testing.T) {
	f := New(ordered([]int{1, 2}))
	f, err := f.WithColumn("label", Box(boxStrings("a", "b")))
	require.NoError(t, err)

	s, ok := TypedSeries[int, int](f, "label")
	require.True(t, ok)
	require.True(t, s.At(0).IsNM())
	require.True(t, s.At(1).IsNM())
}

func TestTypedSeriesMatchingTypeRoundTrips(t *testing.T) {
	f := New(ordered([]int{1, 2, 3}))
	f, err := f.WithColumn("price", Box(floatColumn(1.5, 2.5, 3.5)))
	require.NoError(t, err)

	s, ok := TypedSeries[int, float64](f, "price")
	require.True(t, ok)
	require.Equal(t, cell.Of(2.5), s.At(1))
}

func TestTypedSeriesMissingColumn(t *testing.T) {
	f := New(ordered([]int{1}))
	_, ok := TypedSeries[int, float64](f, "missing")
	require.False(t, ok)
}

func boxStrings(values ...string) column.Column[string] {
	var b column.Builder[string]
	for _, v := range values {
		b.AddValue(v)
	}
	return b.Result()
}
