package index

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colgo/colgo/internal/base"
)

func intCmp(a, b int) int { return cmp.Compare(a, b) }

func newOrdered(keys []int) Index[int] {
	positions := make([]int, len(keys))
	for i := range positions {
		positions[i] = i
	}
	return Ordered(keys, positions, base.Compare[int](intCmp))
}

func TestGetOrderedAndUnordered(t *testing.T) {
	ord := newOrdered([]int{1, 3, 3, 5})
	pos, ok := ord.Get(3)
	require.True(t, ok)
	require.Equal(t, 1, pos) // first match

	_, ok = ord.Get(4)
	require.False(t, ok)

	unord := FromUnordered([]int{5, 1, 3}, []int{0, 1, 2}, base.Compare[int](intCmp))
	pos, ok = unord.Get(1)
	require.True(t, ok)
	require.Equal(t, 1, pos)
}

func TestGetHashedMatchesLinearScan(t *testing.T) {
	keys := []int{5, 1, 3, 1, 9}
	positions := []int{0, 1, 2, 3, 4}
	linear := FromUnordered(keys, positions, base.Compare[int](intCmp))
	hashed := FromUnorderedHashed(keys, positions, base.Compare[int](intCmp), HashInt)

	for _, k := range []int{5, 1, 3, 9, 42} {
		lp, lok := linear.Get(k)
		hp, hok := hashed.Get(k)
		require.Equal(t, lok, hok)
		if lok {
			require.Equal(t, lp, hp)
		}
	}
}

func TestSortedStability(t *testing.T) {
	// Two equal keys carrying distinguishable positions; Sorted must
	// preserve their relative (insertion) order — spec §8 item 10.
	unord := FromUnordered([]int{2, 1, 2, 1}, []int{100, 200, 300, 400}, base.Compare[int](intCmp))
	sorted := unord.Sorted()

	require.Equal(t, []int{1, 1, 2, 2}, sorted.Keys())
	require.Equal(t, []int{200, 400, 100, 300}, sorted.Positions())
}

func TestResetIndices(t *testing.T) {
	ord := newOrdered([]int{1, 2, 3})
	reset := ord.ResetIndices()
	require.Equal(t, []int{0, 1, 2}, reset.Positions())
}

func TestGroupWalksContiguousRuns(t *testing.T) {
	ord := newOrdered([]int{1, 1, 2, 3, 3, 3})
	type run struct {
		key        int
		start, end int
	}
	var got []run
	ord.Group(func(key, start, end int) { got = append(got, run{key, start, end}) })

	require.Equal(t, []run{{1, 0, 2}, {2, 2, 3}, {3, 3, 6}}, got)
}

func TestGroupRequiresOrdered(t *testing.T) {
	unord := FromUnordered([]int{2, 1}, []int{0, 1}, base.Compare[int](intCmp))
	require.Panics(t, func() { unord.Group(func(int, int, int) {}) })
}

type cogroupCall struct {
	key          int
	lStart, lEnd int
	rStart, rEnd int
}

func collectCogroup(left, right Index[int]) []cogroupCall {
	var got []cogroupCall
	Cogroup(left, right, func(key, lStart, lEnd, rStart, rEnd int) {
		got = append(got, cogroupCall{key, lStart, lEnd, rStart, rEnd})
	})
	return got
}

func TestCogroupBothSidesPresent(t *testing.T) {
	left := newOrdered([]int{1, 2, 3})
	right := newOrdered([]int{2, 3, 4})

	got := collectCogroup(left, right)
	require.Equal(t, []cogroupCall{
		{1, 0, 1, 0, 0},
		{2, 1, 2, 0, 1},
		{3, 2, 3, 1, 2},
		{4, 3, 3, 2, 3},
	}, got)
}

func TestCogroupRunsOfRepeatedKeys(t *testing.T) {
	// S6-style setup: key 2 appears 3 times on the left, once on the
	// right.
	left := newOrdered([]int{2, 2, 2})
	right := newOrdered([]int{2})

	got := collectCogroup(left, right)
	require.Equal(t, []cogroupCall{{2, 0, 3, 0, 1}}, got)
}

func TestCogroupOneSideExhausted(t *testing.T) {
	left := newOrdered([]int{1, 2})
	right := newOrdered([]int{})

	got := collectCogroup(left, right)
	require.Equal(t, []cogroupCall{{1, 0, 1, 0, 0}, {2, 1, 2, 0, 0}}, got)
}
