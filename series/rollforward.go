package series

import "github.com/colgo/colgo/index"

// Metric supplies the notion of "distance" roll-forward uses to decide
// whether a prior valid position is close enough to cover an NA (spec
// §4.5). Distance is expected to be symmetric and zero on equal keys, but
// RollForward does not itself enforce that.
type Metric[K any] struct {
	Distance func(a, b K) float64
}

// TrivialMetric is the unbounded form of roll-forward: every pair of keys
// is distance 0 apart, so any NA rolls forward regardless of delta.
func TrivialMetric[K any]() Metric[K] {
	return Metric[K]{Distance: func(a, b K) float64 { return 0 }}
}

// RollForward walks s in logical position order maintaining the last
// position whose cell was a Value or NM ("valid" in spec §4.5's sense). An
// NA at position i is redirected to read the last valid position's
// underlying row — so the column reports that cell instead — iff
// m.Distance(key[i], key[lastValid]) <= delta; otherwise the NA is left
// alone. Keys are never changed, only which row of the Column each logical
// position addresses.
func RollForward[K, V any](s Series[K, V], delta float64, m Metric[K]) Series[K, V] {
	n := s.Len()
	positions := make([]int, n)
	copy(positions, s.Index.Positions())

	lastValid := -1
	for i := 0; i < n; i++ {
		c := s.Column.Get(positions[i])
		switch {
		case c.IsValue() || c.IsNM():
			lastValid = i
		case c.IsNA():
			if lastValid >= 0 && m.Distance(s.Index.KeyAt(i), s.Index.KeyAt(lastValid)) <= delta {
				positions[i] = positions[lastValid]
			}
		}
	}

	keys := make([]K, n)
	for i := 0; i < n; i++ {
		keys[i] = s.Index.KeyAt(i)
	}
	cmp := s.Index.Compare()
	var outIndex index.Index[K]
	if s.Index.IsOrdered() {
		outIndex = index.Ordered(keys, positions, cmp)
	} else {
		outIndex = index.FromUnordered(keys, positions, cmp)
	}
	return Series[K, V]{Index: outIndex, Column: s.Column}
}
