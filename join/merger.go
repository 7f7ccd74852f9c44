package join

import (
	"github.com/cockroachdb/redact"

	"github.com/colgo/colgo/index"
)

// MergeKind selects a Merger's behavior for keys present on only one side,
// and for runs of mismatched length on both sides.
type MergeKind int8

const (
	// MergeInner stops at min(leftRunLength, rightRunLength); a key
	// missing from either side is dropped entirely.
	MergeInner MergeKind = iota
	// MergeOuter keeps every row from either side, padding the shorter
	// run (or an entirely absent side) with Skip.
	MergeOuter
)

// String implements fmt.Stringer.
func (k MergeKind) String() string {
	switch k {
	case MergeInner:
		return "MergeInner"
	case MergeOuter:
		return "MergeOuter"
	default:
		return "MergeKind(?)"
	}
}

// SafeFormat implements redact.SafeFormatter: a MergeKind never carries
// user data, so it is always safe to print.
func (k MergeKind) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(k.String()))
}

// Merger cogroups two indices with positional-alignment semantics within a
// matched key (spec §4.4): the i-th left row pairs with the i-th right
// row, not every pairing as Joiner does. This is what backs zipMap,
// merge, and orElse.
type Merger[K any] struct {
	Kind MergeKind
}

// Cogroup is the callback passed to index.Cogroup.
func (m Merger[K]) Cogroup(key K, left index.Index[K], lStart, lEnd int, right index.Index[K], rStart, rEnd int, out *State[K]) {
	lCount, rCount := lEnd-lStart, rEnd-rStart
	switch {
	case lCount > 0 && rCount > 0:
		n := max(lCount, rCount)
		if m.Kind == MergeInner {
			n = min(lCount, rCount)
		}
		for i := 0; i < n; i++ {
			l, r := Skip, Skip
			if i < lCount {
				l = left.PositionAt(lStart + i)
			}
			if i < rCount {
				r = right.PositionAt(rStart + i)
			}
			if m.Kind == MergeInner && (l == Skip || r == Skip) {
				continue
			}
			out.Append(key, l, r)
		}
	case lCount > 0:
		if m.Kind == MergeOuter {
			for li := lStart; li < lEnd; li++ {
				out.Append(key, left.PositionAt(li), Skip)
			}
		}
	case rCount > 0:
		if m.Kind == MergeOuter {
			for ri := rStart; ri < rEnd; ri++ {
				out.Append(key, Skip, right.PositionAt(ri))
			}
		}
	}
}

// RunMerge cogroups left and right with m's positional-alignment semantics
// and returns the accumulated State.
func RunMerge[K any](left, right index.Index[K], m Merger[K]) *State[K] {
	out := &State[K]{}
	index.Cogroup(left, right, func(key K, lStart, lEnd, rStart, rEnd int) {
		m.Cogroup(key, left, lStart, lEnd, right, rStart, rEnd, out)
	})
	return out
}
