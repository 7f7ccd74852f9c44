// Package join implements the two concrete cogroupers that drive every
// binary Series/Frame operation: Joiner (Cartesian product within a
// matched key) and Merger (positional alignment within a matched key).
// Both consume the 6-tuple Index.Cogroup presents and accumulate into a
// State using Skip as the "no match on this side" sentinel.
package join

import (
	"github.com/cockroachdb/redact"

	"github.com/colgo/colgo/index"
)

// Skip marks "no match on this side" in a State's Lefts/Rights slices.
const Skip = -1

// Kind selects a Joiner's behavior for keys present on only one side.
type Kind int8

const (
	// Inner drops any key not present on both sides.
	Inner Kind = iota
	// Left keeps every left row, padding unmatched rows with Skip on the
	// right.
	Left
	// Right keeps every right row, padding unmatched rows with Skip on
	// the left.
	Right
	// Outer keeps every row from either side.
	Outer
)

func (k Kind) leftOuter() bool  { return k == Left || k == Outer }
func (k Kind) rightOuter() bool { return k == Right || k == Outer }

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Inner:
		return "Inner"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Outer:
		return "Outer"
	default:
		return "Kind(?)"
	}
}

// SafeFormat implements redact.SafeFormatter: a Kind never carries user
// data, so it is always safe to print.
func (k Kind) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(k.String()))
}

// State accumulates the aligned (key, leftPosition, rightPosition) triples
// produced by a cogroup pass. It becomes the index for the binary
// operation's output: Keys is the new Index's key sequence, and Lefts /
// Rights are the row numbers (or Skip) each output row should read from
// the left and right Column respectively.
type State[K any] struct {
	Keys   []K
	Lefts  []int
	Rights []int
}

// Append records one aligned output row.
func (s *State[K]) Append(key K, left, right int) {
	s.Keys = append(s.Keys, key)
	s.Lefts = append(s.Lefts, left)
	s.Rights = append(s.Rights, right)
}

// Len reports how many rows have been accumulated.
func (s *State[K]) Len() int { return len(s.Keys) }

// Index packages the accumulated state as a fresh, unordered Index[K]
// with ResetIndices-style positions 0..n-1, since Lefts/Rights (not
// this Index) carry the addressing into the two original columns.
func (s *State[K]) Index(cmp func(a, b K) int) index.Index[K] {
	positions := make([]int, len(s.Keys))
	for i := range positions {
		positions[i] = i
	}
	return index.FromUnordered(s.Keys, positions, cmp)
}

// Joiner cogroups two indices with Cartesian-product semantics within a
// matched key: every left row pairs with every right row sharing that key.
type Joiner[K any] struct {
	Kind Kind
}

// Cogroup is the callback passed to index.Cogroup. left and right give
// access to the underlying row numbers for the current run via
// PositionAt; lStart/lEnd and rStart/rEnd bound that run.
func (j Joiner[K]) Cogroup(key K, left index.Index[K], lStart, lEnd int, right index.Index[K], rStart, rEnd int, out *State[K]) {
	lCount, rCount := lEnd-lStart, rEnd-rStart
	switch {
	case lCount > 0 && rCount > 0:
		for li := lStart; li < lEnd; li++ {
			for ri := rStart; ri < rEnd; ri++ {
				out.Append(key, left.PositionAt(li), right.PositionAt(ri))
			}
		}
	case lCount > 0:
		if j.Kind.leftOuter() {
			for li := lStart; li < lEnd; li++ {
				out.Append(key, left.PositionAt(li), Skip)
			}
		}
	case rCount > 0:
		if j.Kind.rightOuter() {
			for ri := rStart; ri < rEnd; ri++ {
				out.Append(key, Skip, right.PositionAt(ri))
			}
		}
	}
}

// Run cogroups left and right with j's Cartesian-product semantics and
// returns the accumulated State.
func Run[K any](left, right index.Index[K], j Joiner[K]) *State[K] {
	out := &State[K]{}
	index.Cogroup(left, right, func(key K, lStart, lEnd, rStart, rEnd int) {
		j.Cogroup(key, left, lStart, lEnd, right, rStart, rEnd, out)
	})
	return out
}
