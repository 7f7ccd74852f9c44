package index

import "github.com/colgo/colgo/internal/base"

// Cogroup is the join/merge workhorse (spec §4.3). left and right must
// both be ordered by the same key order. It advances two cursors in
// lockstep, and for each maximal run of equal keys on either side calls cb
// with the key and the logical [start, end) ranges of that run in left and
// right respectively. If a side has no rows for the current key its range
// is empty (start == end).
//
// Tie-break, per spec: a left-only run with a smaller key than the next
// right key (or vice versa) is emitted alone first; equal keys are
// emitted together; a larger key waits its turn.
func Cogroup[K any](left, right Index[K], cb func(key K, lStart, lEnd, rStart, rEnd int)) {
	base.AssertTrue(left.ordered, "index: Cogroup requires an ordered left index")
	base.AssertTrue(right.ordered, "index: Cogroup requires an ordered right index")
	cmp := left.cmp

	li, ri := 0, 0
	nl, nr := left.Len(), right.Len()
	for li < nl || ri < nr {
		switch {
		case li < nl && ri < nr:
			switch c := cmp(left.keys[li], right.keys[ri]); {
			case c < 0:
				lEnd := runEnd(left, li)
				cb(left.keys[li], li, lEnd, ri, ri)
				li = lEnd
			case c > 0:
				rEnd := runEnd(right, ri)
				cb(right.keys[ri], li, li, ri, rEnd)
				ri = rEnd
			default:
				lEnd, rEnd := runEnd(left, li), runEnd(right, ri)
				cb(left.keys[li], li, lEnd, ri, rEnd)
				li, ri = lEnd, rEnd
			}
		case li < nl:
			lEnd := runEnd(left, li)
			cb(left.keys[li], li, lEnd, ri, ri)
			li = lEnd
		default:
			rEnd := runEnd(right, ri)
			cb(right.keys[ri], li, li, ri, rEnd)
			ri = rEnd
		}
	}
}

// runEnd returns the exclusive end of the maximal run of keys in ix equal
// to ix.keys[start].
func runEnd[K any](ix Index[K], start int) int {
	j := start + 1
	for j < ix.Len() && ix.cmp(ix.keys[start], ix.keys[j]) == 0 {
		j++
	}
	return j
}
