package cell

// Equal reports whether a and b are the same cell: both absent with the
// same variant, or both present with equal values under eq.
//
// Design note (spec's open question on Value(NA) == NA): this package does
// not special-case A being itself a Cell[X] — colgo's APIs never construct
// a Cell[Cell[X]], so "a Value whose inner datum is a non-value sentinel"
// cannot arise by construction, and nested-cell collapsing is moot. This is
// the alternative the spec explicitly permits ("Implementers may instead
// refuse to permit nested Cells by type").
func Equal[A any](a, b Cell[A], eq func(A, A) bool) bool {
	if a.variant != b.variant {
		return false
	}
	if a.variant != Value {
		return true
	}
	return eq(a.value, b.value)
}
