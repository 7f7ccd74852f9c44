package column

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/internal/invariants"
	"github.com/colgo/colgo/mask"
)

// Builder accumulates appends of Value/NA/NM and produces an immutable,
// dense Column. A Builder is owned by one caller and is not safe for
// concurrent use — it acquires growable storage that is transferred to the
// resulting Column on Result(), per the shared-resource policy.
type Builder[A any] struct {
	values []A
	na     mask.Builder
	nm     mask.Builder
	n      int
	closed invariants.CloseChecker
}

// SizeHint preallocates backing storage for at least n more appends.
func (b *Builder[A]) SizeHint(n int) {
	if cap(b.values)-len(b.values) < n {
		grown := make([]A, len(b.values), len(b.values)+n)
		copy(grown, b.values)
		b.values = grown
	}
}

// AddValue appends a present, meaningful datum.
func (b *Builder[A]) AddValue(v A) {
	b.values = append(b.values, v)
	b.n++
}

// AddNA appends a "not available" row.
func (b *Builder[A]) AddNA() {
	var zero A
	b.values = append(b.values, zero)
	b.na.Add(b.n)
	b.n++
}

// AddNM appends a "not meaningful" row.
func (b *Builder[A]) AddNM() {
	var zero A
	b.values = append(b.values, zero)
	b.nm.Add(b.n)
	b.n++
}

// AddNonValue appends a row with the given absence variant. Panics if nv
// is cell.Value (use AddValue for that).
func (b *Builder[A]) AddNonValue(nv cell.Variant) {
	switch nv {
	case cell.NA:
		b.AddNA()
	case cell.NM:
		b.AddNM()
	default:
		panic("column: AddNonValue called with cell.Value")
	}
}

// Add appends c, dispatching on its variant.
func (b *Builder[A]) Add(c cell.Cell[A]) {
	switch c.Variant() {
	case cell.Value:
		b.AddValue(c.Get())
	default:
		b.AddNonValue(c.Variant())
	}
}

// Len reports how many rows have been appended so far.
func (b *Builder[A]) Len() int { return b.n }

// Result finalizes the Column. The builder's storage is transferred to the
// returned Column; the builder must not be reused afterwards.
func (b *Builder[A]) Result() Column[A] {
	b.closed.Close()
	return dense[A]{values: b.values, na: b.na.Build(), nm: b.nm.Build()}
}
