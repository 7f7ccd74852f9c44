// Package cell implements the three-valued datum at every colgo public
// boundary: a present value, a not-available absence, or a not-meaningful
// absence that absorbs under algebraic combination.
package cell

import (
	"fmt"

	"github.com/cockroachdb/redact"
)

// Variant distinguishes the three states a Cell can be in.
type Variant int8

const (
	// NA marks a datum that is simply absent.
	NA Variant = iota
	// NM marks a datum that exists in principle but is undefined in
	// context (1/0, a failed lookup join, a cast that didn't apply).
	NM
	// Value marks a present, meaningful datum.
	Value
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case NA:
		return "NA"
	case NM:
		return "NM"
	case Value:
		return "Value"
	default:
		return fmt.Sprintf("Variant(%d)", int8(v))
	}
}

// SafeFormat implements redact.SafeFormatter: a Variant never carries
// sensitive data, so it is always safe to print.
func (v Variant) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(v.String()))
}

// Cell is the three-valued wrapper described by the data model: a present,
// meaningful datum of type A, or one of the two absences (NA, NM).
type Cell[A any] struct {
	variant Variant
	value   A
}

// Of constructs a present cell holding v.
func Of[A any](v A) Cell[A] { return Cell[A]{variant: Value, value: v} }

// OfNA constructs the "not available" cell for A.
func OfNA[A any]() Cell[A] { return Cell[A]{variant: NA} }

// OfNM constructs the "not meaningful" cell for A.
func OfNM[A any]() Cell[A] { return Cell[A]{variant: NM} }

// OfVariant constructs NA or NM from a Variant; panics if called with Value
// (use Of for that, since Value requires a datum).
func OfVariant[A any](v Variant) Cell[A] {
	switch v {
	case NA:
		return OfNA[A]()
	case NM:
		return OfNM[A]()
	default:
		panic(fmt.Sprintf("cell: OfVariant called with %s, not a non-value variant", v))
	}
}

// Variant reports which of the three states c is in.
func (c Cell[A]) Variant() Variant { return c.variant }

// IsValue reports whether c holds a present, meaningful datum.
func (c Cell[A]) IsValue() bool { return c.variant == Value }

// IsNA reports whether c is "not available".
func (c Cell[A]) IsNA() bool { return c.variant == NA }

// IsNM reports whether c is "not meaningful".
func (c Cell[A]) IsNM() bool { return c.variant == NM }

// IsAbsent reports whether c is NA or NM (i.e. not IsValue).
func (c Cell[A]) IsAbsent() bool { return c.variant != Value }

// Get returns the held datum. It panics if c is not a Value — callers must
// check IsValue first, matching the reducer contract's "use
// column.isValueAt/valueAt/nonValueAt".
func (c Cell[A]) Get() A {
	if c.variant != Value {
		panic(fmt.Sprintf("cell: Get called on a %s cell", c.variant))
	}
	return c.value
}

// GetOr returns the held datum, or fallback if c is not a Value.
func (c Cell[A]) GetOr(fallback A) A {
	if c.variant != Value {
		return fallback
	}
	return c.value
}

// String implements fmt.Stringer.
func (c Cell[A]) String() string {
	switch c.variant {
	case Value:
		return fmt.Sprintf("Value(%v)", c.value)
	default:
		return c.variant.String()
	}
}

// SafeFormat implements redact.SafeFormatter. The variant tag is always
// safe to print; the held datum itself is not (a Cell[A] may wrap
// arbitrary user data), so it is printed through w.Print without a
// redact.Safe wrapper and is subject to redaction like any other
// unmarked value.
func (c Cell[A]) SafeFormat(w redact.SafePrinter, _ rune) {
	if c.variant != Value {
		w.Print(redact.SafeString(c.variant.String()))
		return
	}
	w.Print(redact.SafeString("Value("))
	w.Print(c.value)
	w.Print(redact.SafeString(")"))
}

// Map applies f to a present datum, preserving NA/NM untouched. This is the
// cell-algebra "map": the variant is preserved across the transformation.
func Map[A, B any](c Cell[A], f func(A) B) Cell[B] {
	switch c.variant {
	case Value:
		return Of(f(c.value))
	case NM:
		return OfNM[B]()
	default:
		return OfNA[B]()
	}
}

// FlatMap applies f to a present datum, allowing f to itself produce NA or
// NM; a non-Value input short-circuits without calling f.
func FlatMap[A, B any](c Cell[A], f func(A) Cell[B]) Cell[B] {
	switch c.variant {
	case Value:
		return f(c.value)
	case NM:
		return OfNM[B]()
	default:
		return OfNA[B]()
	}
}

// Map2 applies f to two present datums, threading the cell algebra's
// priority when either operand is absent: NM on either side absorbs to NM,
// otherwise NA propagates. Used by zipMap (inner join semantics live in
// package series; this just fixes the per-cell rule).
func Map2[A, B, C any](a Cell[A], b Cell[B], f func(A, B) C) Cell[C] {
	if a.IsValue() && b.IsValue() {
		return Of(f(a.value, b.value))
	}
	if a.IsNM() || b.IsNM() {
		return OfNM[C]()
	}
	return OfNA[C]()
}
