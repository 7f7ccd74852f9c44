// Package frame implements the column-oriented table described by spec §2
// ("Frame (edge)... delegates to Series/Index machinery") and §6's Frame
// boundary: a Frame holds named, statically-untyped columns sharing one
// Index, and a typed cast-to-Cell[A] operation turns an UntypedColumn plus
// a concrete type into a column.Column[A] — failed casts surface as NM
// rather than an error, per spec §6.
package frame

import (
	"github.com/cockroachdb/errors"

	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
	"github.com/colgo/colgo/index"
	"github.com/colgo/colgo/series"
)

// UntypedColumn is the opaque column shape a Frame stores before a caller
// picks a concrete element type to cast it to. It mirrors column.Column's
// per-row accessors with the value type erased to any.
type UntypedColumn interface {
	IsValueAt(row int) bool
	RawValueAt(row int) any
	NonValueAt(row int) cell.Variant
}

// Box adapts a typed column.Column[A] into an UntypedColumn, so any
// concrete column a caller already has can be stored in a Frame.
func Box[A any](col column.Column[A]) UntypedColumn {
	return boxed[A]{col: col}
}

type boxed[A any] struct{ col column.Column[A] }

func (b boxed[A]) IsValueAt(row int) bool          { return b.col.IsValueAt(row) }
func (b boxed[A]) RawValueAt(row int) any          { return b.col.ValueAt(row) }
func (b boxed[A]) NonValueAt(row int) cell.Variant { return b.col.NonValueAt(row) }

// Cast reads row of uc as a Cell[A]: absent rows forward their NA/NM
// variant unchanged; a present row whose underlying value is not an A
// becomes NM ("a cast that didn't apply" — spec §6/§7), never a panic or
// error, since this is a data-plane read, not a contract violation.
func Cast[A any](uc UntypedColumn, row int) cell.Cell[A] {
	if !uc.IsValueAt(row) {
		return cell.OfVariant[A](uc.NonValueAt(row))
	}
	v, ok := uc.RawValueAt(row).(A)
	if !ok {
		return cell.OfNM[A]()
	}
	return cell.Of(v)
}

// CastColumn wraps uc as a column.Column[A] via Cast, as a lazy view (no
// row is actually cast until it's read).
func CastColumn[A any](uc UntypedColumn) column.Column[A] {
	return castView[A]{uc: uc}
}

type castView[A any] struct{ uc UntypedColumn }

func (c castView[A]) Get(row int) cell.Cell[A] { return Cast[A](c.uc, row) }

func (c castView[A]) IsValueAt(row int) bool {
	if !c.uc.IsValueAt(row) {
		return false
	}
	_, ok := c.uc.RawValueAt(row).(A)
	return ok
}

func (c castView[A]) ValueAt(row int) A {
	v, ok := c.uc.RawValueAt(row).(A)
	if !ok {
		panic(errors.AssertionFailedf("frame: ValueAt called on a non-value row %d", row))
	}
	return v
}

func (c castView[A]) NonValueAt(row int) cell.Variant {
	if !c.uc.IsValueAt(row) {
		return c.uc.NonValueAt(row)
	}
	return cell.NM
}

func (c castView[A]) Reindex(positions []int) column.Column[A] { return materializeCast(c, positions) }
func (c castView[A]) Compact(positions []int) column.Column[A] { return materializeCast(c, positions) }

func materializeCast[A any](c column.Column[A], positions []int) column.Column[A] {
	var b column.Builder[A]
	b.SizeHint(len(positions))
	for _, p := range positions {
		if p < 0 {
			b.AddNA()
			continue
		}
		b.Add(c.Get(p))
	}
	return b.Result()
}

// Frame pairs a shared Index[K] with a set of named UntypedColumns, per
// spec §2's "column-oriented table; delegates to Series/Index machinery".
// Immutable; every transformation returns a new Frame.
type Frame[K any] struct {
	Index   index.Index[K]
	columns map[string]UntypedColumn
	order   []string
}

// New returns an empty Frame over ix.
func New[K any](ix index.Index[K]) Frame[K] {
	return Frame[K]{Index: ix, columns: map[string]UntypedColumn{}}
}

// WithColumn returns a Frame with name bound to col. If name already
// exists, err reports the collision (a recoverable construction error, per
// SPEC_FULL's ambient error-handling conventions — not a contract
// violation) and the receiver is returned unchanged; callers that want to
// overwrite should Select the other columns out first.
func (f Frame[K]) WithColumn(name string, col UntypedColumn) (Frame[K], error) {
	if _, exists := f.columns[name]; exists {
		return f, errors.Newf("frame: column %q already exists", name)
	}
	cols := make(map[string]UntypedColumn, len(f.columns)+1)
	for k, v := range f.columns {
		cols[k] = v
	}
	cols[name] = col
	order := append(append([]string(nil), f.order...), name)
	return Frame[K]{Index: f.Index, columns: cols, order: order}, nil
}

// Column returns the named column and whether it exists.
func (f Frame[K]) Column(name string) (UntypedColumn, bool) {
	c, ok := f.columns[name]
	return c, ok
}

// ColumnNames returns the Frame's column names in the order they were
// added.
func (f Frame[K]) ColumnNames() []string {
	return append([]string(nil), f.order...)
}

// Select returns a Frame over the same Index holding only the named
// columns, in the given order. A name with no bound column is skipped.
func (f Frame[K]) Select(names ...string) Frame[K] {
	cols := make(map[string]UntypedColumn, len(names))
	order := make([]string, 0, len(names))
	for _, n := range names {
		if c, ok := f.columns[n]; ok {
			cols[n] = c
			order = append(order, n)
		}
	}
	return Frame[K]{Index: f.Index, columns: cols, order: order}
}

// TypedSeries reads name as a typed series.Series[K, A] over f's Index,
// casting each row of the named column to A (spec §6's Frame boundary).
func TypedSeries[K, A any](f Frame[K], name string) (series.Series[K, A], bool) {
	uc, ok := f.Column(name)
	if !ok {
		return series.Series[K, A]{}, false
	}
	return series.New(f.Index, CastColumn[A](uc)), true
}
