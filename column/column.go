// Package column implements sparse, typed row storage: a dense backing of
// values plus two presence masks, and the lazy reindex/map view shapes
// described in spec §4.2 and §9 ("a sum-type of column shapes {Dense,
// Reindexed, Mapped} with a small get dispatch"). The presence/absence
// split below is the in-memory analogue of sstable/colblk's presence
// bitmap, minus its on-disk encoding.
package column

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/internal/base"
	"github.com/colgo/colgo/mask"
)

// Column is a sparse, potentially-infinite mapping from row position to
// Cell[A]. Rows beyond a Column's stored range read as NA.
type Column[A any] interface {
	// Get returns the cell at row.
	Get(row int) cell.Cell[A]
	// IsValueAt reports whether row holds a present value, without
	// materializing it.
	IsValueAt(row int) bool
	// ValueAt returns the value at row. Panics if row is not a Value —
	// callers must check IsValueAt first (the reducer contract).
	ValueAt(row int) A
	// NonValueAt returns which absence row holds (NA or NM). Panics if
	// row is a Value.
	NonValueAt(row int) cell.Variant
	// Reindex produces a view such that view.Get(i) == self.Get(positions[i])
	// for 0 <= positions[i], and NA for out-of-range or negative positions
	// (the join/merge Skip sentinel is negative).
	Reindex(positions []int) Column[A]
	// Compact materializes a dense Column over exactly the rows in
	// positions, row i of the result corresponding to positions[i]. This
	// collapses any reindex/map chain and drops the backing reference to
	// the original Column (spec §9: "compacted... materialize a dense
	// column over exactly the rows the current index visits").
	Compact(positions []int) Column[A]
}

// dense is the concrete, materialized Column shape: values plus two
// disjoint presence masks.
type dense[A any] struct {
	values []A
	na     mask.Mask
	nm     mask.Mask
}

var _ Column[int] = dense[int]{}

// Dense constructs a Column directly from its three parts. Callers
// normally go through Builder instead; Dense is exposed for adapting
// foreign typed storage (e.g. a Frame's UntypedColumn cast) into the
// Column interface without copying.
func Dense[A any](values []A, na, nm mask.Mask) Column[A] {
	base.AssertTrue(na.Intersect(nm).Size() == 0, "column: na_mask and nm_mask must be disjoint")
	return dense[A]{values: values, na: na, nm: nm}
}

func (d dense[A]) Get(row int) cell.Cell[A] {
	if row < 0 || row >= len(d.values) {
		return cell.OfNA[A]()
	}
	if d.na.Contains(row) {
		return cell.OfNA[A]()
	}
	if d.nm.Contains(row) {
		return cell.OfNM[A]()
	}
	return cell.Of(d.values[row])
}

func (d dense[A]) IsValueAt(row int) bool {
	return row >= 0 && row < len(d.values) && !d.na.Contains(row) && !d.nm.Contains(row)
}

func (d dense[A]) ValueAt(row int) A {
	base.AssertTrue(d.IsValueAt(row), "column: ValueAt called on a non-value row %d", row)
	return d.values[row]
}

func (d dense[A]) NonValueAt(row int) cell.Variant {
	base.AssertTrue(!d.IsValueAt(row), "column: NonValueAt called on a value row %d", row)
	if row < 0 || row >= len(d.values) || d.na.Contains(row) {
		return cell.NA
	}
	return cell.NM
}

func (d dense[A]) Reindex(positions []int) Column[A] {
	return reindexed[A]{base: d, positions: positions}
}

func (d dense[A]) Compact(positions []int) Column[A] {
	return compact(d, positions)
}

// reindexed is a lazy view: view.Get(i) = base.Get(positions[i]).
type reindexed[A any] struct {
	base      Column[A]
	positions []int
}

var _ Column[int] = reindexed[int]{}

func (r reindexed[A]) resolve(row int) int {
	if row < 0 || row >= len(r.positions) {
		return -1
	}
	return r.positions[row]
}

func (r reindexed[A]) Get(row int) cell.Cell[A] {
	p := r.resolve(row)
	if p < 0 {
		return cell.OfNA[A]()
	}
	return r.base.Get(p)
}

func (r reindexed[A]) IsValueAt(row int) bool {
	p := r.resolve(row)
	return p >= 0 && r.base.IsValueAt(p)
}

func (r reindexed[A]) ValueAt(row int) A {
	base.AssertTrue(r.IsValueAt(row), "column: ValueAt called on a non-value row %d", row)
	return r.base.ValueAt(r.resolve(row))
}

func (r reindexed[A]) NonValueAt(row int) cell.Variant {
	p := r.resolve(row)
	if p < 0 {
		return cell.NA
	}
	return r.base.NonValueAt(p)
}

func (r reindexed[A]) Reindex(positions []int) Column[A] {
	// Compose rather than nest indefinitely: new.positions[i] =
	// r.positions[positions[i]].
	composed := make([]int, len(positions))
	for i, p := range positions {
		if p < 0 || p >= len(r.positions) {
			composed[i] = -1
		} else {
			composed[i] = r.positions[p]
		}
	}
	return reindexed[A]{base: r.base, positions: composed}
}

func (r reindexed[A]) Compact(positions []int) Column[A] {
	return compact[A](r, positions)
}

// compact materializes src over exactly the given positions into a dense
// Column, breaking any view chain.
func compact[A any](src Column[A], positions []int) Column[A] {
	var b Builder[A]
	b.SizeHint(len(positions))
	for _, p := range positions {
		if p < 0 {
			b.AddNA()
			continue
		}
		b.Add(src.Get(p))
	}
	return b.Result()
}
