package reduce

import (
	"sort"

	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
)

// Quantile returns, for each p in ps (each in [0,1]), the linearly
// interpolated value at that quantile of the window's sorted present
// values — NA if the window is empty, NM if any row in the window is NM.
func Quantile(ps []float64) Func[float64, []float64] {
	return func(col column.Column[float64], positions []int, start, end int) cell.Cell[[]float64] {
		values, sawNM := sortedWindow(col, positions, start, end)
		if sawNM {
			return cell.OfNM[[]float64]()
		}
		if len(values) == 0 {
			return cell.OfNA[[]float64]()
		}
		out := make([]float64, len(ps))
		for i, p := range ps {
			out[i] = interpolate(values, p)
		}
		return cell.Of(out)
	}
}

// sortedWindow copies the present values of the window into a freshly
// allocated, sorted slice (spec §6: "median/quantiles are on a stable
// copy").
func sortedWindow(col column.Column[float64], positions []int, start, end int) ([]float64, bool) {
	var values []float64
	sawNM := window(col, positions, start, end, func(v float64) {
		values = append(values, v)
	})
	sort.Float64s(values)
	return values, sawNM
}

// interpolate returns the linearly-interpolated p-quantile (p in [0,1]) of
// sorted (ascending), using the same positional convention as R's type-7
// quantile estimator.
func interpolate(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	if lo < 0 {
		return sorted[0]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
