package reduce

import (
	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
)

// Outliers returns the present values in the window that fall outside
// Tukey's fences [Q1 - k*IQR, Q3 + k*IQR] (k=1.5 is the conventional
// "outlier" fence, k=3 the conventional "far out" fence) — NA if the
// window is empty, NM if any row in the window is NM, Value([]) if no
// value is outside the fences.
func Outliers(k float64) Func[float64, []float64] {
	return func(col column.Column[float64], positions []int, start, end int) cell.Cell[[]float64] {
		values, sawNM := sortedWindow(col, positions, start, end)
		if sawNM {
			return cell.OfNM[[]float64]()
		}
		if len(values) == 0 {
			return cell.OfNA[[]float64]()
		}
		q1 := interpolate(values, 0.25)
		q3 := interpolate(values, 0.75)
		iqr := q3 - q1
		lowFence, highFence := q1-k*iqr, q3+k*iqr

		var out []float64
		for _, v := range values {
			if v < lowFence || v > highFence {
				out = append(out, v)
			}
		}
		return cell.Of(out)
	}
}
