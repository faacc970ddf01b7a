package series

import (
	"errors"
	"math"
)

// ErrLengthMismatch indicates table columns of differing lengths.
var ErrLengthMismatch = errors.New("series: all columns must have the same length")

// XY is one plottable point.
type XY struct {
	X, Y float64
}

// Points pairs each value with its index: (j, ys[j]). The result has
// the same length as ys; an empty input yields an empty, non-nil slice.
func Points(ys []float64) []XY {
	pts := make([]XY, len(ys))
	for j, y := range ys {
		pts[j] = XY{X: float64(j), Y: y}
	}

	return pts
}

// LogPoints pairs each positive value with its index as (j, log10(y)),
// skipping non-positive values, which have no place on a log axis.
// Exact-zero errors at early indices drop out silently, which is what
// a log-scale error plot wants.
func LogPoints(ys []float64) []XY {
	pts := make([]XY, 0, len(ys))
	for j, y := range ys {
		if y <= 0 {
			continue
		}
		pts = append(pts, XY{X: float64(j), Y: math.Log10(y)})
	}

	return pts
}

// Table joins equal-length columns row-major: row j holds the j-th
// element of every column, in argument order. Useful for tabular
// report renderers that consume one row per index.
//
// Errors:
//   - ErrLengthMismatch — if the columns differ in length.
//
// Complexity: O(rows·cols).
func Table(cols ...[]float64) ([][]float64, error) {
	if len(cols) == 0 {
		return [][]float64{}, nil
	}
	n := len(cols[0])
	for _, c := range cols[1:] {
		if len(c) != n {
			return nil, ErrLengthMismatch
		}
	}
	rows := make([][]float64, n)
	for j := range rows {
		row := make([]float64, len(cols))
		for k, c := range cols {
			row[k] = c[j]
		}
		rows[j] = row
	}

	return rows, nil
}
