// Package integrate turns compensated strain into crack widths by
// trapezoidal integration over the sample grid.
//
// All functions require repaired input: an invalid sample inside the
// integration range indicates that repair was skipped and panics instead
// of being silently treated as zero.
package integrate

import (
	"errors"

	"github.com/cwbudde/algo-strain/core"
)

// ErrInsufficientData indicates fewer than two samples in the range.
var ErrInsufficientData = errors.New("integrate: need at least two samples")

// Segment integrates y over the full extent of x with the trapezoidal
// rule.
func Segment(x, y []float64) (float64, error) {
	core.MustAligned(x, y)
	core.MustAscending(x)

	if len(x) < 2 {
		return 0, ErrInsufficientData
	}

	mustRepaired(y)

	var area float64
	for i := 1; i < len(x); i++ {
		area += (y[i-1] + y[i]) * (x[i] - x[i-1]) / 2
	}

	return area, nil
}

// SegmentRange integrates y over the samples with lo <= x <= hi.
func SegmentRange(x, y []float64, lo, hi float64) (float64, error) {
	core.MustAligned(x, y)
	core.MustAscending(x)

	start, end := rangeIndices(x, lo, hi)
	if end-start < 2 {
		return 0, ErrInsufficientData
	}

	return Segment(x[start:end], y[start:end])
}

// Antiderivative returns the cumulative trapezoidal integral of y,
// starting from the integration constant c at the first sample.
func Antiderivative(x, y []float64, c float64) ([]float64, error) {
	core.MustAligned(x, y)
	core.MustAscending(x)

	if len(x) < 2 {
		return nil, ErrInsufficientData
	}

	mustRepaired(y)

	out := make([]float64, len(x))
	out[0] = c

	for i := 1; i < len(x); i++ {
		out[i] = out[i-1] + (y[i-1]+y[i])*(x[i]-x[i-1])/2
	}

	return out, nil
}

// rangeIndices returns the half-open index range [start, end) of samples
// inside [lo, hi].
func rangeIndices(x []float64, lo, hi float64) (start, end int) {
	start = 0
	for start < len(x) && x[start] < lo {
		start++
	}

	end = start
	for end < len(x) && x[end] <= hi {
		end++
	}

	return start, end
}

func mustRepaired(y []float64) {
	for _, v := range y {
		if !core.IsValid(v) {
			panic("integrate: invalid sample inside integration range")
		}
	}
}
