// Package testutil provides synthetic strain profiles and tolerance
// helpers shared by the package tests.
package testutil

import (
	"math"
)

// UniformGrid returns n positions starting at 0 with the given spacing.
func UniformGrid(n int, spacing float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * spacing
	}

	return out
}

// GaussianPeak evaluates a Gaussian strain peak over x.
func GaussianPeak(x []float64, center, peak, sigma float64) []float64 {
	out := make([]float64, len(x))
	for i, pos := range x {
		d := pos - center
		out[i] = peak * math.Exp(-d*d/(2*sigma*sigma))
	}

	return out
}

// Constant returns a profile of n identical strain values.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}

	return out
}

// WithDropouts returns a copy of y with the given indices set to NaN.
func WithDropouts(y []float64, indices ...int) []float64 {
	out := make([]float64, len(y))
	copy(out, y)

	for _, i := range indices {
		if i >= 0 && i < len(out) {
			out[i] = math.NaN()
		}
	}

	return out
}
