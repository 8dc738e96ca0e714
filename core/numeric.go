package core

import (
	"math"
	"sort"
)

// Invalid returns the sentinel marking dropouts and masked samples.
func Invalid() float64 {
	return math.NaN()
}

// IsValid reports whether v is a usable sample (finite, not a dropout).
func IsValid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CountValid returns the number of valid samples in y.
func CountValid(y []float64) int {
	n := 0
	for _, v := range y {
		if IsValid(v) {
			n++
		}
	}

	return n
}

// IsAscending reports whether x is strictly ascending.
func IsAscending(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return false
		}
	}

	return true
}

// MustAligned panics if x and y differ in length.
// Length mismatch after a processing stage is a programming error,
// not a data error.
func MustAligned(x, y []float64) {
	if len(x) != len(y) {
		panic("core: x/y length mismatch")
	}
}

// MustAscending panics if x is not strictly ascending.
func MustAscending(x []float64) {
	if !IsAscending(x) {
		panic("core: x is not strictly ascending")
	}
}

// NearestIndex returns the index of the entry in the ascending array x that
// is closest to v. When v is equidistant to two neighbors, the lower index
// wins. An empty array yields -1.
func NearestIndex(x []float64, v float64) int {
	if len(x) == 0 {
		return -1
	}

	i := sort.SearchFloat64s(x, v)
	switch {
	case i == 0:
		return 0
	case i == len(x):
		return len(x) - 1
	}

	distLeft := math.Abs(v - x[i-1])
	distRight := math.Abs(x[i] - v)
	if distRight < distLeft {
		return i
	}

	return i - 1
}

// NextValidNeighbor searches outward from index for the nearest valid sample
// in y. It steps left when toLeft is set, right otherwise, and gives up after
// maxSteps samples (maxSteps <= 0 means unbounded). The second return value
// reports whether a valid neighbor was found.
func NextValidNeighbor(y []float64, index int, toLeft bool, maxSteps int) (int, bool) {
	step := 1
	if toLeft {
		step = -1
	}

	for i, taken := index+step, 1; i >= 0 && i < len(y); i, taken = i+step, taken+1 {
		if maxSteps > 0 && taken > maxSteps {
			break
		}

		if IsValid(y[i]) {
			return i, true
		}
	}

	return 0, false
}

// MeanValid returns the arithmetic mean of the valid samples in y.
// If no sample is valid, the invalid sentinel is returned.
func MeanValid(y []float64) float64 {
	var sum float64

	n := 0

	for _, v := range y {
		if IsValid(v) {
			sum += v
			n++
		}
	}

	if n == 0 {
		return Invalid()
	}

	return sum / float64(n)
}

// MedianValid returns the median of the valid samples in y.
// If no sample is valid, the invalid sentinel is returned.
func MedianValid(y []float64) float64 {
	valid := make([]float64, 0, len(y))

	for _, v := range y {
		if IsValid(v) {
			valid = append(valid, v)
		}
	}

	if len(valid) == 0 {
		return Invalid()
	}

	sort.Float64s(valid)

	mid := len(valid) / 2
	if len(valid)%2 == 1 {
		return valid[mid]
	}

	return 0.5 * (valid[mid-1] + valid[mid])
}
