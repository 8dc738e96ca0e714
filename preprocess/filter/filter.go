// Package filter smooths conditioned strain profiles.
//
// Three interchangeable filters are provided: a sliding-window statistic
// (mean or median) that excludes invalid neighbors instead of zero-filling
// them, a value limiter used for clamping (e.g. compression suppression),
// and an FFT-based zero-phase low-pass for uniformly sampled profiles.
//
// Over-filtering (a radius or cutoff large relative to the feature scale)
// smears crack peaks; that is a usage concern, not an error.
package filter

import (
	"errors"

	"github.com/cwbudde/algo-strain/core"
)

var (
	// ErrInvalidRadius indicates a negative window radius.
	ErrInvalidRadius = errors.New("filter: radius must not be negative")
	// ErrUnknownMethod indicates an unrecognized window statistic.
	ErrUnknownMethod = errors.New("filter: unknown method")
)

// Filter smooths the strain values of a profile. The position array and the
// profile length stay untouched.
type Filter interface {
	Run(x, y []float64) ([]float64, error)
}

// Method selects the sliding-window statistic.
type Method int

const (
	// MethodMean averages the valid window entries.
	MethodMean Method = iota
	// MethodMedian takes the median of the valid window entries.
	MethodMedian
)

// Sliding applies a window statistic of half-width radius to every sample.
// Windows shrink at the array margins, and invalid entries are excluded
// from the statistic. An invalid center sample stays invalid: smoothing
// never repairs dropouts, that is the repair stage's job.
type Sliding struct {
	method Method
	radius int
}

// NewSliding creates a sliding-window filter. A radius of zero yields the
// identity filter.
func NewSliding(method Method, radius int) (*Sliding, error) {
	if radius < 0 {
		return nil, ErrInvalidRadius
	}

	if method != MethodMean && method != MethodMedian {
		return nil, ErrUnknownMethod
	}

	return &Sliding{method: method, radius: radius}, nil
}

// Run smooths the profile.
func (f *Sliding) Run(x, y []float64) ([]float64, error) {
	core.MustAligned(x, y)

	out := make([]float64, len(y))
	if f.radius == 0 {
		copy(out, y)

		return out, nil
	}

	for i, v := range y {
		if !core.IsValid(v) {
			out[i] = core.Invalid()

			continue
		}

		lo := max(i-f.radius, 0)
		hi := min(i+f.radius, len(y)-1)
		window := y[lo : hi+1]

		switch f.method {
		case MethodMean:
			out[i] = core.MeanValid(window)
		case MethodMedian:
			out[i] = core.MedianValid(window)
		}
	}

	return out, nil
}
