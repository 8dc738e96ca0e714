package filter

import (
	"math"

	"github.com/cwbudde/algo-strain/core"
)

type limitConfig struct {
	minimum float64
	maximum float64
}

// LimitOption configures a Limit filter.
type LimitOption func(*limitConfig)

// WithMinimum clamps samples below the given value.
func WithMinimum(minimum float64) LimitOption {
	return func(cfg *limitConfig) {
		cfg.minimum = minimum
	}
}

// WithMaximum clamps samples above the given value.
func WithMaximum(maximum float64) LimitOption {
	return func(cfg *limitConfig) {
		cfg.maximum = maximum
	}
}

// Limit truncates samples to a configured range. Without options it is the
// identity filter; invalid samples pass through untouched.
type Limit struct {
	cfg limitConfig
}

// NewLimit creates a limiter.
func NewLimit(opts ...LimitOption) *Limit {
	cfg := limitConfig{
		minimum: math.Inf(-1),
		maximum: math.Inf(1),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Limit{cfg: cfg}
}

// Run clamps the valid samples.
func (f *Limit) Run(x, y []float64) ([]float64, error) {
	core.MustAligned(x, y)

	out := make([]float64, len(y))

	for i, v := range y {
		if !core.IsValid(v) {
			out[i] = v

			continue
		}

		out[i] = math.Min(math.Max(v, f.cfg.minimum), f.cfg.maximum)
	}

	return out, nil
}
