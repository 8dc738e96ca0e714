package mask

import (
	"math"

	"github.com/cwbudde/algo-strain/core"
)

const (
	defaultGTMDeltaMax     = 400.0
	defaultGTMForwardRange = 5
)

type gtmConfig struct {
	deltaMax     float64
	forwardRange int
	reverseSweep bool
}

// GTMOption configures the gradient threshold masker.
type GTMOption func(*gtmConfig)

// WithDeltaMax sets the maximum plausible strain gradient in strain units
// per length unit. Steeper transitions are treated as anomalies.
func WithDeltaMax(deltaMax float64) GTMOption {
	return func(cfg *gtmConfig) {
		cfg.deltaMax = deltaMax
	}
}

// WithForwardComparisonRange sets how many consecutive samples a sweep may
// reject before it accepts the level shift as genuine.
func WithForwardComparisonRange(n int) GTMOption {
	return func(cfg *gtmConfig) {
		cfg.forwardRange = n
	}
}

// WithReverseSweep toggles the additional right-to-left sweep. When active,
// a sample counts as anomalous only if both sweeps flag it, which keeps
// genuine step changes from being masked. Active by default.
func WithReverseSweep(active bool) GTMOption {
	return func(cfg *gtmConfig) {
		cfg.reverseSweep = active
	}
}

// GTM implements the gradient threshold method. Each sweep walks the profile
// keeping a reference at the last plausible sample; a sample whose gradient
// towards the reference exceeds DeltaMax is flagged, and after
// ForwardComparisonRange consecutive rejections the sweep accepts the new
// level as a genuine step.
type GTM struct {
	cfg gtmConfig
}

// NewGTM creates a gradient threshold masker.
// Defaults: DeltaMax 400, ForwardComparisonRange 5, reverse sweep active.
func NewGTM(opts ...GTMOption) (*GTM, error) {
	cfg := gtmConfig{
		deltaMax:     defaultGTMDeltaMax,
		forwardRange: defaultGTMForwardRange,
		reverseSweep: true,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.deltaMax <= 0 {
		return nil, ErrInvalidThreshold
	}

	if cfg.forwardRange < 1 {
		return nil, ErrInvalidRange
	}

	return &GTM{cfg: cfg}, nil
}

// Run masks strain reading anomalies in a single profile.
func (m *GTM) Run(x, y []float64) ([]float64, error) {
	core.MustAligned(x, y)
	core.MustAscending(x)

	if m.cfg.forwardRange >= len(y) && len(y) > 0 {
		return nil, ErrRangeTooLarge
	}

	forward := m.sweep(x, y, false)
	if !m.cfg.reverseSweep {
		return apply(y, forward), nil
	}

	backward := m.sweep(x, y, true)
	for i := range forward {
		forward[i] = forward[i] && backward[i]
	}

	return apply(y, forward), nil
}

// Run2D masks each reading of a 2-D profile independently.
func (m *GTM) Run2D(x []float64, y [][]float64) ([][]float64, error) {
	return run2D(m, x, y)
}

// sweep walks the profile in one direction and flags implausible samples.
// The sweep's first valid sample serves as the initial reference; it is
// re-checked against its first accepted successor so that a spike at the
// boundary does not escape detection just because it was scanned first.
func (m *GTM) sweep(x, y []float64, reverse bool) []bool {
	n := len(y)
	flags := make([]bool, n)

	order := make([]int, 0, n)
	if reverse {
		for i := n - 1; i >= 0; i-- {
			order = append(order, i)
		}
	} else {
		for i := range n {
			order = append(order, i)
		}
	}

	ref := -1
	firstRef := -1
	firstAccepted := -1
	pending := 0

	for _, i := range order {
		if !core.IsValid(y[i]) {
			continue
		}

		if ref < 0 {
			ref = i
			firstRef = i

			continue
		}

		grad := math.Abs(y[i]-y[ref]) / math.Abs(x[i]-x[ref])
		if grad > m.cfg.deltaMax && pending < m.cfg.forwardRange {
			flags[i] = true
			pending++

			continue
		}

		// Plausible, or the rejection window is exhausted: new reference.
		ref = i
		pending = 0

		if firstAccepted < 0 {
			firstAccepted = i
		}
	}

	// Boundary sample: the initial reference has neighbors on one side only,
	// but it still must be checked against that side.
	if firstRef >= 0 && firstAccepted >= 0 {
		grad := math.Abs(y[firstAccepted]-y[firstRef]) / math.Abs(x[firstAccepted]-x[firstRef])
		if grad > m.cfg.deltaMax {
			flags[firstRef] = true
		}
	}

	return flags
}
