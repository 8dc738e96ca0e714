package mask

import (
	"math"

	"github.com/cwbudde/algo-strain/core"
)

const (
	defaultOSCPDeviationMax = 200.0
	defaultOSCPRadius       = 5
)

type oscpConfig struct {
	deviationMax float64
	radius       int
}

// OSCPOption configures the outlier segment comparison masker.
type OSCPOption func(*oscpConfig)

// WithDeviationMax sets the maximum plausible deviation, in strain units,
// of a sample from its segment median.
func WithDeviationMax(deviationMax float64) OSCPOption {
	return func(cfg *oscpConfig) {
		cfg.deviationMax = deviationMax
	}
}

// WithOSCPRadius sets the segment half-width; the segment spans 2r+1 samples.
func WithOSCPRadius(radius int) OSCPOption {
	return func(cfg *oscpConfig) {
		cfg.radius = radius
	}
}

// OSCP implements outlier segment comparison: each sample is compared
// against the median of its local segment. The median is robust against the
// spike itself, so no exclusion of the center sample is needed.
type OSCP struct {
	cfg oscpConfig
}

// NewOSCP creates an outlier segment comparison masker.
// Defaults: DeviationMax 200, radius 5.
func NewOSCP(opts ...OSCPOption) (*OSCP, error) {
	cfg := oscpConfig{
		deviationMax: defaultOSCPDeviationMax,
		radius:       defaultOSCPRadius,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.deviationMax <= 0 {
		return nil, ErrInvalidThreshold
	}

	if cfg.radius < 1 {
		return nil, ErrInvalidRange
	}

	return &OSCP{cfg: cfg}, nil
}

// Run masks outliers in a single profile.
func (m *OSCP) Run(x, y []float64) ([]float64, error) {
	core.MustAligned(x, y)

	if 2*m.cfg.radius+1 > len(y) && len(y) > 0 {
		return nil, ErrRangeTooLarge
	}

	flags := make([]bool, len(y))

	for i, v := range y {
		if !core.IsValid(v) {
			continue
		}

		lo := max(i-m.cfg.radius, 0)
		hi := min(i+m.cfg.radius, len(y)-1)

		median := core.MedianValid(y[lo : hi+1])
		if !core.IsValid(median) {
			continue
		}

		flags[i] = math.Abs(v-median) > m.cfg.deviationMax
	}

	return apply(y, flags), nil
}

// Run2D masks each reading of a 2-D profile independently.
func (m *OSCP) Run2D(x []float64, y [][]float64) ([][]float64, error) {
	return run2D(m, x, y)
}
