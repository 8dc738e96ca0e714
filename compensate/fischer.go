package compensate

import (
	"math"

	"github.com/cwbudde/algo-strain/core"
	"github.com/cwbudde/algo-strain/crack"
)

// defaultMaxConcreteStrain is the strain the concrete bears before a
// crack opens, in µm/m.
const defaultMaxConcreteStrain = 100.0

type fischerConfig struct {
	maxConcreteStrain float64
}

// FischerOption configures a Fischer compensator.
type FischerOption func(*fischerConfig)

// WithMaxConcreteStrain caps the concrete strain the ramp reaches at the
// border of each zone of influence. Defaults to 100 µm/m.
func WithMaxConcreteStrain(strain float64) FischerOption {
	return func(cfg *fischerConfig) {
		cfg.maxConcreteStrain = strain
	}
}

// Fischer models tension stiffening for a sensor embedded in concrete.
// The concrete strain rises linearly from 0 at the crack to the limit
// strain at the border of the zone of influence, where the limit strain
// is the measured border strain capped at the maximum concrete strain.
// The baseline never exceeds the measured strain and never goes negative.
type Fischer struct {
	cfg fischerConfig
}

// NewFischer creates a Fischer compensator.
func NewFischer(opts ...FischerOption) (*Fischer, error) {
	cfg := fischerConfig{maxConcreteStrain: defaultMaxConcreteStrain}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.maxConcreteStrain <= 0 {
		return nil, ErrInvalidMaxStrain
	}

	return &Fischer{cfg: cfg}, nil
}

// Run returns the triangular baseline per crack zone. Samples outside any
// zone, and invalid samples, get a zero baseline.
func (f *Fischer) Run(x, strain []float64, list crack.List) ([]float64, error) {
	core.MustAligned(x, strain)

	out := make([]float64, len(x))

	for _, c := range list {
		left, right, ok := c.Segment()
		if !ok {
			continue
		}

		li := core.NearestIndex(x, left)
		ri := core.NearestIndex(x, right)

		limitLeft := f.limitStrain(strain[li])
		limitRight := f.limitStrain(strain[ri])

		for i := li; i <= ri; i++ {
			switch {
			case x[i] < c.Location:
				out[i] = core.Lerp(x[li], limitLeft, c.Location, 0, x[i])
			case x[i] > c.Location:
				out[i] = core.Lerp(c.Location, 0, x[ri], limitRight, x[i])
			}
		}
	}

	for i, v := range strain {
		if !core.IsValid(v) {
			out[i] = 0

			continue
		}

		out[i] = math.Max(math.Min(out[i], v), 0)
	}

	return out, nil
}

// limitStrain caps the ramp endpoint at the zone border: the measured
// border strain or the maximum concrete strain, whichever is lower. An
// invalid border sample caps at the maximum concrete strain only.
func (f *Fischer) limitStrain(border float64) float64 {
	if !core.IsValid(border) {
		return f.cfg.maxConcreteStrain
	}

	return math.Min(border, f.cfg.maxConcreteStrain)
}
