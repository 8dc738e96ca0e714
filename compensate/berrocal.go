package compensate

import (
	"github.com/cwbudde/algo-strain/core"
	"github.com/cwbudde/algo-strain/crack"
	"github.com/cwbudde/algo-vecmath"
)

// Berrocal models tension stiffening for a sensor attached to a
// reinforcement rebar. The baseline is the gap between the piecewise
// linear interpolation through the strain peaks and the measured strain,
// reduced by the Young's moduli ratio alpha and the reinforcement ratio
// rho. Outside the outermost cracks the envelope stays constant at the
// outermost peak strain; a single crack yields a constant envelope.
type Berrocal struct {
	alpha float64
	rho   float64
}

// NewBerrocal creates a Berrocal compensator. alpha is the ratio of the
// Young's moduli of steel to concrete, rho the reinforcement ratio.
func NewBerrocal(alpha, rho float64) (*Berrocal, error) {
	if alpha <= 0 || rho <= 0 {
		return nil, ErrInvalidRatio
	}

	return &Berrocal{alpha: alpha, rho: rho}, nil
}

// Run returns rho*alpha*(peak interpolation - strain), clipped to be
// non-negative so compensation never adds strain. An empty crack list
// yields an all-zero baseline.
func (b *Berrocal) Run(x, strain []float64, list crack.List) ([]float64, error) {
	core.MustAligned(x, strain)

	if len(list) == 0 {
		return make([]float64, len(strain)), nil
	}

	hat := peakEnvelope(x, list)

	out := make([]float64, len(strain))
	vecmath.ScaleBlock(out, strain, -1)
	vecmath.AddBlockInPlace(out, hat)

	scaled := make([]float64, len(out))
	vecmath.ScaleBlock(scaled, out, b.alpha*b.rho)

	for i, v := range scaled {
		if v < 0 {
			scaled[i] = 0
		}
	}

	return scaled, nil
}

// peakEnvelope evaluates the piecewise linear interpolation through the
// (location, peak strain) pairs at every sample, held constant at the
// outermost peak strain beyond the outermost cracks.
func peakEnvelope(x []float64, list crack.List) []float64 {
	locs := make([]float64, len(list))
	peaks := make([]float64, len(list))

	for i, c := range list {
		locs[i] = c.Location
		peaks[i] = c.MaxStrain
	}

	return core.Interp(locs, peaks, x)
}
