package compensate

import (
	"github.com/cwbudde/algo-strain/core"
)

// Shrink calibrates out concrete shrinkage and creep. The calibration
// constant is derived from the local minima of an instantaneous-load
// reference profile: at each minimum the drift between the current strain
// and the reference strain is measured, and the mean drift becomes a
// constant baseline over the whole profile.
//
// Minima are used because between cracks the strain is dominated by the
// intact material, so any change there since the reference measurement is
// shrinkage or creep, not crack opening.
type Shrink struct {
	xInst      []float64
	strainInst []float64
}

// NewShrink creates a shrink compensator from the instantaneous-load
// reference profile.
func NewShrink(xInst, strainInst []float64) (*Shrink, error) {
	core.MustAligned(xInst, strainInst)

	return &Shrink{
		xInst:      append([]float64(nil), xInst...),
		strainInst: append([]float64(nil), strainInst...),
	}, nil
}

// Run returns the constant calibration baseline, one value per sample of
// x. It fails if the reference profile has no local minima to calibrate
// against.
func (s *Shrink) Run(x, strain []float64) ([]float64, error) {
	core.MustAligned(x, strain)

	minima := localMinima(s.strainInst)
	if len(minima) == 0 {
		return nil, ErrNoMinima
	}

	diffs := make([]float64, 0, len(minima))

	for _, m := range minima {
		i := core.NearestIndex(x, s.xInst[m])
		if i < 0 || !core.IsValid(strain[i]) {
			continue
		}

		diffs = append(diffs, strain[i]-s.strainInst[m])
	}

	if len(diffs) == 0 {
		return nil, ErrNoMinima
	}

	mean := core.MeanValid(diffs)

	out := make([]float64, len(x))
	for i := range out {
		out[i] = mean
	}

	return out, nil
}

// localMinima returns the indices of strict local minima; a flat valley
// counts once, at its middle sample.
func localMinima(y []float64) []int {
	var minima []int

	i := 1
	iMax := len(y) - 1

	for i < iMax {
		if core.IsValid(y[i]) && y[i-1] > y[i] {
			ahead := i + 1
			for ahead < iMax && y[ahead] == y[i] {
				ahead++
			}

			if y[ahead] > y[i] {
				minima = append(minima, (i+ahead-1)/2)
				i = ahead
				continue
			}
		}

		i++
	}

	return minima
}
