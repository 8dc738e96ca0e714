package resize

import (
	"github.com/cwbudde/algo-strain/core"
)

// Downsample reduces the spatial resolution by decimation: every step-th
// sample is kept, with the window statistic of its neighborhood as value.
type Downsample struct {
	statistic Statistic
	step      int
	radius    int
}

// NewDownsample creates a decimating resizer. step is the index stride
// between kept samples; radius is the aggregation half-width around each
// kept sample (0 keeps the raw sample value).
func NewDownsample(statistic Statistic, step, radius int) (*Downsample, error) {
	if statistic != StatisticMean && statistic != StatisticMedian {
		return nil, ErrUnknownStatistic
	}

	if step < 1 {
		return nil, ErrInvalidSpacing
	}

	if radius < 0 {
		return nil, ErrInvalidSpacing
	}

	return &Downsample{statistic: statistic, step: step, radius: radius}, nil
}

// Run decimates the profile.
func (d *Downsample) Run(x, y []float64) ([]float64, []float64, error) {
	core.MustAligned(x, y)
	core.MustAscending(x)

	outX := make([]float64, 0, len(x)/d.step+1)
	outY := make([]float64, 0, len(y)/d.step+1)

	for i := 0; i < len(x); i += d.step {
		lo := max(i-d.radius, 0)
		hi := min(i+d.radius, len(y)-1)
		window := y[lo : hi+1]

		var v float64

		switch d.statistic {
		case StatisticMean:
			v = core.MeanValid(window)
		case StatisticMedian:
			v = core.MedianValid(window)
		}

		outX = append(outX, x[i])
		outY = append(outY, v)
	}

	return outX, outY, nil
}

// Resample re-grids the profile onto a uniform target spacing via
// interpolation over the valid samples. Dropouts are skipped as knots, so
// the output is dropout-free.
type Resample struct {
	spacing float64
}

// NewResample creates an interpolating resizer with the given target
// spacing in length units.
func NewResample(spacing float64) (*Resample, error) {
	if spacing <= 0 {
		return nil, ErrInvalidSpacing
	}

	return &Resample{spacing: spacing}, nil
}

// Run evaluates the profile on a uniform grid spanning the original range.
// At least two valid samples are required.
func (r *Resample) Run(x, y []float64) ([]float64, []float64, error) {
	core.MustAligned(x, y)
	core.MustAscending(x)

	knotsX := make([]float64, 0, len(x))
	knotsY := make([]float64, 0, len(y))

	for i, v := range y {
		if core.IsValid(v) {
			knotsX = append(knotsX, x[i])
			knotsY = append(knotsY, v)
		}
	}

	if len(knotsX) < 2 {
		return nil, nil, ErrInsufficientData
	}

	span := knotsX[len(knotsX)-1] - knotsX[0]
	n := int(span/r.spacing) + 1

	outX := make([]float64, n)
	for i := range outX {
		outX[i] = knotsX[0] + float64(i)*r.spacing
	}

	outY := core.Interp(knotsX, knotsY, outX)

	return outX, outY, nil
}
