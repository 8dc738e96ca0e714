package mask

import (
	"math"

	"github.com/cwbudde/algo-strain/core"
)

const (
	defaultZScoreThreshold = 3.0
	defaultZScoreRadius    = 10
)

type zscoreConfig struct {
	threshold float64
	radius    int
}

// ZScoreOption configures the Z-score masker.
type ZScoreOption func(*zscoreConfig)

// WithZScoreThreshold sets the score above which a sample is flagged.
func WithZScoreThreshold(threshold float64) ZScoreOption {
	return func(cfg *zscoreConfig) {
		cfg.threshold = threshold
	}
}

// WithZScoreRadius sets the window half-width; the window spans 2r+1 samples.
func WithZScoreRadius(radius int) ZScoreOption {
	return func(cfg *zscoreConfig) {
		cfg.radius = radius
	}
}

// ZScore flags samples whose deviation from the local window mean exceeds a
// multiple of the window's standard deviation. The sample under test is
// excluded from its own window statistic so that a large spike cannot
// inflate the deviation it is compared against.
type ZScore struct {
	cfg zscoreConfig
}

// NewZScore creates a Z-score masker. Defaults: threshold 3, radius 10.
func NewZScore(opts ...ZScoreOption) (*ZScore, error) {
	cfg := zscoreConfig{
		threshold: defaultZScoreThreshold,
		radius:    defaultZScoreRadius,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.threshold <= 0 {
		return nil, ErrInvalidThreshold
	}

	if cfg.radius < 1 {
		return nil, ErrInvalidRange
	}

	return &ZScore{cfg: cfg}, nil
}

// Run masks outliers in a single profile.
func (m *ZScore) Run(x, y []float64) ([]float64, error) {
	core.MustAligned(x, y)

	if 2*m.cfg.radius+1 > len(y) && len(y) > 0 {
		return nil, ErrRangeTooLarge
	}

	flags := make([]bool, len(y))

	for i, v := range y {
		if !core.IsValid(v) {
			continue
		}

		mean, std, n := windowMoments(y, i, m.cfg.radius)
		if n == 0 {
			continue
		}

		diff := math.Abs(v - mean)
		if std == 0 {
			// Perfectly flat neighborhood: any deviation is an anomaly.
			flags[i] = diff > 0

			continue
		}

		flags[i] = diff/std > m.cfg.threshold
	}

	return apply(y, flags), nil
}

// Run2D masks each reading of a 2-D profile independently.
func (m *ZScore) Run2D(x []float64, y [][]float64) ([][]float64, error) {
	return run2D(m, x, y)
}

// windowMoments returns mean and standard deviation of the valid samples in
// the window around center, excluding the center itself.
func windowMoments(y []float64, center, radius int) (mean, std float64, n int) {
	lo := max(center-radius, 0)
	hi := min(center+radius, len(y)-1)

	var sum float64

	for i := lo; i <= hi; i++ {
		if i == center || !core.IsValid(y[i]) {
			continue
		}

		sum += y[i]
		n++
	}

	if n == 0 {
		return 0, 0, 0
	}

	mean = sum / float64(n)

	var sq float64

	for i := lo; i <= hi; i++ {
		if i == center || !core.IsValid(y[i]) {
			continue
		}

		d := y[i] - mean
		sq += d * d
	}

	return mean, math.Sqrt(sq / float64(n)), n
}
