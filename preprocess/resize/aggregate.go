package resize

import (
	"github.com/cwbudde/algo-strain/core"
)

// Statistic selects how a group of samples collapses into one value.
type Statistic int

const (
	// StatisticMean averages the valid group entries.
	StatisticMean Statistic = iota
	// StatisticMedian takes the median of the valid group entries.
	StatisticMedian
)

// Aggregate collapses duplicate or near-duplicate positions (within a
// tolerance) into single samples, restoring the unique ascending-x
// invariant after overlapping gauge sections were merged.
type Aggregate struct {
	statistic Statistic
	tolerance float64
}

// NewAggregate creates an aggregator. Positions closer than tolerance are
// considered the same gauge location; a tolerance of zero collapses exact
// duplicates only.
func NewAggregate(statistic Statistic, tolerance float64) (*Aggregate, error) {
	if statistic != StatisticMean && statistic != StatisticMedian {
		return nil, ErrUnknownStatistic
	}

	if tolerance < 0 {
		return nil, ErrInvalidSpacing
	}

	return &Aggregate{statistic: statistic, tolerance: tolerance}, nil
}

// Run merges groups of near-duplicate positions. The input x must be
// non-descending (duplicates allowed); the output is strictly ascending.
func (a *Aggregate) Run(x, y []float64) ([]float64, []float64, error) {
	core.MustAligned(x, y)

	outX := make([]float64, 0, len(x))
	outY := make([]float64, 0, len(y))

	for i := 0; i < len(x); {
		j := i + 1
		for j < len(x) && x[j]-x[i] <= a.tolerance {
			j++
		}

		group := y[i:j]

		var v float64

		switch a.statistic {
		case StatisticMean:
			v = core.MeanValid(group)
		case StatisticMedian:
			v = core.MedianValid(group)
		}

		outX = append(outX, core.MeanValid(x[i:j]))
		outY = append(outY, v)

		i = j
	}

	return outX, outY, nil
}
