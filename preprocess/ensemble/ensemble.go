// Package ensemble reduces multiple simultaneous strain readings per
// position (a 2-D strain table) to a single representative profile.
//
// Both reducers ignore invalid samples; a position where every reading is
// invalid stays invalid. The median is the preferred default because it is
// robust against residual outliers that survived masking.
package ensemble

import (
	"errors"

	"github.com/cwbudde/algo-strain/core"
)

// ErrEmptyTable indicates a strain table with no readings.
var ErrEmptyTable = errors.New("ensemble: strain table is empty")

// Reducer collapses a 2-D strain table into one profile.
type Reducer interface {
	Run(x []float64, y [][]float64) ([]float64, error)
}

// Mean reduces each position to the arithmetic mean of its valid readings.
type Mean struct{}

// NewMean creates a mean reducer.
func NewMean() *Mean {
	return &Mean{}
}

// Run reduces the table column-wise.
func (*Mean) Run(x []float64, y [][]float64) ([]float64, error) {
	return reduce(x, y, core.MeanValid)
}

// Median reduces each position to the median of its valid readings.
type Median struct{}

// NewMedian creates a median reducer.
func NewMedian() *Median {
	return &Median{}
}

// Run reduces the table column-wise.
func (*Median) Run(x []float64, y [][]float64) ([]float64, error) {
	return reduce(x, y, core.MedianValid)
}

func reduce(x []float64, y [][]float64, statistic func([]float64) float64) ([]float64, error) {
	if len(y) == 0 {
		return nil, ErrEmptyTable
	}

	for _, row := range y {
		core.MustAligned(x, row)
	}

	out := make([]float64, len(x))
	column := make([]float64, len(y))

	for i := range x {
		for j, row := range y {
			column[j] = row[i]
		}

		out[i] = statistic(column)
	}

	return out, nil
}
