package mask

import (
	"errors"

	"github.com/cwbudde/algo-strain/core"
)

var (
	// ErrInvalidThreshold indicates a non-positive detection threshold.
	ErrInvalidThreshold = errors.New("mask: threshold must be positive")
	// ErrInvalidRange indicates a non-positive comparison range or radius.
	ErrInvalidRange = errors.New("mask: comparison range must be positive")
	// ErrRangeTooLarge indicates a window that exceeds the array length.
	ErrRangeTooLarge = errors.New("mask: comparison range exceeds array length")
)

// Masker replaces samples classified as strain reading anomalies with the
// invalid sentinel. Implementations are pure: x and valid samples are never
// modified.
type Masker interface {
	// Run masks anomalies in a single profile.
	Run(x, y []float64) ([]float64, error)
	// Run2D masks anomalies in each row of a 2-D profile independently.
	Run2D(x []float64, y [][]float64) ([][]float64, error)
}

// apply returns a copy of y with the flagged samples invalidated.
func apply(y []float64, flags []bool) []float64 {
	out := make([]float64, len(y))
	copy(out, y)

	for i, f := range flags {
		if f {
			out[i] = core.Invalid()
		}
	}

	return out
}

// run2D maps a 1-D masker row-wise over a 2-D profile.
func run2D(m Masker, x []float64, y [][]float64) ([][]float64, error) {
	out := make([][]float64, len(y))

	for i, row := range y {
		masked, err := m.Run(x, row)
		if err != nil {
			return nil, err
		}

		out[i] = masked
	}

	return out, nil
}
