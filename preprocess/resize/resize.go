// Package resize changes the spatial extent or resolution of a profile:
// cropping to a measurement area, collapsing duplicate positions,
// decimating, and re-gridding onto a uniform spacing.
//
// Every operation preserves the strictly ascending, unique-x invariant on
// its output.
package resize

import (
	"errors"
)

var (
	// ErrEmptyRange indicates a crop window containing no samples.
	ErrEmptyRange = errors.New("resize: no samples in crop range")
	// ErrNoValidData indicates a crop window containing only dropouts.
	ErrNoValidData = errors.New("resize: no valid samples in crop range")
	// ErrInvalidWindow indicates a crop window with start >= end.
	ErrInvalidWindow = errors.New("resize: start position must be before end position")
	// ErrInvalidSpacing indicates a non-positive target spacing or step.
	ErrInvalidSpacing = errors.New("resize: spacing must be positive")
	// ErrInsufficientData indicates too few valid samples to resample.
	ErrInsufficientData = errors.New("resize: insufficient valid samples")
	// ErrUnknownStatistic indicates an unrecognized group statistic.
	ErrUnknownStatistic = errors.New("resize: unknown statistic")
)

// Resizer transforms both the position and strain arrays of a profile.
type Resizer interface {
	Run(x, y []float64) ([]float64, []float64, error)
}
