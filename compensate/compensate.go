// Package compensate computes baseline strain curves that do not
// contribute to crack opening and are subtracted from the measured strain
// before integration: tension stiffening of the intact material between
// cracks, and shrinkage/creep calibration against an instantaneous-load
// reference profile.
//
// The tension stiffening models are pluggable strategies behind the
// Compensator interface; the profile workflow selects one at
// configuration time.
package compensate

import (
	"errors"

	"github.com/cwbudde/algo-strain/crack"
)

var (
	// ErrInvalidMaxStrain indicates a non-positive maximum concrete strain.
	ErrInvalidMaxStrain = errors.New("compensate: maximum concrete strain must be positive")
	// ErrInvalidRatio indicates a non-positive material or reinforcement ratio.
	ErrInvalidRatio = errors.New("compensate: ratio must be positive")
	// ErrNoMinima indicates a reference profile without local minima.
	ErrNoMinima = errors.New("compensate: no local minima in reference profile")
)

// Compensator maps a strain profile and its crack zones to a baseline
// array, one value per sample, that is subtracted from the strain before
// crack widths are integrated.
type Compensator interface {
	Run(x, strain []float64, list crack.List) ([]float64, error)
}
