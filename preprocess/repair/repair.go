// Package repair turns profiles containing dropouts into dropout-free
// profiles, either by removing the affected samples or by estimating them
// from their finite neighbors.
package repair

import (
	"errors"

	"github.com/cwbudde/algo-strain/core"
)

var (
	// ErrInsufficientData indicates too few valid samples for the scheme.
	ErrInsufficientData = errors.New("repair: insufficient valid samples")
	// ErrUnknownScheme indicates an unrecognized interpolation scheme.
	ErrUnknownScheme = errors.New("repair: unknown interpolation scheme")
)

// Repairer returns a profile free of invalid samples. Removal shortens the
// profile; interpolation preserves its length.
type Repairer interface {
	Run(x, y []float64) ([]float64, []float64, error)
}

// Remove drops every (x, y) pair whose strain sample is invalid. The output
// is shorter than the input; downstream stages must tolerate the resulting
// non-uniform spacing.
type Remove struct{}

// NewRemove creates a removal repairer.
func NewRemove() *Remove {
	return &Remove{}
}

// Run strips invalid pairs.
func (*Remove) Run(x, y []float64) ([]float64, []float64, error) {
	core.MustAligned(x, y)

	outX := make([]float64, 0, len(x))
	outY := make([]float64, 0, len(y))

	for i, v := range y {
		if core.IsValid(v) {
			outX = append(outX, x[i])
			outY = append(outY, v)
		}
	}

	return outX, outY, nil
}

// Scheme selects the estimation kernel used by Interpolate.
type Scheme int

const (
	// SchemeLinear estimates a dropout from its two enclosing valid
	// neighbors. Requires at least 2 valid samples.
	SchemeLinear Scheme = iota
	// SchemeCubic estimates a dropout with the cubic through the two
	// nearest valid neighbors on each side, evaluated at the dropout's
	// actual position (neighbor spacing around a dropout is inherently
	// non-uniform). Falls back to linear near the boundaries. Requires at
	// least 4 valid samples.
	SchemeCubic
)

// Interpolate replaces invalid samples with estimates from neighboring
// valid samples. Output length equals input length. Dropouts before the
// first or after the last valid sample are extended with the nearest valid
// value.
type Interpolate struct {
	scheme Scheme
}

// NewInterpolate creates an interpolating repairer.
func NewInterpolate(scheme Scheme) (*Interpolate, error) {
	if scheme != SchemeLinear && scheme != SchemeCubic {
		return nil, ErrUnknownScheme
	}

	return &Interpolate{scheme: scheme}, nil
}

// Run fills every dropout.
func (r *Interpolate) Run(x, y []float64) ([]float64, []float64, error) {
	core.MustAligned(x, y)
	core.MustAscending(x)

	minValid := 2
	if r.scheme == SchemeCubic {
		minValid = 4
	}

	if core.CountValid(y) < minValid {
		return nil, nil, ErrInsufficientData
	}

	out := make([]float64, len(y))
	copy(out, y)

	for i, v := range y {
		if core.IsValid(v) {
			continue
		}

		out[i] = r.estimate(x, y, i)
	}

	return x, out, nil
}

func (r *Interpolate) estimate(x, y []float64, i int) float64 {
	left, leftOK := core.NextValidNeighbor(y, i, true, 0)
	right, rightOK := core.NextValidNeighbor(y, i, false, 0)

	switch {
	case leftOK && rightOK:
		// interior dropout
	case leftOK:
		return y[left]
	case rightOK:
		return y[right]
	}

	if r.scheme == SchemeCubic {
		left2, left2OK := core.NextValidNeighbor(y, left, true, 0)
		right2, right2OK := core.NextValidNeighbor(y, right, false, 0)

		if left2OK && right2OK {
			return core.Cubic4(
				x[left2], y[left2],
				x[left], y[left],
				x[right], y[right],
				x[right2], y[right2],
				x[i])
		}
	}

	return core.Lerp(x[left], y[left], x[right], y[right], x[i])
}
