package filter

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-strain/core"
)

var (
	// ErrInvalidCutoff indicates a non-positive cutoff wavelength.
	ErrInvalidCutoff = errors.New("filter: cutoff wavelength must be positive")
	// ErrNonUniform indicates a position grid too irregular for the FFT.
	ErrNonUniform = errors.New("filter: lowpass requires uniform sample spacing")
	// ErrInvalidSamples indicates dropouts in the input; repair must run first.
	ErrInvalidSamples = errors.New("filter: lowpass requires a dropout-free profile")
)

const spacingTolerance = 1e-6

// Lowpass is a zero-phase FFT low-pass filter. Spatial frequency components
// with wavelengths shorter than the cutoff are removed entirely; unlike the
// sliding filters, it introduces no phase shift and has a sharp response.
//
// It requires a uniformly spaced, dropout-free profile.
type Lowpass struct {
	cutoff float64
}

// NewLowpass creates a low-pass filter with the given cutoff wavelength in
// length units.
func NewLowpass(cutoffWavelength float64) (*Lowpass, error) {
	if cutoffWavelength <= 0 {
		return nil, ErrInvalidCutoff
	}

	return &Lowpass{cutoff: cutoffWavelength}, nil
}

// Run filters the profile.
func (f *Lowpass) Run(x, y []float64) ([]float64, error) {
	core.MustAligned(x, y)
	core.MustAscending(x)

	if len(y) < 2 {
		out := make([]float64, len(y))
		copy(out, y)

		return out, nil
	}

	for _, v := range y {
		if !core.IsValid(v) {
			return nil, ErrInvalidSamples
		}
	}

	dx, err := uniformSpacing(x)
	if err != nil {
		return nil, err
	}

	n := len(y)
	fftSize := nextPowerOf2(2 * n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("filter: failed to create FFT plan: %w", err)
	}

	// Edge-hold padding reduces wrap-around transients at the profile ends.
	padded := make([]complex128, fftSize)
	for i := range fftSize {
		switch {
		case i < n:
			padded[i] = complex(y[i], 0)
		case i < n+(fftSize-n)/2:
			padded[i] = complex(y[n-1], 0)
		default:
			padded[i] = complex(y[0], 0)
		}
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("filter: forward FFT failed: %w", err)
	}

	// Zero every bin whose spatial frequency exceeds 1/cutoff.
	maxFreq := 1.0 / f.cutoff
	for k := range freq {
		bin := min(k, fftSize-k)

		fk := float64(bin) / (float64(fftSize) * dx)
		if fk > maxFreq {
			freq[k] = 0
		}
	}

	timeDomain := make([]complex128, fftSize)
	if err := plan.Inverse(timeDomain, freq); err != nil {
		return nil, fmt.Errorf("filter: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(timeDomain[i])
	}

	return out, nil
}

func uniformSpacing(x []float64) (float64, error) {
	dx := (x[len(x)-1] - x[0]) / float64(len(x)-1)

	for i := 1; i < len(x); i++ {
		if math.Abs((x[i]-x[i-1])-dx) > spacingTolerance*math.Max(1, math.Abs(dx)) {
			return 0, ErrNonUniform
		}
	}

	return dx, nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
