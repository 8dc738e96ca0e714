package compensate

import (
	"testing"

	"github.com/cwbudde/algo-strain/crack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFischerValidation(t *testing.T) {
	_, err := NewFischer(WithMaxConcreteStrain(0))
	assert.ErrorIs(t, err, ErrInvalidMaxStrain)
}

func TestFischerTriangularBaseline(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	strain := []float64{200, 400, 800, 400, 200}

	list := crack.List{{
		Index:    2,
		Location: 2,
		Left:     crack.Some(0),
		Right:    crack.Some(4),
	}}

	f, err := NewFischer()
	require.NoError(t, err)

	out, err := f.Run(x, strain, list)
	require.NoError(t, err)

	// ramp from 0 at the crack to 100 at the zone borders
	assert.InDelta(t, 100, out[0], 1e-12)
	assert.InDelta(t, 50, out[1], 1e-12)
	assert.InDelta(t, 0, out[2], 1e-12)
	assert.InDelta(t, 50, out[3], 1e-12)
	assert.InDelta(t, 100, out[4], 1e-12)
}

func TestFischerBorderStrainCapsRamp(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	strain := []float64{30, 400, 800, 400, 30}

	list := crack.List{{
		Index:    2,
		Location: 2,
		Left:     crack.Some(0),
		Right:    crack.Some(4),
	}}

	f, err := NewFischer()
	require.NoError(t, err)

	out, err := f.Run(x, strain, list)
	require.NoError(t, err)

	// the border strain 30 is below the maximum concrete strain, so the
	// whole ramp is a straight line from 0 at the crack to 30 at the
	// borders, not a per-sample clipped one
	want := []float64{30, 15, 0, 15, 30}
	for i := range want {
		assert.InDelta(t, want[i], out[i], 1e-12, "sample %d", i)
	}
}

func TestFischerOutsideZonesIsZero(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6}
	strain := []float64{100, 100, 400, 800, 400, 100, 100}

	list := crack.List{{
		Index:    3,
		Location: 3,
		Left:     crack.Some(2),
		Right:    crack.Some(4),
	}}

	f, err := NewFischer()
	require.NoError(t, err)

	out, err := f.Run(x, strain, list)
	require.NoError(t, err)

	assert.Zero(t, out[0])
	assert.Zero(t, out[1])
	assert.Zero(t, out[5])
	assert.Zero(t, out[6])
}

func TestNewBerrocalValidation(t *testing.T) {
	_, err := NewBerrocal(0, 0.05)
	assert.ErrorIs(t, err, ErrInvalidRatio)

	_, err = NewBerrocal(7, -1)
	assert.ErrorIs(t, err, ErrInvalidRatio)
}

func TestBerrocalPeakInterpolationGap(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	strain := []float64{500, 800, 200, 600, 300}

	list := crack.List{
		{Index: 1, Location: 1, MaxStrain: 800},
		{Index: 3, Location: 3, MaxStrain: 600},
	}

	b, err := NewBerrocal(7, 0.05)
	require.NoError(t, err)

	out, err := b.Run(x, strain, list)
	require.NoError(t, err)

	// envelope is held constant beyond the outermost cracks:
	// 800, 800, 700, 600, 600
	want := []float64{105, 0, 175, 0, 105}
	for i := range want {
		assert.InDelta(t, want[i], out[i], 1e-9, "sample %d", i)
	}
}

func TestBerrocalClipsNegativeBaseline(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	// middle sample rises above the peak envelope
	strain := []float64{800, 700, 900, 600}

	list := crack.List{
		{Index: 0, Location: 0, MaxStrain: 800},
		{Index: 3, Location: 3, MaxStrain: 600},
	}

	b, err := NewBerrocal(7, 0.05)
	require.NoError(t, err)

	out, err := b.Run(x, strain, list)
	require.NoError(t, err)

	assert.Zero(t, out[2])
	assert.GreaterOrEqual(t, out[1], 0.0)
}

func TestBerrocalSingleCrackConstantEnvelope(t *testing.T) {
	x := []float64{0, 1, 2}
	strain := []float64{500, 800, 200}

	list := crack.List{{Index: 1, Location: 1, MaxStrain: 800}}

	b, err := NewBerrocal(7, 0.05)
	require.NoError(t, err)

	out, err := b.Run(x, strain, list)
	require.NoError(t, err)

	// constant envelope at the single peak strain
	want := []float64{105, 0, 210}
	for i := range want {
		assert.InDelta(t, want[i], out[i], 1e-9, "sample %d", i)
	}
}

func TestBerrocalEmptyListIsZeroBaseline(t *testing.T) {
	b, err := NewBerrocal(7, 0.05)
	require.NoError(t, err)

	out, err := b.Run([]float64{0, 1}, []float64{100, 200}, nil)
	require.NoError(t, err)

	for i, v := range out {
		assert.Zero(t, v, "sample %d", i)
	}
}

func TestShrinkConstantBaseline(t *testing.T) {
	xInst := []float64{0, 1, 2, 3, 4}
	strainInst := []float64{500, 100, 600, 200, 700}

	s, err := NewShrink(xInst, strainInst)
	require.NoError(t, err)

	x := []float64{0, 1, 2, 3, 4}
	strain := []float64{520, 130, 640, 210, 740}

	out, err := s.Run(x, strain)
	require.NoError(t, err)
	require.Len(t, out, len(x))

	// drifts at the reference minima are 30 and 10
	for i := range out {
		assert.InDelta(t, 20, out[i], 1e-12)
	}
}

func TestShrinkNoMinima(t *testing.T) {
	s, err := NewShrink([]float64{0, 1, 2}, []float64{100, 200, 300})
	require.NoError(t, err)

	_, err = s.Run([]float64{0, 1, 2}, []float64{100, 200, 300})
	assert.ErrorIs(t, err, ErrNoMinima)
}
