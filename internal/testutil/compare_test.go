package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearlyEqualMatchesDropouts(t *testing.T) {
	a := []float64{1, math.NaN(), 3}
	b := []float64{1, math.NaN(), 3.0000001}

	RequireSliceNearlyEqual(t, a, b, 1e-6)
}

func TestWithDropouts(t *testing.T) {
	y := WithDropouts([]float64{1, 2, 3, 4}, 1, 3)

	RequireDropoutsAt(t, y, 1, 3)

	if y[0] != 1 || y[2] != 3 {
		t.Fatalf("valid samples altered: %v", y)
	}
}

func TestGaussianPeakCenter(t *testing.T) {
	x := UniformGrid(11, 0.1)
	y := GaussianPeak(x, 0.5, 800, 0.2)

	if math.Abs(y[5]-800) > 1e-9 {
		t.Fatalf("peak value: got %v want 800", y[5])
	}

	RequireAllFinite(t, y)
}
