package core

import (
	"math"
	"testing"
)

func TestCubic4IdentityOnLinearRamp(t *testing.T) {
	for _, tc := range []struct {
		x float64
		w float64
	}{
		{x: 0.0, w: 0.0},
		{x: 0.25, w: 0.25},
		{x: 0.5, w: 0.5},
		{x: 1.0, w: 1.0},
	} {
		got := Cubic4(-1, -1, 0, 0, 1, 1, 2, 2, tc.x)
		if diff := got - tc.w; diff < -1e-12 || diff > 1e-12 {
			t.Fatalf("x=%v: got %v want %v", tc.x, got, tc.w)
		}
	}
}

func TestCubic4ExactOnNonUniformAbscissae(t *testing.T) {
	// y = x^3 - 2x through four unevenly spaced points must be recovered
	// exactly anywhere.
	f := func(x float64) float64 { return x*x*x - 2*x }

	for _, x := range []float64{0.3, 1.7, 4.0, 5.2} {
		got := Cubic4(0, f(0), 1, f(1), 4, f(4), 6, f(6), x)
		if math.Abs(got-f(x)) > 1e-9 {
			t.Fatalf("x=%v: got %v want %v", x, got, f(x))
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 2, 2, 4, 0.5); got != 2.5 {
		t.Fatalf("got %v want 2.5", got)
	}

	if got := Lerp(1, 7, 1, 9, 1); got != 7 {
		t.Fatalf("degenerate segment: got %v want 7", got)
	}
}

func TestInterpClampsOutsideKnots(t *testing.T) {
	xs := []float64{1, 2, 4}
	ys := []float64{10, 20, 40}

	got := Interp(xs, ys, []float64{0, 1, 3, 4, 5})
	want := []float64{10, 10, 30, 40, 40}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}
