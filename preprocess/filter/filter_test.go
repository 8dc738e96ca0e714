package filter

import (
	"errors"
	"math"
	"testing"
)

func TestNewSlidingValidation(t *testing.T) {
	if _, err := NewSliding(MethodMean, -1); !errors.Is(err, ErrInvalidRadius) {
		t.Fatalf("got %v want ErrInvalidRadius", err)
	}

	if _, err := NewSliding(Method(9), 1); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("got %v want ErrUnknownMethod", err)
	}
}

func TestSlidingMean(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 10, 20, 30, 40}

	f, err := NewSliding(MethodMean, 1)
	if err != nil {
		t.Fatal(err)
	}

	got, err := f.Run(x, y)
	if err != nil {
		t.Fatal(err)
	}

	// Margins use shrunken windows.
	want := []float64{5, 10, 20, 30, 35}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestSlidingExcludesInvalidNeighbors(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{10, math.NaN(), 30}

	f, err := NewSliding(MethodMean, 1)
	if err != nil {
		t.Fatal(err)
	}

	got, err := f.Run(x, y)
	if err != nil {
		t.Fatal(err)
	}

	if got[0] != 10 {
		t.Fatalf("index 0: got %v want 10", got[0])
	}

	if !math.IsNaN(got[1]) {
		t.Fatal("invalid center sample must stay invalid")
	}

	if got[2] != 30 {
		t.Fatalf("index 2: got %v want 30", got[2])
	}
}

func TestSlidingMedianSuppressesOutlier(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{100, 100, 900, 100, 100}

	f, err := NewSliding(MethodMedian, 2)
	if err != nil {
		t.Fatal(err)
	}

	got, err := f.Run(x, y)
	if err != nil {
		t.Fatal(err)
	}

	if got[2] != 100 {
		t.Fatalf("got %v want 100", got[2])
	}
}

func TestSlidingZeroRadiusIsIdentity(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{3, 1, 4}

	f, err := NewSliding(MethodMean, 0)
	if err != nil {
		t.Fatal(err)
	}

	got, err := f.Run(x, y)
	if err != nil {
		t.Fatal(err)
	}

	for i := range y {
		if got[i] != y[i] {
			t.Fatalf("index %d changed: got %v want %v", i, got[i], y[i])
		}
	}
}

func TestLimitClamps(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{-50, 10, math.NaN(), 5000}

	f := NewLimit(WithMinimum(0), WithMaximum(1000))

	got, err := f.Run(x, y)
	if err != nil {
		t.Fatal(err)
	}

	if got[0] != 0 || got[1] != 10 || got[3] != 1000 {
		t.Fatalf("got %v", got)
	}

	if !math.IsNaN(got[2]) {
		t.Fatal("invalid sample must pass through")
	}
}

func TestNewLowpassValidation(t *testing.T) {
	if _, err := NewLowpass(0); !errors.Is(err, ErrInvalidCutoff) {
		t.Fatalf("got %v want ErrInvalidCutoff", err)
	}
}

func TestLowpassRejectsDropouts(t *testing.T) {
	f, err := NewLowpass(0.5)
	if err != nil {
		t.Fatal(err)
	}

	x := []float64{0, 1, 2}
	y := []float64{1, math.NaN(), 3}

	if _, err := f.Run(x, y); !errors.Is(err, ErrInvalidSamples) {
		t.Fatalf("got %v want ErrInvalidSamples", err)
	}
}

func TestLowpassRejectsNonUniformGrid(t *testing.T) {
	f, err := NewLowpass(0.5)
	if err != nil {
		t.Fatal(err)
	}

	x := []float64{0, 1, 3, 4}
	y := []float64{1, 2, 3, 4}

	if _, err := f.Run(x, y); !errors.Is(err, ErrNonUniform) {
		t.Fatalf("got %v want ErrNonUniform", err)
	}
}

func TestLowpassKeepsConstantSignal(t *testing.T) {
	n := 64
	x := make([]float64, n)
	y := make([]float64, n)

	for i := range x {
		x[i] = float64(i) * 0.01
		y[i] = 250.0
	}

	f, err := NewLowpass(0.1)
	if err != nil {
		t.Fatal(err)
	}

	got, err := f.Run(x, y)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range got {
		if math.Abs(v-250) > 1e-6 {
			t.Fatalf("index %d: got %v want 250", i, v)
		}
	}
}

func TestLowpassAttenuatesShortWavelengths(t *testing.T) {
	// Baseline plus a ripple far above the cutoff frequency: the ripple
	// must be strongly attenuated while the baseline survives.
	n := 256
	dx := 0.01
	x := make([]float64, n)
	y := make([]float64, n)

	for i := range x {
		x[i] = float64(i) * dx
		y[i] = 500 + 100*math.Sin(2*math.Pi*x[i]/0.04)
	}

	f, err := NewLowpass(0.4)
	if err != nil {
		t.Fatal(err)
	}

	got, err := f.Run(x, y)
	if err != nil {
		t.Fatal(err)
	}

	// Ignore the margins where padding transients live.
	for i := n / 4; i < 3*n/4; i++ {
		if math.Abs(got[i]-500) > 25 {
			t.Fatalf("index %d: ripple not attenuated, got %v", i, got[i])
		}
	}
}
