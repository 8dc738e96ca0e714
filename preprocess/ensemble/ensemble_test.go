package ensemble

import (
	"errors"
	"math"
	"testing"
)

func TestMeanIgnoresInvalid(t *testing.T) {
	x := []float64{0, 1, 2}
	y := [][]float64{
		{2, math.NaN(), 10},
		{4, math.NaN(), 20},
		{6, math.NaN(), math.NaN()},
	}

	got, err := NewMean().Run(x, y)
	if err != nil {
		t.Fatal(err)
	}

	if got[0] != 4 {
		t.Fatalf("position 0: got %v want 4", got[0])
	}

	if !math.IsNaN(got[1]) {
		t.Fatalf("all-invalid position should stay invalid, got %v", got[1])
	}

	if got[2] != 15 {
		t.Fatalf("position 2: got %v want 15", got[2])
	}
}

func TestMedianRobustToOutlier(t *testing.T) {
	x := []float64{0}
	y := [][]float64{{100}, {102}, {9000}}

	got, err := NewMedian().Run(x, y)
	if err != nil {
		t.Fatal(err)
	}

	if got[0] != 102 {
		t.Fatalf("got %v want 102", got[0])
	}
}

func TestEmptyTable(t *testing.T) {
	if _, err := NewMedian().Run([]float64{0, 1}, nil); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("got %v want ErrEmptyTable", err)
	}
}
