package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps. NaN entries are treated as equal to each
// other, so expected dropout patterns can be compared directly.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if math.IsNaN(got[i]) && math.IsNaN(want[i]) {
			continue
		}

		diff := math.Abs(got[i] - want[i])
		if math.IsNaN(diff) || diff > eps {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// RequireDropoutsAt fails t unless y is NaN exactly at the given indices
// and finite everywhere else.
func RequireDropoutsAt(t *testing.T, y []float64, indices ...int) {
	t.Helper()

	expect := make(map[int]bool, len(indices))
	for _, i := range indices {
		expect[i] = true
	}

	for i, v := range y {
		switch {
		case expect[i] && !math.IsNaN(v):
			t.Fatalf("index %d: expected dropout, got %v", i, v)
		case !expect[i] && math.IsNaN(v):
			t.Fatalf("index %d: unexpected dropout", i)
		}
	}
}

// RequireAllFinite fails t if any element is NaN or Inf.
func RequireAllFinite(t *testing.T, y []float64) {
	t.Helper()

	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
