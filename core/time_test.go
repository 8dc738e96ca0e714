package core

import (
	"testing"
	"time"
)

func TestRelativeSeconds(t *testing.T) {
	t0 := time.Date(2023, 4, 12, 9, 30, 0, 0, time.UTC)
	times := []time.Time{
		t0,
		t0.Add(500 * time.Millisecond),
		t0.Add(2 * time.Second),
		t0.Add(90 * time.Second),
	}

	got := RelativeSeconds(times)
	want := []float64{0, 0.5, 2, 90}

	if len(got) != len(want) {
		t.Fatalf("length: got %d want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestRelativeSecondsEmpty(t *testing.T) {
	if got := RelativeSeconds(nil); len(got) != 0 {
		t.Fatalf("got %v want empty", got)
	}
}

func TestNearestRecord(t *testing.T) {
	t0 := time.Date(2023, 4, 12, 9, 30, 0, 0, time.UTC)
	times := []time.Time{
		t0,
		t0.Add(10 * time.Second),
		t0.Add(20 * time.Second),
	}

	tests := []struct {
		query time.Time
		want  int
	}{
		{t0.Add(-5 * time.Second), 0},
		{t0.Add(4 * time.Second), 0},
		{t0.Add(6 * time.Second), 1},
		{t0.Add(5 * time.Second), 0}, // tie resolves to the earlier record
		{t0.Add(19 * time.Second), 2},
		{t0.Add(time.Hour), 2},
	}

	for _, tc := range tests {
		if got := NearestRecord(times, tc.query); got != tc.want {
			t.Fatalf("query %v: got %d want %d", tc.query, got, tc.want)
		}
	}
}

func TestNearestRecordEmpty(t *testing.T) {
	if got := NearestRecord(nil, time.Now()); got != -1 {
		t.Fatalf("got %d want -1", got)
	}
}
