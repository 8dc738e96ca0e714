package core

import "time"

// RelativeSeconds converts record timestamps into seconds elapsed since the
// first record. An empty input yields an empty slice.
func RelativeSeconds(times []time.Time) []float64 {
	out := make([]float64, len(times))
	if len(times) == 0 {
		return out
	}

	t0 := times[0]
	for i, t := range times {
		out[i] = t.Sub(t0).Seconds()
	}

	return out
}

// NearestRecord returns the index of the record timestamp closest to t.
// Ties resolve to the earlier record. An empty input yields -1.
func NearestRecord(times []time.Time, t time.Time) int {
	if len(times) == 0 {
		return -1
	}

	best := 0
	bestDist := absDuration(t.Sub(times[0]))

	for i := 1; i < len(times); i++ {
		d := absDuration(t.Sub(times[i]))
		if d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}

	return d
}
