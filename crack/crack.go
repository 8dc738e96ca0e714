// Package crack models cracks detected in a strain profile: the record
// type with its explicit optional attributes, the ordered crack list, peak
// detection and zone-of-influence separation.
package crack

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-strain/core"
)

// OptFloat is an explicitly optional float64 attribute. The zero value is
// unset.
type OptFloat struct {
	value float64
	set   bool
}

// Some returns a set OptFloat holding v.
func Some(v float64) OptFloat {
	return OptFloat{value: v, set: true}
}

// Get returns the value and whether it is set.
func (o OptFloat) Get() (float64, bool) {
	return o.value, o.set
}

// IsSet reports whether the attribute holds a value.
func (o OptFloat) IsSet() bool {
	return o.set
}

// Or returns the value if set, otherwise the fallback.
func (o OptFloat) Or(fallback float64) float64 {
	if o.set {
		return o.value
	}

	return fallback
}

// Crack is one crack in the monitored member. Location, Index and
// MaxStrain are always present once a crack exists; the zone bounds and
// the width are filled in by separation and integration and are optional
// until then.
type Crack struct {
	// Index is the sample index of the peak in the profile's x array.
	Index int
	// Location is the position of the peak along the sensor.
	Location float64
	// MaxStrain is the strain at the peak.
	MaxStrain float64
	// Left and Right delimit the crack's zone of influence.
	Left  OptFloat
	Right OptFloat
	// Width is the integrated crack opening over the zone.
	Width OptFloat
}

// TransferLength returns the extent of the zone of influence. The second
// return value is false while either bound is unset.
func (c Crack) TransferLength() (float64, bool) {
	l, lok := c.Left.Get()
	r, rok := c.Right.Get()

	if !lok || !rok {
		return 0, false
	}

	return r - l, true
}

// DistanceLeft returns the distance from the peak to the left bound.
func (c Crack) DistanceLeft() (float64, bool) {
	l, ok := c.Left.Get()
	if !ok {
		return 0, false
	}

	return c.Location - l, true
}

// DistanceRight returns the distance from the peak to the right bound.
func (c Crack) DistanceRight() (float64, bool) {
	r, ok := c.Right.Get()
	if !ok {
		return 0, false
	}

	return r - c.Location, true
}

// Segment returns the zone of influence as an interval.
func (c Crack) Segment() (left, right float64, ok bool) {
	l, lok := c.Left.Get()
	r, rok := c.Right.Get()

	if !lok || !rok {
		return 0, 0, false
	}

	return l, r, true
}

// List is an ordered collection of cracks. All operations assume ascending
// location order; Sort restores it after manual edits.
type List []Crack

// Sort orders the list by ascending location. The sort is stable so
// cracks snapped to the same sample keep their insertion order.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Location < l[j].Location
	})
}

// Locations returns the crack positions aligned with the list order.
func (l List) Locations() []float64 {
	out := make([]float64, len(l))
	for i, c := range l {
		out[i] = c.Location
	}

	return out
}

// MaxStrains returns the peak strains aligned with the list order.
func (l List) MaxStrains() []float64 {
	out := make([]float64, len(l))
	for i, c := range l {
		out[i] = c.MaxStrain
	}

	return out
}

// Widths returns the crack widths aligned with the list order. Unset
// widths report as NaN.
func (l List) Widths() []float64 {
	out := make([]float64, len(l))
	for i, c := range l {
		out[i] = c.Width.Or(core.Invalid())
	}

	return out
}

// LeftBounds returns the left zone bounds, NaN where unset.
func (l List) LeftBounds() []float64 {
	out := make([]float64, len(l))
	for i, c := range l {
		out[i] = c.Left.Or(core.Invalid())
	}

	return out
}

// RightBounds returns the right zone bounds, NaN where unset.
func (l List) RightBounds() []float64 {
	out := make([]float64, len(l))
	for i, c := range l {
		out[i] = c.Right.Or(core.Invalid())
	}

	return out
}

// NearestTo returns the index of the crack closest to the query position.
// On an exact midpoint tie the lower index wins. Returns false for an
// empty list.
func (l List) NearestTo(x float64) (int, bool) {
	if len(l) == 0 {
		return 0, false
	}

	best := 0
	bestDist := math.Abs(l[0].Location - x)

	for i := 1; i < len(l); i++ {
		d := math.Abs(l[i].Location - x)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best, true
}

// ByZone returns the index of the crack whose zone of influence contains
// the query position, using the half-open convention left < x <= right.
// Returns false if no zone contains x or bounds are unset.
func (l List) ByZone(x float64) (int, bool) {
	for i, c := range l {
		left, right, ok := c.Segment()
		if ok && left < x && x <= right {
			return i, true
		}
	}

	return 0, false
}

// mustSeparated panics if any two adjacent zones overlap. Overlap after
// separation is a bug in the separation step, not bad input.
func (l List) mustSeparated() {
	for i := 1; i < len(l); i++ {
		r, rok := l[i-1].Right.Get()
		left, lok := l[i].Left.Get()

		if rok && lok && r > left {
			panic("crack: adjacent zones overlap after separation")
		}
	}
}
