package crack

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-strain/core"
)

var (
	// ErrInvalidThreshold indicates a non-positive strain threshold.
	ErrInvalidThreshold = errors.New("crack: strain threshold must be positive")
	// ErrInvalidHalfLength indicates a non-positive maximum half-length.
	ErrInvalidHalfLength = errors.New("crack: maximum half-length must be positive")
)

// SplitMode selects where the boundary between two adjacent zones is
// placed.
type SplitMode int

const (
	// SplitMinimum places the boundary at the local strain minimum
	// between two peaks (leftmost sample on ties). Falls back to the
	// midpoint when the valley has no distinct minimum.
	SplitMinimum SplitMode = iota
	// SplitMiddle places the boundary at the midpoint between two peaks.
	SplitMiddle
)

// ResetMode controls whether bounds already present on the cracks (for
// example the finder's valley bases) are kept or discarded before
// separation.
type ResetMode int

const (
	// ResetNone keeps all pre-assigned bounds.
	ResetNone ResetMode = iota
	// ResetInner discards all bounds except the outermost cracks' outer
	// bounds.
	ResetInner
	// ResetAll discards every pre-assigned bound.
	ResetAll
)

// defaultMaxHalfLength caps each zone's reach on either side of the peak,
// in length units.
const defaultMaxHalfLength = 0.2

type separatorConfig struct {
	split         SplitMode
	reset         ResetMode
	threshold     float64
	useThreshold  bool
	maxHalfLength float64
}

func defaultSeparatorConfig() separatorConfig {
	return separatorConfig{
		split:         SplitMinimum,
		reset:         ResetNone,
		maxHalfLength: defaultMaxHalfLength,
	}
}

// SeparatorOption configures a Separator.
type SeparatorOption func(*separatorConfig)

// WithSplitMode sets the boundary placement between adjacent zones.
// Defaults to SplitMinimum.
func WithSplitMode(mode SplitMode) SeparatorOption {
	return func(cfg *separatorConfig) {
		cfg.split = mode
	}
}

// WithResetMode sets the handling of pre-assigned bounds. Defaults to
// ResetNone.
func WithResetMode(mode ResetMode) SeparatorOption {
	return func(cfg *separatorConfig) {
		cfg.reset = mode
	}
}

// WithThreshold additionally limits each zone at the nearest sample where
// the strain falls to or below the given value. Disabled by default.
func WithThreshold(threshold float64) SeparatorOption {
	return func(cfg *separatorConfig) {
		cfg.threshold = threshold
		cfg.useThreshold = true
	}
}

// WithMaxHalfLength sets the fixed cap on each zone's reach from the
// peak. Defaults to 0.2 length units; pass math.Inf(1) to disable.
func WithMaxHalfLength(length float64) SeparatorOption {
	return func(cfg *separatorConfig) {
		cfg.maxHalfLength = length
	}
}

// Separator assigns each crack its zone of influence. All configured
// limits apply together and the tightest one wins, so the resulting zone
// is the intersection of every limit's interval.
type Separator struct {
	cfg separatorConfig
}

// NewSeparator creates a zone separator.
func NewSeparator(opts ...SeparatorOption) (*Separator, error) {
	cfg := defaultSeparatorConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.useThreshold && cfg.threshold <= 0 {
		return nil, ErrInvalidThreshold
	}

	if cfg.maxHalfLength <= 0 {
		return nil, ErrInvalidHalfLength
	}

	return &Separator{cfg: cfg}, nil
}

// Run assigns zone bounds to every crack in the list, in ascending
// location order, and returns the updated list. Bounds are clamped to the
// extent of x. Adjacent zones are guaranteed not to overlap; a violation
// after separation is a bug and panics.
func (s *Separator) Run(x, strain []float64, list List) List {
	core.MustAligned(x, strain)
	core.MustAscending(x)

	if len(list) == 0 || len(x) == 0 {
		return list
	}

	out := append(List(nil), list...)
	out.Sort()

	left := make([]float64, len(out))
	right := make([]float64, len(out))

	for i, c := range out {
		left[i] = c.Left.Or(math.Inf(-1))
		right[i] = c.Right.Or(math.Inf(1))
	}

	switch s.cfg.reset {
	case ResetAll:
		for i := range out {
			left[i] = math.Inf(-1)
			right[i] = math.Inf(1)
		}
	case ResetInner:
		for i := range out {
			if i > 0 {
				left[i] = math.Inf(-1)
			}

			if i < len(out)-1 {
				right[i] = math.Inf(1)
			}
		}
	}

	for i := 1; i < len(out); i++ {
		boundary := s.boundary(x, strain, out[i-1], out[i])
		left[i] = math.Max(left[i], boundary)
		right[i-1] = math.Min(right[i-1], boundary)
	}

	if s.cfg.useThreshold {
		for i, c := range out {
			if pos, ok := thresholdCrossing(x, strain, c.Index, s.cfg.threshold, true); ok {
				left[i] = math.Max(left[i], pos)
			}

			if pos, ok := thresholdCrossing(x, strain, c.Index, s.cfg.threshold, false); ok {
				right[i] = math.Min(right[i], pos)
			}
		}
	}

	for i, c := range out {
		left[i] = math.Max(left[i], c.Location-s.cfg.maxHalfLength)
		right[i] = math.Min(right[i], c.Location+s.cfg.maxHalfLength)
	}

	for i := range out {
		out[i].Left = Some(math.Max(left[i], x[0]))
		out[i].Right = Some(math.Min(right[i], x[len(x)-1]))
	}

	out.mustSeparated()

	return out
}

// boundary picks the split position between two adjacent cracks.
func (s *Separator) boundary(x, strain []float64, prev, next Crack) float64 {
	midpoint := (prev.Location + next.Location) / 2

	if s.cfg.split == SplitMiddle {
		return midpoint
	}

	lo, hi := prev.Index+1, next.Index
	if lo >= hi {
		return midpoint
	}

	minIdx := -1
	count := 0
	allEqual := true

	for i := lo; i < hi; i++ {
		if !core.IsValid(strain[i]) {
			continue
		}

		count++

		if minIdx == -1 {
			minIdx = i
			continue
		}

		if strain[i] != strain[minIdx] {
			allEqual = false
		}

		if strain[i] < strain[minIdx] {
			minIdx = i
		}
	}

	// A flat valley has no distinct minimum to split at.
	if minIdx == -1 || (count > 1 && allEqual) {
		return midpoint
	}

	return x[minIdx]
}

// thresholdCrossing scans outward from the peak for the first sample at or
// below the threshold and returns its position.
func thresholdCrossing(x, strain []float64, peakIndex int, threshold float64, toLeft bool) (float64, bool) {
	step := 1
	if toLeft {
		step = -1
	}

	for i := peakIndex + step; i >= 0 && i < len(strain); i += step {
		if core.IsValid(strain[i]) && strain[i] <= threshold {
			return x[i], true
		}
	}

	return 0, false
}
