package crack

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-strain/core"
)

var (
	// ErrInvalidProminence indicates a non-positive prominence threshold.
	ErrInvalidProminence = errors.New("crack: prominence must be positive")
	// ErrInvalidWidth indicates a negative minimum peak width.
	ErrInvalidWidth = errors.New("crack: minimum width must not be negative")
)

const (
	defaultHeight     = 100.0
	defaultProminence = 100.0
)

type finderConfig struct {
	height     float64
	prominence float64
	minWidth   float64
}

func defaultFinderConfig() finderConfig {
	return finderConfig{
		height:     defaultHeight,
		prominence: defaultProminence,
	}
}

// FinderOption configures a Finder.
type FinderOption func(*finderConfig)

// WithHeight sets the minimum strain a sample must reach to qualify as a
// peak. Defaults to 100 µm/m.
func WithHeight(height float64) FinderOption {
	return func(cfg *finderConfig) {
		cfg.height = height
	}
}

// WithProminence sets the minimum prominence of a peak over its
// surrounding valleys. Defaults to 100 µm/m.
func WithProminence(prominence float64) FinderOption {
	return func(cfg *finderConfig) {
		cfg.prominence = prominence
	}
}

// WithMinWidth sets the minimum peak width, measured in samples at half
// the peak's prominence. Defaults to 0 (no width filtering).
func WithMinWidth(width float64) FinderOption {
	return func(cfg *finderConfig) {
		cfg.minWidth = width
	}
}

// Finder detects crack candidates as local strain maxima passing height,
// prominence and width thresholds.
//
// The finder makes no physical judgement: two closely spaced true peaks
// over one crack are reported as two cracks, and a genuine peak below the
// thresholds is missed. Both cases need manual correction through the
// profile's add/delete operations.
type Finder struct {
	cfg finderConfig
}

// NewFinder creates a peak finder.
func NewFinder(opts ...FinderOption) (*Finder, error) {
	cfg := defaultFinderConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.prominence <= 0 {
		return nil, ErrInvalidProminence
	}

	if cfg.minWidth < 0 {
		return nil, ErrInvalidWidth
	}

	return &Finder{cfg: cfg}, nil
}

// Run detects peaks and returns them as an ordered List. Each crack
// carries its peak index, location, peak strain and the valley bases as
// initial zone bounds. Zero detections yield an empty list, not an error.
// Invalid samples never qualify as peaks or bases.
func (f *Finder) Run(x, strain []float64) List {
	core.MustAligned(x, strain)
	core.MustAscending(x)

	y := floorInvalid(strain)

	var list List

	for _, p := range localMaxima(y) {
		if y[p.mid] < f.cfg.height {
			continue
		}

		prom, leftBase, rightBase := prominence(y, p.mid)
		if prom < f.cfg.prominence {
			continue
		}

		if f.cfg.minWidth > 0 {
			if widthAtHalfProminence(y, p, prom, leftBase, rightBase) < f.cfg.minWidth {
				continue
			}
		}

		list = append(list, Crack{
			Index:     p.mid,
			Location:  x[p.mid],
			MaxStrain: strain[p.mid],
			Left:      Some(x[leftBase]),
			Right:     Some(x[rightBase]),
		})
	}

	return list
}

// floorInvalid maps invalid samples to -Inf so they act as hard valleys
// and can never be selected as peaks or raise a base.
func floorInvalid(y []float64) []float64 {
	out := make([]float64, len(y))

	for i, v := range y {
		if core.IsValid(v) {
			out[i] = v
		} else {
			out[i] = math.Inf(-1)
		}
	}

	return out
}

// peak is a local maximum, possibly a plateau spanning [left, right].
type peak struct {
	left  int
	mid   int
	right int
}

// localMaxima finds all strict local maxima. A plateau counts as one peak
// reported at its middle sample.
func localMaxima(y []float64) []peak {
	var peaks []peak

	i := 1
	iMax := len(y) - 1

	for i < iMax {
		if y[i-1] < y[i] {
			ahead := i + 1
			for ahead < iMax && y[ahead] == y[i] {
				ahead++
			}

			if y[ahead] < y[i] {
				left := i
				right := ahead - 1
				peaks = append(peaks, peak{left: left, mid: (left + right) / 2, right: right})
				i = ahead
				continue
			}
		}

		i++
	}

	return peaks
}

// prominence measures how far a peak rises above its surrounding valleys.
// The bases are the minima between the peak and the nearest higher sample
// (or the signal edge) on each side.
func prominence(y []float64, p int) (prom float64, leftBase, rightBase int) {
	leftBase = p
	for i := p - 1; i >= 0 && y[i] <= y[p]; i-- {
		if y[i] < y[leftBase] {
			leftBase = i
		}
	}

	rightBase = p
	for i := p + 1; i < len(y) && y[i] <= y[p]; i++ {
		if y[i] < y[rightBase] {
			rightBase = i
		}
	}

	higherBase := math.Max(y[leftBase], y[rightBase])

	return y[p] - higherBase, leftBase, rightBase
}

// widthAtHalfProminence measures the peak width in samples at the
// evaluation height peak - prominence/2, interpolating the crossing
// points between samples.
func widthAtHalfProminence(y []float64, p peak, prom float64, leftBase, rightBase int) float64 {
	height := y[p.mid] - prom/2

	leftIP := float64(p.left)
	for i := p.left; i > leftBase; i-- {
		if y[i-1] < height {
			leftIP = float64(i) - (height-y[i])/(y[i-1]-y[i])
			break
		}

		leftIP = float64(i - 1)
	}

	rightIP := float64(p.right)
	for i := p.right; i < rightBase; i++ {
		if y[i+1] < height {
			rightIP = float64(i) + (height-y[i])/(y[i+1]-y[i])
			break
		}

		rightIP = float64(i + 1)
	}

	return rightIP - leftIP
}
