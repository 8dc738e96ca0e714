package resize

import (
	"github.com/cwbudde/algo-strain/core"
)

type cropConfig struct {
	offset float64
}

// CropOption configures a Crop resizer.
type CropOption func(*cropConfig)

// WithOffset shifts the position array by the given amount before cropping.
// Useful when the sensor's lead-in length should be zeroed out.
func WithOffset(offset float64) CropOption {
	return func(cfg *cropConfig) {
		cfg.offset = offset
	}
}

// Crop restricts a profile to the closed position range [start, end].
type Crop struct {
	start  float64
	end    float64
	offset float64
}

// NewCrop creates a crop resizer for the measurement area [start, end].
func NewCrop(start, end float64, opts ...CropOption) (*Crop, error) {
	if start >= end {
		return nil, ErrInvalidWindow
	}

	var cfg cropConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Crop{start: start, end: end, offset: cfg.offset}, nil
}

// Run returns the contiguous sub-profile inside the crop window. A window
// containing no samples is a range error; a window containing samples but
// no valid ones is reported as such instead of returning a useless success.
func (c *Crop) Run(x, y []float64) ([]float64, []float64, error) {
	core.MustAligned(x, y)
	core.MustAscending(x)

	outX := make([]float64, 0, len(x))
	outY := make([]float64, 0, len(y))

	for i, pos := range x {
		pos += c.offset
		if pos < c.start || pos > c.end {
			continue
		}

		outX = append(outX, pos)
		outY = append(outY, y[i])
	}

	if len(outX) == 0 {
		return nil, nil, ErrEmptyRange
	}

	if core.CountValid(outY) == 0 {
		return nil, nil, ErrNoValidData
	}

	return outX, outY, nil
}
