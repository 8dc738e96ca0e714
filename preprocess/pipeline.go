// Package preprocess chains the conditioning stages that turn raw sensor
// readings into a clean strain profile: anomaly masking, ensemble
// reduction, dropout repair, filtering and resizing.
//
// Each stage is optional. The order is fixed (mask, reduce, repair,
// filter, resize) because later stages assume the guarantees of earlier
// ones: repair expects anomalies to be masked as dropouts, filters expect
// repaired or at least marked data, and resizers expect a single profile.
package preprocess

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-strain/core"
	"github.com/cwbudde/algo-strain/preprocess/ensemble"
	"github.com/cwbudde/algo-strain/preprocess/filter"
	"github.com/cwbudde/algo-strain/preprocess/mask"
	"github.com/cwbudde/algo-strain/preprocess/repair"
	"github.com/cwbudde/algo-strain/preprocess/resize"
)

// ErrNoReducer indicates a 2-D run without an ensemble reducer configured.
var ErrNoReducer = errors.New("preprocess: 2-D input requires a reducer")

type config struct {
	masker   mask.Masker
	reducer  ensemble.Reducer
	repairer repair.Repairer
	filters  []filter.Filter
	resizers []resize.Resizer
}

// Option configures a Pipeline.
type Option func(*config)

// WithMasker sets the anomaly masker applied first.
func WithMasker(m mask.Masker) Option {
	return func(cfg *config) {
		cfg.masker = m
	}
}

// WithReducer sets the ensemble reducer collapsing repeated readings into
// one profile. Required for Run2D.
func WithReducer(r ensemble.Reducer) Option {
	return func(cfg *config) {
		cfg.reducer = r
	}
}

// WithRepairer sets the dropout repair strategy.
func WithRepairer(r repair.Repairer) Option {
	return func(cfg *config) {
		cfg.repairer = r
	}
}

// WithFilters appends smoothing or limiting filters, applied in order.
func WithFilters(f ...filter.Filter) Option {
	return func(cfg *config) {
		cfg.filters = append(cfg.filters, f...)
	}
}

// WithResizers appends resizing stages (crop, aggregate, resample),
// applied in order after filtering.
func WithResizers(r ...resize.Resizer) Option {
	return func(cfg *config) {
		cfg.resizers = append(cfg.resizers, r...)
	}
}

// Pipeline runs the configured conditioning stages in a fixed order.
// A Pipeline is deterministic: the same input always yields the same
// output, and stages never modify their input slices.
type Pipeline struct {
	cfg config
}

// New creates a pipeline from the given stage options. A pipeline with no
// stages is valid and acts as a copy.
func New(opts ...Option) *Pipeline {
	var cfg config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Pipeline{cfg: cfg}
}

// Run conditions a single profile. The returned slices are freshly
// allocated; x is returned unchanged unless a resizer is configured.
func (p *Pipeline) Run(x, y []float64) ([]float64, []float64, error) {
	core.MustAligned(x, y)

	outX := append([]float64(nil), x...)
	outY := append([]float64(nil), y...)

	if p.cfg.masker != nil {
		masked, err := p.cfg.masker.Run(outX, outY)
		if err != nil {
			return nil, nil, fmt.Errorf("preprocess: masking: %w", err)
		}

		outY = masked
	}

	return p.finish(outX, outY)
}

// Run2D conditions a table of repeated readings (rows) over a shared
// position array. Masking applies per row; the reducer then collapses the
// table into one profile before the 1-D stages run.
func (p *Pipeline) Run2D(x []float64, y [][]float64) ([]float64, []float64, error) {
	if p.cfg.reducer == nil {
		return nil, nil, ErrNoReducer
	}

	rows := y

	if p.cfg.masker != nil {
		masked, err := p.cfg.masker.Run2D(x, y)
		if err != nil {
			return nil, nil, fmt.Errorf("preprocess: masking: %w", err)
		}

		rows = masked
	}

	outY, err := p.cfg.reducer.Run(x, rows)
	if err != nil {
		return nil, nil, fmt.Errorf("preprocess: reducing: %w", err)
	}

	outX := append([]float64(nil), x...)

	return p.finish(outX, outY)
}

// finish applies the repair, filter and resize stages shared by both entry
// points, asserting x/y alignment after every stage.
func (p *Pipeline) finish(x, y []float64) ([]float64, []float64, error) {
	if p.cfg.repairer != nil {
		rx, ry, err := p.cfg.repairer.Run(x, y)
		if err != nil {
			return nil, nil, fmt.Errorf("preprocess: repairing: %w", err)
		}

		x, y = rx, ry
		core.MustAligned(x, y)
	}

	for _, f := range p.cfg.filters {
		fy, err := f.Run(x, y)
		if err != nil {
			return nil, nil, fmt.Errorf("preprocess: filtering: %w", err)
		}

		y = fy
		core.MustAligned(x, y)
	}

	for _, r := range p.cfg.resizers {
		rx, ry, err := r.Run(x, y)
		if err != nil {
			return nil, nil, fmt.Errorf("preprocess: resizing: %w", err)
		}

		x, y = rx, ry
		core.MustAligned(x, y)
	}

	return x, y, nil
}
