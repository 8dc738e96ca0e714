// Package profile ties the processing stages together: it owns a
// conditioned strain profile, finds and manages its cracks, applies the
// configured compensation baselines and integrates crack widths.
//
// The crack width of the i-th crack is the integral of the compensated
// strain over the crack's zone of influence:
//
//	w_i = ∫ strain(x) - shrink(x) - ts(x) - tare(x) dx
//
// evaluated from the zone's left to its right bound.
//
// A Profile has a single logical owner; concurrent mutation is not
// supported and callers must serialize edits themselves.
package profile

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-strain/compensate"
	"github.com/cwbudde/algo-strain/core"
	"github.com/cwbudde/algo-strain/crack"
	"github.com/cwbudde/algo-strain/integrate"
	"github.com/cwbudde/algo-strain/preprocess"
	"github.com/cwbudde/algo-strain/preprocess/filter"
)

var (
	// ErrInsufficientData indicates a profile with fewer than two samples.
	ErrInsufficientData = errors.New("profile: need at least two samples")
	// ErrNoValidData indicates a profile without any valid strain sample.
	ErrNoValidData = errors.New("profile: no valid strain samples")
)

type config struct {
	finder    *crack.Finder
	separator *crack.Separator
	ts        compensate.Compensator
	shrink    *compensate.Shrink
	tare      []float64
	pipeline  *preprocess.Pipeline
	suppress  bool
}

// Option configures a Profile.
type Option func(*config)

// WithFinder sets the peak detection strategy.
func WithFinder(f *crack.Finder) Option {
	return func(cfg *config) {
		cfg.finder = f
	}
}

// WithSeparator sets the zone-of-influence separation strategy.
func WithSeparator(s *crack.Separator) Option {
	return func(cfg *config) {
		cfg.separator = s
	}
}

// WithTensionStiffening sets the tension stiffening model. Without it no
// tension stiffening baseline is subtracted.
func WithTensionStiffening(c compensate.Compensator) Option {
	return func(cfg *config) {
		cfg.ts = c
	}
}

// WithShrinkCompensation sets the shrinkage/creep calibration. Without it
// no shrink baseline is subtracted.
func WithShrinkCompensation(s *compensate.Shrink) Option {
	return func(cfg *config) {
		cfg.shrink = s
	}
}

// WithTare subtracts per-sample tare values that were present before any
// load was applied. Must be aligned with the profile.
func WithTare(tare []float64) Option {
	return func(cfg *config) {
		cfg.tare = tare
	}
}

// WithPipeline conditions the raw input through the given preprocessing
// pipeline at construction time.
func WithPipeline(p *preprocess.Pipeline) Option {
	return func(cfg *config) {
		cfg.pipeline = p
	}
}

// WithSuppressCompression controls whether negative compensated strain is
// clamped to zero before integration. On by default; compression does not
// open a crack.
func WithSuppressCompression(suppress bool) Option {
	return func(cfg *config) {
		cfg.suppress = suppress
	}
}

// Profile holds a conditioned strain profile and its crack list, together
// with the strategies used to derive crack widths from it.
type Profile struct {
	x      []float64
	strain []float64
	cfg    config

	cracks      crack.List
	tension     []float64
	shrinkBase  []float64
	compensated []float64
}

// New creates a profile from position and strain data. The input is
// copied; when a pipeline is configured it conditions the data first.
func New(x, strain []float64, opts ...Option) (*Profile, error) {
	core.MustAligned(x, strain)
	core.MustAscending(x)

	cfg := config{suppress: true}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	px := append([]float64(nil), x...)
	py := append([]float64(nil), strain...)

	if cfg.pipeline != nil {
		var err error

		px, py, err = cfg.pipeline.Run(px, py)
		if err != nil {
			return nil, fmt.Errorf("profile: conditioning: %w", err)
		}
	}

	if len(px) < 2 {
		return nil, ErrInsufficientData
	}

	if core.CountValid(py) == 0 {
		return nil, ErrNoValidData
	}

	if cfg.tare != nil {
		core.MustAligned(px, cfg.tare)
		cfg.tare = append([]float64(nil), cfg.tare...)
	}

	if cfg.finder == nil {
		cfg.finder, _ = crack.NewFinder()
	}

	if cfg.separator == nil {
		cfg.separator, _ = crack.NewSeparator()
	}

	return &Profile{x: px, strain: py, cfg: cfg}, nil
}

// Concrete creates a profile for a sensor embedded directly in concrete,
// with Fischer tension stiffening compensation.
func Concrete(x, strain []float64, opts ...Option) (*Profile, error) {
	fischer, err := compensate.NewFischer()
	if err != nil {
		return nil, err
	}

	return New(x, strain, append([]Option{WithTensionStiffening(fischer)}, opts...)...)
}

// Rebar creates a profile for a sensor attached to a reinforcement rebar,
// with Berrocal tension stiffening compensation. alpha is the Young's
// moduli ratio of steel to concrete, rho the reinforcement ratio.
func Rebar(x, strain []float64, alpha, rho float64, opts ...Option) (*Profile, error) {
	berrocal, err := compensate.NewBerrocal(alpha, rho)
	if err != nil {
		return nil, err
	}

	return New(x, strain, append([]Option{WithTensionStiffening(berrocal)}, opts...)...)
}

// X returns the conditioned position array.
func (p *Profile) X() []float64 {
	return append([]float64(nil), p.x...)
}

// Strain returns the conditioned strain array.
func (p *Profile) Strain() []float64 {
	return append([]float64(nil), p.strain...)
}

// TensionStiffening returns the last computed tension stiffening
// baseline, or nil before the first width calculation.
func (p *Profile) TensionStiffening() []float64 {
	return append([]float64(nil), p.tension...)
}

// Cracks returns a copy of the current crack list.
func (p *Profile) Cracks() crack.List {
	return append(crack.List(nil), p.cracks...)
}

// FindCracks runs peak detection and replaces the crack list with the
// detected candidates. Zones and widths are not yet assigned.
func (p *Profile) FindCracks() crack.List {
	p.cracks = p.cfg.finder.Run(p.x, p.strain)
	p.compensated = nil

	return p.Cracks()
}

// SetZones assigns each crack its zone of influence. Detection runs first
// if the list is empty.
func (p *Profile) SetZones() crack.List {
	if len(p.cracks) == 0 {
		p.FindCracks()
	}

	p.cracks = p.cfg.separator.Run(p.x, p.strain, p.cracks)

	return p.Cracks()
}

// CalculateWidths computes the width of every crack and returns the
// updated list. Detection and separation run first if needed. A crack
// whose zone holds fewer than two samples keeps an unset width; stage
// failures abort without touching the crack list.
func (p *Profile) CalculateWidths() (crack.List, error) {
	if len(p.cracks) == 0 {
		p.FindCracks()
	}

	if err := p.recompute(p.cracks); err != nil {
		return nil, err
	}

	return p.Cracks(), nil
}

// AddCracks inserts cracks at the given positions, snapped to the nearest
// measured sample, and recomputes zones and widths. Positions not at a
// detected peak are allowed; this is the manual correction path for peaks
// the finder missed. A stage failure leaves the crack list untouched.
func (p *Profile) AddCracks(positions ...float64) (crack.List, error) {
	next := append(crack.List(nil), p.cracks...)

	for _, pos := range positions {
		i := core.NearestIndex(p.x, pos)

		next = append(next, crack.Crack{
			Index:     i,
			Location:  p.x[i],
			MaxStrain: p.strain[i],
		})
	}

	next.Sort()

	if err := p.recompute(next); err != nil {
		return nil, err
	}

	return p.Cracks(), nil
}

// DeleteCracks removes the cracks at the given indices and recomputes the
// neighbors' zones and widths. Out-of-range indices are ignored. The
// removed cracks are returned. A stage failure leaves the crack list
// untouched.
func (p *Profile) DeleteCracks(indices ...int) (crack.List, error) {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(p.cracks) {
			drop[i] = true
		}
	}

	var removed, kept crack.List

	for i, c := range p.cracks {
		if drop[i] {
			removed = append(removed, c)
		} else {
			kept = append(kept, c)
		}
	}

	if err := p.recompute(kept); err != nil {
		return nil, err
	}

	return removed, nil
}

// recompute re-derives zones, compensation baselines and widths for the
// given candidate crack list. Widths of cracks whose zone and compensated
// strain are unchanged are reused, so an edit only costs the affected
// neighborhood; the result is always identical to a full recompute.
// Nothing is committed until every stage has succeeded: on error the
// profile, including its crack list, is exactly as before the call.
func (p *Profile) recompute(cracks crack.List) error {
	list := p.cfg.separator.Run(p.x, p.strain, cracks)

	shrinkBase := make([]float64, len(p.x))

	if p.cfg.shrink != nil {
		base, err := p.cfg.shrink.Run(p.x, p.strain)
		if err != nil {
			return fmt.Errorf("profile: shrink compensation: %w", err)
		}

		shrinkBase = base
	}

	tension := make([]float64, len(p.x))

	if p.cfg.ts != nil && len(list) > 0 {
		base, err := p.cfg.ts.Run(p.x, p.strain, list)
		if err != nil {
			return fmt.Errorf("profile: tension stiffening: %w", err)
		}

		tension = base
	}

	compensated := make([]float64, len(p.strain))
	for i, v := range p.strain {
		compensated[i] = v - shrinkBase[i] - tension[i]

		if p.cfg.tare != nil {
			compensated[i] -= p.cfg.tare[i]
		}
	}

	if p.cfg.suppress {
		clamped, err := filter.NewLimit(filter.WithMinimum(0)).Run(p.x, compensated)
		if err != nil {
			return fmt.Errorf("profile: compression suppression: %w", err)
		}

		compensated = clamped
	}

	for i := range list {
		p.setWidth(&list[i], compensated)
	}

	p.cracks = list
	p.tension = tension
	p.shrinkBase = shrinkBase
	p.compensated = compensated

	return nil
}

// setWidth integrates one crack's zone, reusing the previous width when
// neither the zone nor the compensated strain inside it changed.
func (p *Profile) setWidth(c *crack.Crack, compensated []float64) {
	left, right, ok := c.Segment()
	if !ok {
		c.Width = crack.OptFloat{}

		return
	}

	if w, ok := p.reusableWidth(*c, left, right, compensated); ok {
		c.Width = w

		return
	}

	w, err := integrate.SegmentRange(p.x, compensated, left, right)
	if err != nil {
		c.Width = crack.OptFloat{}

		return
	}

	c.Width = crack.Some(w)
}

// reusableWidth looks for an already computed width of the same crack
// with identical bounds and identical compensated strain in its zone.
func (p *Profile) reusableWidth(c crack.Crack, left, right float64, compensated []float64) (crack.OptFloat, bool) {
	if p.compensated == nil {
		return crack.OptFloat{}, false
	}

	for _, prev := range p.cracks {
		if prev.Index != c.Index || !prev.Width.IsSet() {
			continue
		}

		pl, pr, ok := prev.Segment()
		if !ok || pl != left || pr != right {
			continue
		}

		for i, pos := range p.x {
			if pos < left || pos > right {
				continue
			}

			if compensated[i] != p.compensated[i] {
				return crack.OptFloat{}, false
			}
		}

		return prev.Width, true
	}

	return crack.OptFloat{}, false
}
