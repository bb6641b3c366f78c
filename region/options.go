package region

import (
	"time"

	"github.com/wesleyorama2/regiontime/clock"
)

// Option configures a Group.
type Option func(*groupConfig)

type groupConfig struct {
	name      string
	clock     clock.Clock
	warner    Warner
	histogram *HistogramConfig
}

func newGroupConfig(opts []Option) groupConfig {
	cfg := groupConfig{
		clock:  clock.Monotonic(),
		warner: StderrWarner(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.clock == nil {
		cfg.clock = clock.Monotonic()
	}
	if cfg.warner == nil {
		cfg.warner = DiscardWarner
	}
	return cfg
}

// WithName labels the group in reports and overrun warnings.
func WithName(name string) Option {
	return func(c *groupConfig) { c.name = name }
}

// WithClock replaces the monotonic clock.
func WithClock(c clock.Clock) Option {
	return func(cfg *groupConfig) { cfg.clock = c }
}

// WithWarner sets the receiver of overrun events. A nil Warner discards them.
func WithWarner(w Warner) Option {
	return func(c *groupConfig) { c.warner = w }
}

// WithHistogram records the inclusive duration of every outermost invocation
// into an HDR histogram per metric.
func WithHistogram(cfg HistogramConfig) Option {
	return func(c *groupConfig) {
		h := cfg.withDefaults()
		c.histogram = &h
	}
}

// HistogramConfig bounds the per-metric duration histograms.
type HistogramConfig struct {
	// Min is the smallest recordable duration (default: 1µs)
	Min time.Duration

	// Max is the largest recordable duration (default: 1h)
	Max time.Duration

	// SigFigs is the number of significant figures kept (default: 3)
	SigFigs int
}

// DefaultHistogramConfig returns the default histogram bounds.
func DefaultHistogramConfig() HistogramConfig {
	return HistogramConfig{
		Min:     time.Microsecond,
		Max:     time.Hour,
		SigFigs: 3,
	}
}

func (h HistogramConfig) withDefaults() HistogramConfig {
	def := DefaultHistogramConfig()
	if h.Min <= 0 {
		h.Min = def.Min
	}
	if h.Max <= h.Min {
		h.Max = def.Max
	}
	if h.SigFigs < 1 || h.SigFigs > 5 {
		h.SigFigs = def.SigFigs
	}
	return h
}
