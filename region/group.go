//go:build !noinstrument

package region

import (
	"sync"

	"github.com/wesleyorama2/regiontime/clock"
)

// Enabled reports whether instrumentation is compiled in.
const Enabled = true

// Group owns a registry of metrics and the stack of currently running ones.
//
// The registry only grows. It is safe to register metrics from any goroutine.
// The active stack is not synchronised: Start and Stop on metrics of one group
// must come from a single goroutine at a time.
type Group struct {
	name      string
	clock     clock.Clock
	freq      int64
	warner    Warner
	histogram *HistogramConfig

	mu       sync.Mutex
	registry []*Metric

	// stack is ordered outermost to innermost
	stack []*Metric
}

var (
	defaultOnce  sync.Once
	defaultGroup *Group
)

// Default returns the process-wide group, creating it on first use.
func Default() *Group {
	defaultOnce.Do(func() {
		defaultGroup = NewGroup(WithName("default"))
	})
	return defaultGroup
}

// NewGroup creates an independent group with its own registry and stack.
func NewGroup(opts ...Option) *Group {
	cfg := newGroupConfig(opts)
	return &Group{
		name:      cfg.name,
		clock:     cfg.clock,
		freq:      cfg.clock.Frequency(),
		warner:    cfg.warner,
		histogram: cfg.histogram,
		stack:     make([]*Metric, 0, 16),
	}
}

// Name returns the group's label.
func (g *Group) Name() string {
	return g.name
}

// Clock returns the group's tick source.
func (g *Group) Clock() clock.Clock {
	return g.clock
}

func (g *Group) register(m *Metric) {
	g.mu.Lock()
	g.registry = append(g.registry, m)
	g.mu.Unlock()
}

// Metrics returns the registered metrics in registration order.
func (g *Group) Metrics() []*Metric {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]*Metric, len(g.registry))
	copy(out, g.registry)
	return out
}

// Stats returns a snapshot of every registered metric in registration order.
func (g *Group) Stats() []Stats {
	metrics := g.Metrics()
	out := make([]Stats, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, m.Stats())
	}
	return out
}

// Depth returns the number of running metrics.
func (g *Group) Depth() int {
	return len(g.stack)
}

// Top returns the innermost running metric, or nil.
func (g *Group) Top() *Metric {
	if len(g.stack) == 0 {
		return nil
	}
	return g.stack[len(g.stack)-1]
}

func (g *Group) push(m *Metric) {
	g.stack = append(g.stack, m)
}

func (g *Group) pop() {
	n := len(g.stack) - 1
	g.stack[n] = nil
	g.stack = g.stack[:n]
}
