//go:build !noinstrument

package region

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/go-stack/stack"

	"github.com/wesleyorama2/regiontime/clock"
)

// Metric accumulates timing for one named region.
//
// Inclusive time is anchored by the outermost Start and closed by the
// matching outermost Stop, so recursion does not inflate it. Self time is
// attributed at every Start and Stop of any metric in the group: the
// innermost running metric is the one whose self clock is open.
type Metric struct {
	name  string
	group *Group

	// depth is -1 when idle and 0 inside the outermost invocation
	depth int

	lastStart int64
	lastTime  int64
	totalTime int64

	lastSelfSlice int64
	runSelf       int64
	lastSelfTime  int64
	totalSelfTime int64

	lastQuantity  int64
	totalQuantity int64
	calls         int64
	invocations   int64
	overruns      int64

	hist *hdrhistogram.Histogram
}

// NewMetric creates a metric registered with the default group.
func NewMetric(name string) *Metric {
	return Default().NewMetric(name)
}

// NewMetric creates a metric registered with g. Names need not be unique.
func (g *Group) NewMetric(name string) *Metric {
	m := &Metric{
		name:  name,
		group: g,
		depth: -1,
	}
	if h := g.histogram; h != nil {
		m.hist = hdrhistogram.New(h.Min.Microseconds(), h.Max.Microseconds(), h.SigFigs)
	}
	g.register(m)
	return m
}

// Start enters the region.
func (m *Metric) Start() {
	g := m.group
	now := g.clock.Now()

	m.depth++
	if m.depth == 0 {
		m.lastStart = now
		m.runSelf = 0
	}

	if parent := g.Top(); parent != nil {
		parent.closeSelfSlice(now)
	}
	g.push(m)
	m.lastSelfSlice = now
}

// Stop leaves the region, adding quantity to the metric. It reports whether
// this completed an outermost invocation longer than the warning threshold.
//
// Stop panics with a *StackError if m is not the innermost running metric of
// its group.
func (m *Metric) Stop(quantity int64) bool {
	g := m.group
	now := g.clock.Now()

	if top := g.Top(); top != m {
		e := &StackError{Group: g.name, Metric: m.name, Depth: len(g.stack)}
		if top != nil {
			e.Top = top.name
		}
		failStack(e)
	}

	m.depth--
	outermost := m.depth < 0

	m.lastQuantity = quantity
	m.totalQuantity += quantity
	m.calls++

	g.pop()
	m.closeSelfSlice(now)
	if parent := g.Top(); parent != nil {
		parent.lastSelfSlice = now
	}

	if !outermost {
		return false
	}

	m.lastTime = now - m.lastStart
	m.totalTime += m.lastTime
	m.lastSelfTime = m.runSelf
	m.invocations++

	if m.hist != nil {
		m.recordHistogram(clock.ToDuration(m.lastTime, g.freq))
	}
	// Compared in ticks so sub-nanosecond clocks are not rounded below the threshold.
	if m.lastTime > clock.FromDuration(WarningThreshold(), g.freq) {
		m.overruns++
		return true
	}
	return false
}

// StopAt is Stop that also reports an overrun to the group's Warner, tagged
// with loc.
func (m *Metric) StopAt(quantity int64, loc stack.Call) bool {
	if !m.Stop(quantity) {
		return false
	}
	m.group.warner.Overrun(Overrun{
		Metric:    m.name,
		Group:     m.group.name,
		Duration:  m.LastTime(),
		Threshold: WarningThreshold(),
		Location:  loc,
	})
	return true
}

func (m *Metric) closeSelfSlice(now int64) {
	d := now - m.lastSelfSlice
	m.totalSelfTime += d
	m.runSelf += d
}

func (m *Metric) recordHistogram(d time.Duration) {
	h := m.group.histogram
	us := d.Microseconds()
	if lo := h.Min.Microseconds(); us < lo {
		us = lo
	}
	if hi := h.Max.Microseconds(); us > hi {
		us = hi
	}
	// RecordValue only fails outside the configured range, which is clamped above
	_ = m.hist.RecordValue(us)
}

// Name returns the metric's display name.
func (m *Metric) Name() string { return m.name }

// Group returns the owning group.
func (m *Metric) Group() *Group { return m.group }

// Running reports whether the metric is between a Start and its Stop.
func (m *Metric) Running() bool { return m.depth >= 0 }

// Calls returns the number of Stops, recursive ones included.
func (m *Metric) Calls() int64 { return m.calls }

// Invocations returns the number of outermost Stops.
func (m *Metric) Invocations() int64 { return m.invocations }

// Overruns returns how many outermost invocations exceeded the threshold.
func (m *Metric) Overruns() int64 { return m.overruns }

// LastTime returns the inclusive duration of the last outermost invocation.
func (m *Metric) LastTime() time.Duration { return m.duration(m.lastTime) }

// TotalTime returns the accumulated inclusive duration.
func (m *Metric) TotalTime() time.Duration { return m.duration(m.totalTime) }

// LastSelfTime returns the self time of the last outermost invocation.
func (m *Metric) LastSelfTime() time.Duration { return m.duration(m.lastSelfTime) }

// TotalSelfTime returns the accumulated self time.
func (m *Metric) TotalSelfTime() time.Duration { return m.duration(m.totalSelfTime) }

// TotalSeconds returns TotalTime in seconds.
func (m *Metric) TotalSeconds() float64 { return clock.ToSeconds(m.totalTime, m.group.freq) }

// TotalSelfSeconds returns TotalSelfTime in seconds.
func (m *Metric) TotalSelfSeconds() float64 { return clock.ToSeconds(m.totalSelfTime, m.group.freq) }

// LastQuantity returns the quantity passed to the most recent Stop.
func (m *Metric) LastQuantity() int64 { return m.lastQuantity }

// TotalQuantity returns the sum of all quantities.
func (m *Metric) TotalQuantity() int64 { return m.totalQuantity }

func (m *Metric) duration(ticks int64) time.Duration {
	return clock.ToDuration(ticks, m.group.freq)
}

// Stats returns a copy of the metric's counters.
func (m *Metric) Stats() Stats {
	s := Stats{
		Name:          m.name,
		Group:         m.group.name,
		Calls:         m.calls,
		Invocations:   m.invocations,
		Overruns:      m.overruns,
		LastTime:      m.LastTime(),
		TotalTime:     m.TotalTime(),
		LastSelfTime:  m.LastSelfTime(),
		TotalSelfTime: m.TotalSelfTime(),
		LastQuantity:  m.lastQuantity,
		TotalQuantity: m.totalQuantity,
	}
	if m.hist != nil {
		s.hist = copyHistogram(m.hist)
		s.Percentiles = percentilesOf(s.hist)
	}
	return s
}
