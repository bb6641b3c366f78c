package region

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Stats is a point-in-time copy of a metric's counters.
type Stats struct {
	// Name is the metric's display name
	Name string

	// Group is the name of the owning group
	Group string

	// Calls counts every Stop, recursive ones included
	Calls int64

	// Invocations counts outermost Stops only
	Invocations int64

	// Overruns counts outermost invocations above the warning threshold
	Overruns int64

	// LastTime and TotalTime are inclusive durations
	LastTime  time.Duration
	TotalTime time.Duration

	// LastSelfTime and TotalSelfTime exclude nested instrumented regions
	LastSelfTime  time.Duration
	TotalSelfTime time.Duration

	LastQuantity  int64
	TotalQuantity int64

	// Percentiles is nil unless the group records histograms
	Percentiles *Percentiles

	hist *hdrhistogram.Histogram
}

// Percentiles summarises the inclusive duration distribution.
type Percentiles struct {
	P50   time.Duration
	P90   time.Duration
	P99   time.Duration
	Max   time.Duration
	Count int64
}

// AverageTime returns the mean inclusive duration per outermost invocation.
func (s Stats) AverageTime() time.Duration {
	if s.Invocations == 0 {
		return 0
	}
	return s.TotalTime / time.Duration(s.Invocations)
}

// AverageSelfTime returns the mean self time per outermost invocation.
func (s Stats) AverageSelfTime() time.Duration {
	if s.Invocations == 0 {
		return 0
	}
	return s.TotalSelfTime / time.Duration(s.Invocations)
}

// Merge adds o's counters to s. Last values are taken from o. Histograms are
// merged when both sides carry one.
func (s Stats) Merge(o Stats) Stats {
	out := s
	out.Calls += o.Calls
	out.Invocations += o.Invocations
	out.Overruns += o.Overruns
	out.TotalTime += o.TotalTime
	out.TotalSelfTime += o.TotalSelfTime
	out.TotalQuantity += o.TotalQuantity
	if o.Invocations > 0 {
		out.LastTime = o.LastTime
		out.LastSelfTime = o.LastSelfTime
	}
	if o.Calls > 0 {
		out.LastQuantity = o.LastQuantity
	}
	if out.Group != o.Group {
		out.Group = ""
	}

	switch {
	case s.hist != nil && o.hist != nil:
		h := copyHistogram(s.hist)
		h.Merge(o.hist)
		out.hist = h
	case o.hist != nil:
		out.hist = copyHistogram(o.hist)
	}
	out.Percentiles = percentilesOf(out.hist)
	return out
}

func copyHistogram(h *hdrhistogram.Histogram) *hdrhistogram.Histogram {
	return hdrhistogram.Import(h.Export())
}

// percentilesOf reads a histogram recorded in microseconds.
func percentilesOf(h *hdrhistogram.Histogram) *Percentiles {
	if h == nil || h.TotalCount() == 0 {
		return nil
	}
	return &Percentiles{
		P50:   time.Duration(h.ValueAtQuantile(50)) * time.Microsecond,
		P90:   time.Duration(h.ValueAtQuantile(90)) * time.Microsecond,
		P99:   time.Duration(h.ValueAtQuantile(99)) * time.Microsecond,
		Max:   time.Duration(h.Max()) * time.Microsecond,
		Count: h.TotalCount(),
	}
}
