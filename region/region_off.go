//go:build noinstrument

package region

import (
	"time"

	"github.com/go-stack/stack"

	"github.com/wesleyorama2/regiontime/clock"
)

// Enabled reports whether instrumentation is compiled in.
const Enabled = false

// Group is empty when instrumentation is compiled out.
type Group struct{}

var defaultGroup Group

func Default() *Group                   { return &defaultGroup }
func NewGroup(...Option) *Group         { return &defaultGroup }
func (*Group) Name() string             { return "" }
func (*Group) Clock() clock.Clock       { return clock.Monotonic() }
func (*Group) Metrics() []*Metric       { return nil }
func (*Group) Stats() []Stats           { return nil }
func (*Group) Depth() int               { return 0 }
func (*Group) Top() *Metric             { return nil }
func (*Group) NewMetric(string) *Metric { return &noopMetric }

// Metric is empty when instrumentation is compiled out.
type Metric struct{}

var noopMetric Metric

func NewMetric(string) *Metric                { return &noopMetric }
func (*Metric) Start()                        {}
func (*Metric) Stop(int64) bool               { return false }
func (*Metric) StopAt(int64, stack.Call) bool { return false }
func (*Metric) Name() string                  { return "" }
func (*Metric) Group() *Group                 { return &defaultGroup }
func (*Metric) Running() bool                 { return false }
func (*Metric) Calls() int64                  { return 0 }
func (*Metric) Invocations() int64            { return 0 }
func (*Metric) Overruns() int64               { return 0 }
func (*Metric) LastTime() time.Duration       { return 0 }
func (*Metric) TotalTime() time.Duration      { return 0 }
func (*Metric) LastSelfTime() time.Duration   { return 0 }
func (*Metric) TotalSelfTime() time.Duration  { return 0 }
func (*Metric) TotalSeconds() float64         { return 0 }
func (*Metric) TotalSelfSeconds() float64     { return 0 }
func (*Metric) LastQuantity() int64           { return 0 }
func (*Metric) TotalQuantity() int64          { return 0 }
func (*Metric) Stats() Stats                  { return Stats{} }
func (*Metric) Enter() Guard                  { return Guard{} }
func (*Metric) Do(_ int64, fn func())         { fn() }

// Guard is empty when instrumentation is compiled out.
type Guard struct{}

func (Guard) Exit() bool          { return false }
func (Guard) ExitWith(int64) bool { return false }
