// Package region provides low-overhead hierarchical timers for named code
// regions.
//
// Each Metric records, per region, the inclusive time (everything the region
// did, nested regions included) and the exclusive or self time (the region's
// own work with nested instrumented regions subtracted). Recursive re-entry of
// the same region is handled without double-counting inclusive time.
//
// # Basic Usage
//
// Metrics are normally created once, as package-level variables:
//
//	var parseMetric = region.NewMetric("parse")
//
//	func parse(b []byte) (*AST, error) {
//	    defer parseMetric.Enter().Exit()
//	    ...
//	}
//
// To attach a quantity (bytes, rows, items) to the invocation:
//
//	g := parseMetric.Enter()
//	defer func() { g.ExitWith(int64(len(b))) }()
//
// # Groups
//
// A Group owns the registry of metrics and the active call stack that the
// self-time attribution relies on. The stack is not synchronised: a group
// must only be driven by one goroutine at a time. Concurrent code should give
// each goroutine its own group:
//
//	g := region.NewGroup(region.WithName("worker-3"))
//	m := g.NewMetric("handle")
//
// Stopping a metric that is not the innermost running metric of its group is
// a programming error and panics with a *StackError.
//
// # Overruns
//
// SetWarningThreshold sets a process-wide duration. An outermost invocation
// whose inclusive duration exceeds it is reported to the group's Warner
// together with the call site of the Guard.
//
// # Disabling
//
// Building with the noinstrument tag replaces every type in this package with
// an empty implementation of the same API, so call sites compile unchanged
// and cost nothing.
//
//	go build -tags=noinstrument ./...
package region
