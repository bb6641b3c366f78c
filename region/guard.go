//go:build !noinstrument

package region

import (
	"github.com/go-stack/stack"
)

// Guard is a started metric waiting for its Stop. Exit it exactly once,
// normally with defer so every return path and panics are covered:
//
//	defer m.Enter().Exit()
type Guard struct {
	m   *Metric
	loc stack.Call
}

// Enter starts m and returns the Guard that stops it.
func (m *Metric) Enter() Guard {
	return m.enter(2)
}

func (m *Metric) enter(skip int) Guard {
	loc := stack.Caller(skip)
	m.Start()
	return Guard{m: m, loc: loc}
}

// Exit stops the metric with a zero quantity.
func (g Guard) Exit() bool {
	return g.m.StopAt(0, g.loc)
}

// ExitWith stops the metric with the given quantity.
func (g Guard) ExitWith(quantity int64) bool {
	return g.m.StopAt(quantity, g.loc)
}

// Do runs fn inside the region and records quantity.
func (m *Metric) Do(quantity int64, fn func()) {
	g := m.enter(2)
	defer g.ExitWith(quantity)
	fn()
}
