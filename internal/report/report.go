// Package report turns region statistics into human and machine readable
// summaries.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/wesleyorama2/regiontime/region"
)

// Options controls collection and rendering.
type Options struct {
	// Format is "table", "json" or "yaml"
	Format string

	// SortBy is "total", "self", "calls", "name" or "registration"
	SortBy string

	// Top limits the number of rows, 0 for all
	Top int

	// Merge folds same-named metrics from different groups
	Merge bool

	NoColor bool

	// Threshold is printed in the table footer
	Threshold time.Duration
}

// Collect snapshots every metric of groups, in group then registration order.
func Collect(groups []*region.Group, merge bool) []region.Stats {
	var out []region.Stats
	for _, g := range groups {
		out = append(out, g.Stats()...)
	}
	if merge {
		out = Merge(out)
	}
	return out
}

// Merge folds stats with the same name into one entry. Entries keep the
// order in which a name first appeared.
func Merge(stats []region.Stats) []region.Stats {
	index := make(map[string]int, len(stats))
	out := make([]region.Stats, 0, len(stats))
	for _, s := range stats {
		if i, ok := index[s.Name]; ok {
			out[i] = out[i].Merge(s)
			continue
		}
		index[s.Name] = len(out)
		out = append(out, s)
	}
	return out
}

// Sort orders stats in place. Time and call keys sort descending, names
// ascending. "registration" and "" keep the current order.
func Sort(stats []region.Stats, key string) error {
	var less func(a, b region.Stats) bool
	switch key {
	case "", "registration":
		return nil
	case "total":
		less = func(a, b region.Stats) bool { return a.TotalTime > b.TotalTime }
	case "self":
		less = func(a, b region.Stats) bool { return a.TotalSelfTime > b.TotalSelfTime }
	case "calls":
		less = func(a, b region.Stats) bool { return a.Calls > b.Calls }
	case "name":
		less = func(a, b region.Stats) bool { return a.Name < b.Name }
	default:
		return fmt.Errorf("unknown sort key: %s", key)
	}
	sort.SliceStable(stats, func(i, j int) bool { return less(stats[i], stats[j]) })
	return nil
}

// Write sorts, trims and renders stats to w.
func Write(w io.Writer, stats []region.Stats, opts Options) error {
	rows := make([]region.Stats, len(stats))
	copy(rows, stats)

	if err := Sort(rows, opts.SortBy); err != nil {
		return err
	}
	if opts.Top > 0 && len(rows) > opts.Top {
		rows = rows[:opts.Top]
	}

	switch strings.ToLower(opts.Format) {
	case "", "table":
		return writeTable(w, rows, opts)
	case "json":
		return writeJSON(w, rows)
	case "yaml":
		return writeYAML(w, rows)
	default:
		return fmt.Errorf("unknown report format: %s", opts.Format)
	}
}
