// Package workload provides synthetic instrumented code used to exercise
// region timers from the command line and in integration tests.
package workload

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wesleyorama2/regiontime/region"
)

// Config sizes a workload run.
type Config struct {
	// Iterations is the number of top-level invocations per goroutine
	Iterations int

	// Depth is the Fibonacci argument of the recursive workload
	Depth int

	// Workers is the goroutine count of the parallel workload
	Workers int

	// Work is the busy-loop length of each leaf region
	Work int
}

// Result holds the groups that were instrumented during a run.
type Result struct {
	Name    string
	Groups  []*region.Group
	Elapsed time.Duration
}

// Stats returns the statistics of every group, group by group.
func (r *Result) Stats() []region.Stats {
	var out []region.Stats
	for _, g := range r.Groups {
		out = append(out, g.Stats()...)
	}
	return out
}

// Names lists the available workloads.
func Names() []string {
	return []string{"recursive", "pipeline", "parallel"}
}

// Run executes the named workload. Every group it creates receives opts.
func Run(ctx context.Context, name string, cfg Config, opts ...region.Option) (*Result, error) {
	if cfg.Iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", cfg.Iterations)
	}

	start := time.Now()
	res := &Result{Name: name}

	var err error
	switch name {
	case "recursive":
		g := region.NewGroup(named(opts, "main")...)
		res.Groups = []*region.Group{g}
		err = runRecursive(ctx, g, cfg)
	case "pipeline":
		g := region.NewGroup(named(opts, "main")...)
		res.Groups = []*region.Group{g}
		err = newPipeline(g).run(ctx, cfg)
	case "parallel":
		res.Groups, err = runParallel(ctx, cfg, opts)
	default:
		return nil, fmt.Errorf("unknown workload: %s", name)
	}

	res.Elapsed = time.Since(start)
	if err != nil {
		return res, err
	}
	return res, nil
}

func runParallel(ctx context.Context, cfg Config, opts []region.Option) ([]*region.Group, error) {
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}

	groups := make([]*region.Group, cfg.Workers)
	errs := make([]error, cfg.Workers)
	var wg sync.WaitGroup

	for i := range groups {
		// Each goroutine drives its own group so the active stacks never interleave.
		groups[i] = region.NewGroup(named(opts, fmt.Sprintf("worker-%d", i))...)
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = newPipeline(groups[i]).run(ctx, cfg)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return groups, err
		}
	}
	return groups, nil
}

// spin burns roughly n iterations of integer work and returns a checksum.
func spin(n int) uint64 {
	h := uint64(14695981039346656037)
	for i := 0; i < n; i++ {
		h ^= uint64(i)
		h *= 1099511628211
	}
	return h
}

func named(opts []region.Option, name string) []region.Option {
	out := make([]region.Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, region.WithName(name))
}
