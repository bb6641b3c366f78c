//go:build !noinstrument

package workload

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/regiontime/region"
)

func statsByName(t *testing.T, g *region.Group) map[string]region.Stats {
	t.Helper()
	out := make(map[string]region.Stats)
	for _, s := range g.Stats() {
		out[s.Name] = s
	}
	return out
}

// Every tick between the root's start and stop belongs to exactly one
// metric's self time.
func assertSelfTimeConserved(t *testing.T, g *region.Group, root string) {
	t.Helper()
	var self time.Duration
	stats := statsByName(t, g)
	for _, s := range stats {
		self += s.TotalSelfTime
	}
	assert.Equal(t, stats[root].TotalTime, self)
}

func TestRun_Recursive(t *testing.T) {
	res, err := Run(context.Background(), "recursive", Config{Iterations: 3, Depth: 5, Work: 100},
		region.WithWarner(nil))
	require.NoError(t, err)
	require.Len(t, res.Groups, 1)
	g := res.Groups[0]
	assert.Equal(t, "main", g.Name())
	assert.Equal(t, 0, g.Depth())

	stats := statsByName(t, g)
	fib := stats["fib"]
	// fib(5) makes 15 calls, and only the outermost one is an invocation.
	assert.Equal(t, int64(45), fib.Calls)
	assert.Equal(t, int64(45), fib.TotalQuantity)
	assert.Equal(t, int64(3), fib.Invocations)
	assert.LessOrEqual(t, fib.TotalTime, stats["iteration"].TotalTime)
	assert.Equal(t, int64(15), stats["iteration"].TotalQuantity)

	assertSelfTimeConserved(t, g, "iteration")
}

func TestRun_Pipeline(t *testing.T) {
	res, err := Run(context.Background(), "pipeline", Config{Iterations: 8, Work: 200},
		region.WithWarner(nil), region.WithHistogram(region.DefaultHistogramConfig()))
	require.NoError(t, err)
	require.Len(t, res.Groups, 1)
	assert.Positive(t, res.Elapsed)

	stats := statsByName(t, res.Groups[0])
	require.Len(t, stats, 5)
	assert.Equal(t, int64(8), stats["request"].Calls)
	assert.Equal(t, int64(8), stats["parse"].Calls)
	// rows cycle 1,2,3,4 so two rounds scan 20 times
	assert.Equal(t, int64(20), stats["scan"].Calls)
	assert.Equal(t, int64(20), stats["execute"].TotalQuantity)
	assert.Equal(t, stats["request"].TotalQuantity, stats["parse"].TotalQuantity)

	req := stats["request"]
	assert.Less(t, req.TotalSelfTime, req.TotalTime)
	require.NotNil(t, req.Percentiles)
	assert.Equal(t, int64(8), req.Percentiles.Count)

	assertSelfTimeConserved(t, res.Groups[0], "request")
}

func TestRun_Parallel(t *testing.T) {
	res, err := Run(context.Background(), "parallel", Config{Iterations: 50, Workers: 4, Work: 50},
		region.WithWarner(nil))
	require.NoError(t, err)
	require.Len(t, res.Groups, 4)

	for i, g := range res.Groups {
		assert.Equal(t, 0, g.Depth())
		stats := statsByName(t, g)
		assert.Equal(t, int64(50), stats["request"].Calls, "worker %d", i)
		assertSelfTimeConserved(t, g, "request")
	}
	assert.Len(t, res.Stats(), 20)
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(context.Background(), "bogus", Config{Iterations: 1})
	assert.EqualError(t, err, "unknown workload: bogus")

	_, err = Run(context.Background(), "pipeline", Config{})
	assert.Error(t, err)

	_, err = Run(context.Background(), "parallel", Config{Iterations: 1})
	assert.Error(t, err)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			res, err := Run(ctx, name, Config{Iterations: 10, Depth: 3, Workers: 2}, region.WithWarner(nil))
			assert.ErrorIs(t, err, context.Canceled)
			require.NotNil(t, res)
			for _, g := range res.Groups {
				assert.Equal(t, 0, g.Depth(), "no region is left running")
			}
		})
	}
}

func TestSpin(t *testing.T) {
	assert.Equal(t, spin(10), spin(10))
	assert.NotEqual(t, spin(10), spin(11))
}
