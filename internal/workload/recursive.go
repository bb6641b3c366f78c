package workload

import (
	"context"

	"github.com/wesleyorama2/regiontime/region"
)

type fibonacci struct {
	iteration *region.Metric
	fib       *region.Metric
	work      int
	sum       uint64
}

func runRecursive(ctx context.Context, g *region.Group, cfg Config) error {
	f := &fibonacci{
		iteration: g.NewMetric("iteration"),
		fib:       g.NewMetric("fib"),
		work:      cfg.Work / 100,
	}

	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		f.iteration.Do(int64(cfg.Depth), func() {
			f.sum += f.calc(cfg.Depth)
		})
	}
	return nil
}

// calc re-enters the fib region once per call.
func (f *fibonacci) calc(n int) uint64 {
	g := f.fib.Enter()
	defer g.ExitWith(1)

	f.sum += spin(f.work)
	if n < 2 {
		return uint64(n)
	}
	return f.calc(n-1) + f.calc(n-2)
}
