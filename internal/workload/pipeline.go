package workload

import (
	"context"

	"github.com/wesleyorama2/regiontime/region"
)

// pipeline models a request handler: parse, plan, then execute a few scans.
type pipeline struct {
	request *region.Metric
	parse   *region.Metric
	plan    *region.Metric
	execute *region.Metric
	scan    *region.Metric

	// sum keeps the busy loops from being optimised away
	sum uint64
}

func newPipeline(g *region.Group) *pipeline {
	return &pipeline{
		request: g.NewMetric("request"),
		parse:   g.NewMetric("parse"),
		plan:    g.NewMetric("plan"),
		execute: g.NewMetric("execute"),
		scan:    g.NewMetric("scan"),
	}
}

func (p *pipeline) run(ctx context.Context, cfg Config) error {
	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.handle(i, cfg.Work)
	}
	return nil
}

func (p *pipeline) handle(i, work int) {
	size := int64(256 + (i%8)*128)
	g := p.request.Enter()
	defer g.ExitWith(size)

	p.parse.Do(size, func() { p.sum += spin(work) })
	p.plan.Do(0, func() { p.sum += spin(work / 2) })

	rows := 1 + i%4
	p.execute.Do(int64(rows), func() {
		p.sum += spin(work / 4)
		for r := 0; r < rows; r++ {
			p.scan.Do(1, func() { p.sum += spin(work) })
		}
	})

	// Post-processing counts as request self time.
	p.sum += spin(work / 2)
}
