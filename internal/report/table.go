package report

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/wesleyorama2/regiontime/internal/output"
	"github.com/wesleyorama2/regiontime/region"
)

var tableHeader = []any{
	"Metric", "Group", "Calls", "Total", "Self", "Self %", "Avg", "Last", "Quantity", "P50", "P99", "Overruns",
}

func writeTable(w io.Writer, rows []region.Stats, opts Options) error {
	noColor := !output.UseColors(w, opts.NoColor)
	scheme := output.SchemeFor(noColor)

	table := tablewriter.NewWriter(w)
	table.Header(tableHeader...)

	var (
		total int64
		self  time.Duration
	)
	for _, s := range rows {
		p50, p99 := "-", "-"
		if p := s.Percentiles; p != nil {
			p50 = output.FormatDuration(p.P50)
			p99 = output.FormatDuration(p.P99)
		}

		overruns := output.FormatNumber(s.Overruns)
		if s.Overruns > 0 {
			overruns = scheme.Overrun.Sprint(overruns)
		}

		group := s.Group
		if group == "" {
			group = "*"
		}

		if err := table.Append([]string{
			scheme.Name.Sprint(s.Name),
			group,
			output.FormatNumber(s.Calls),
			scheme.Total.Sprint(output.FormatDuration(s.TotalTime)),
			scheme.Self.Sprint(output.FormatDuration(s.TotalSelfTime)),
			output.Percent(s.TotalSelfTime, s.TotalTime),
			output.FormatDuration(s.AverageTime()),
			output.FormatDuration(s.LastTime),
			output.FormatNumber(s.TotalQuantity),
			p50,
			p99,
			overruns,
		}); err != nil {
			return fmt.Errorf("failed to append row %s: %w", s.Name, err)
		}
		total += s.Overruns
		self += s.TotalSelfTime
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	icon := output.InfoIcon(noColor)
	if total > 0 {
		icon = output.WarningIcon(noColor)
	}
	_, err := fmt.Fprintf(w, "%s %d metrics, self time %s, %d overruns above %s\n",
		icon, len(rows), output.FormatDuration(self), total, output.FormatDuration(opts.Threshold))
	return err
}
