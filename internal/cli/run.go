package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/regiontime/internal/output"
	"github.com/wesleyorama2/regiontime/internal/report"
	"github.com/wesleyorama2/regiontime/internal/workload"
	"github.com/wesleyorama2/regiontime/region"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [workload]",
		Short: "Run an instrumented workload and print its region report",
		Long: `Run one of the built-in instrumented workloads and print a report of every
region it timed.

Workloads:
  recursive  recursive Fibonacci timed by a single metric
  pipeline   nested request, parse, plan, execute and scan regions
  parallel   the pipeline on several goroutines, one group each

Examples:
  regiontime run recursive --depth 18
  regiontime run parallel --workers 8 --merge --sort self
  regiontime run --config regiontime.yaml --format json`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: workload.Names(),
		RunE:      runWorkload,
	}
	addSettingsFlags(cmd.Flags())
	return cmd
}

func runWorkload(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}

	threshold := cfg.WarningThreshold.GetDuration(region.DefaultWarningThreshold)
	region.SetWarningThreshold(threshold)

	w := cfg.Workload
	res, err := workload.Run(cmd.Context(), w.Name, workload.Config{
		Iterations: w.Iterations,
		Depth:      w.Depth,
		Workers:    w.Workers,
		Work:       w.Work,
	}, regionOptions(cmd, cfg)...)
	if err != nil {
		return fmt.Errorf("workload %s failed: %w", w.Name, err)
	}

	out := cmd.OutOrStdout()
	format := strings.ToLower(cfg.Report.Format)
	if format == "" || format == "table" {
		fmt.Fprintf(out, "%s %s: %d iterations across %d group(s) in %s\n",
			output.InfoIcon(!output.UseColors(out, cfg.Report.NoColor)),
			res.Name, w.Iterations, len(res.Groups), output.FormatDuration(res.Elapsed))
		if !region.Enabled {
			fmt.Fprintln(out, "instrumentation is compiled out (noinstrument build tag)")
		}
	}

	return report.Write(out, report.Collect(res.Groups, cfg.Report.Merge), report.Options{
		Format:    cfg.Report.Format,
		SortBy:    cfg.Report.SortBy,
		Top:       cfg.Report.Top,
		NoColor:   cfg.Report.NoColor,
		Threshold: threshold,
	})
}
