package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wesleyorama2/regiontime/internal/config"
	"github.com/wesleyorama2/regiontime/internal/output"
	"github.com/wesleyorama2/regiontime/region"
)

// addSettingsFlags registers the flags that override configuration values.
func addSettingsFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "Configuration file (YAML or JSON)")
	flags.StringP("workload", "w", "", "Workload to run: recursive, pipeline, parallel")
	flags.Int("iterations", 0, "Top-level invocations per goroutine")
	flags.Int("depth", 0, "Recursion depth of the recursive workload")
	flags.Int("workers", 0, "Goroutines of the parallel workload")
	flags.Int("work", 0, "Busy-loop length of each leaf region")
	flags.Duration("threshold", 0, "Warning threshold for a single invocation (e.g. 50ms)")
	flags.StringP("format", "f", "", "Report format: table, json, yaml")
	flags.String("sort", "", "Sort key: total, self, calls, name, registration")
	flags.Int("top", 0, "Only show the first N rows")
	flags.Bool("merge", false, "Merge same-named metrics across goroutine groups")
	flags.Bool("histogram", true, "Record per-metric duration histograms")
	flags.Bool("no-color", false, "Disable colored output")
}

// loadSettings loads the configuration file, if any, and applies flag
// overrides on top. Only flags set on the command line take effect.
func loadSettings(cmd *cobra.Command, args []string) (*config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Workload.Name = args[0]
	}
	if flags.Changed("workload") {
		cfg.Workload.Name, _ = flags.GetString("workload")
	}
	if flags.Changed("iterations") {
		cfg.Workload.Iterations, _ = flags.GetInt("iterations")
	}
	if flags.Changed("depth") {
		cfg.Workload.Depth, _ = flags.GetInt("depth")
	}
	if flags.Changed("workers") {
		cfg.Workload.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("work") {
		cfg.Workload.Work, _ = flags.GetInt("work")
	}
	if flags.Changed("threshold") {
		d, _ := flags.GetDuration("threshold")
		cfg.WarningThreshold = config.Duration(d)
	}
	if flags.Changed("format") {
		cfg.Report.Format, _ = flags.GetString("format")
	}
	if flags.Changed("sort") {
		cfg.Report.SortBy, _ = flags.GetString("sort")
	}
	if flags.Changed("top") {
		cfg.Report.Top, _ = flags.GetInt("top")
	}
	if flags.Changed("merge") {
		cfg.Report.Merge, _ = flags.GetBool("merge")
	}
	if flags.Changed("histogram") {
		cfg.Histogram.Enabled, _ = flags.GetBool("histogram")
	}
	if flags.Changed("no-color") {
		cfg.Report.NoColor, _ = flags.GetBool("no-color")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// regionOptions converts configuration into group options.
func regionOptions(cmd *cobra.Command, cfg *config.Config) []region.Option {
	stderr := cmd.ErrOrStderr()
	opts := []region.Option{
		region.WithWarner(region.NewWriterWarner(stderr, !output.UseColors(stderr, cfg.Report.NoColor))),
	}
	if cfg.Histogram.Enabled {
		defaults := region.DefaultHistogramConfig()
		opts = append(opts, region.WithHistogram(region.HistogramConfig{
			Min:     cfg.Histogram.Min.GetDuration(defaults.Min),
			Max:     cfg.Histogram.Max.GetDuration(defaults.Max),
			SigFigs: cfg.Histogram.SigFigs,
		}))
	}
	return opts
}
