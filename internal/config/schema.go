// Package config loads the settings of the regiontime command.
package config

import (
	"time"
)

// Config is the root configuration.
//
// Example YAML:
//
//	warningThreshold: 50ms
//	histogram:
//	  enabled: true
//	  min: 1us
//	  max: 1m
//	report:
//	  format: table
//	  sortBy: self
//	workload:
//	  name: parallel
//	  iterations: 500
//	  workers: 4
type Config struct {
	// WarningThreshold is the inclusive duration above which an invocation is an overrun
	WarningThreshold Duration `json:"warningThreshold,omitempty" yaml:"warningThreshold,omitempty"`

	// Histogram controls per-metric duration histograms
	Histogram HistogramConfig `json:"histogram,omitempty" yaml:"histogram,omitempty"`

	// Report controls how statistics are rendered
	Report ReportConfig `json:"report,omitempty" yaml:"report,omitempty"`

	// Workload selects the synthetic instrumented workload
	Workload WorkloadConfig `json:"workload,omitempty" yaml:"workload,omitempty"`
}

// HistogramConfig bounds the per-metric HDR histograms.
type HistogramConfig struct {
	Enabled bool     `json:"enabled" yaml:"enabled"`
	Min     Duration `json:"min,omitempty" yaml:"min,omitempty"`
	Max     Duration `json:"max,omitempty" yaml:"max,omitempty"`
	SigFigs int      `json:"sigFigs,omitempty" yaml:"sigFigs,omitempty"`
}

// ReportConfig controls report rendering.
type ReportConfig struct {
	// Format is one of "table", "json", "yaml"
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// SortBy is one of "total", "self", "calls", "name", "registration"
	SortBy string `json:"sortBy,omitempty" yaml:"sortBy,omitempty"`

	// Top limits the number of rows, 0 for all
	Top int `json:"top,omitempty" yaml:"top,omitempty"`

	// Merge folds same-named metrics of different groups into one row
	Merge bool `json:"merge,omitempty" yaml:"merge,omitempty"`

	NoColor bool `json:"noColor,omitempty" yaml:"noColor,omitempty"`
}

// WorkloadConfig selects the synthetic workload run by the CLI.
type WorkloadConfig struct {
	// Name is one of "recursive", "pipeline", "parallel"
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Iterations is the number of top-level invocations
	Iterations int `json:"iterations,omitempty" yaml:"iterations,omitempty"`

	// Depth is the recursion depth of the recursive workload
	Depth int `json:"depth,omitempty" yaml:"depth,omitempty"`

	// Workers is the goroutine count of the parallel workload
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`

	// Work is the amount of CPU work done inside each leaf region
	Work int `json:"work,omitempty" yaml:"work,omitempty"`
}

// Formats, sort keys and workloads understood by the command.
var (
	Formats   = []string{"table", "json", "yaml"}
	SortKeys  = []string{"total", "self", "calls", "name", "registration"}
	Workloads = []string{"recursive", "pipeline", "parallel"}
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		WarningThreshold: Duration(100 * time.Millisecond),
		Histogram: HistogramConfig{
			Enabled: true,
			Min:     Duration(time.Microsecond),
			Max:     Duration(time.Hour),
			SigFigs: 3,
		},
		Report: ReportConfig{
			Format: "table",
			SortBy: "total",
		},
		Workload: WorkloadConfig{
			Name:       "pipeline",
			Iterations: 200,
			Depth:      20,
			Workers:    4,
			Work:       2000,
		},
	}
}

// Duration is a time.Duration that marshals as a string like "250ms".
type Duration time.Duration

// ParseDuration parses a duration string (e.g., "30s", "2m", "1h30m").
func ParseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}

// GetDuration returns the duration or a default if empty.
func (d Duration) GetDuration(defaultValue time.Duration) time.Duration {
	if d == 0 {
		return defaultValue
	}
	return time.Duration(d)
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	// Remove quotes if present
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" || s == "null" {
		*d = 0
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	if s == "" {
		*d = 0
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// String returns the duration as a string.
func (d Duration) String() string {
	return time.Duration(d).String()
}
