package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		fields []string
	}{
		{
			name:   "default",
			mutate: func(c *Config) {},
		},
		{
			name:   "negative threshold",
			mutate: func(c *Config) { c.WarningThreshold = -1 },
			fields: []string{"warningThreshold"},
		},
		{
			name: "histogram bounds",
			mutate: func(c *Config) {
				c.Histogram.Min = 0
				c.Histogram.Max = 0
				c.Histogram.SigFigs = 9
			},
			fields: []string{"histogram.min", "histogram.max", "histogram.sigFigs"},
		},
		{
			name: "disabled histogram is not checked",
			mutate: func(c *Config) {
				c.Histogram = HistogramConfig{Enabled: false}
			},
		},
		{
			name: "report",
			mutate: func(c *Config) {
				c.Report.Format = "csv"
				c.Report.SortBy = "p99"
				c.Report.Top = -2
			},
			fields: []string{"report.format", "report.sortBy", "report.top"},
		},
		{
			name:   "unknown workload",
			mutate: func(c *Config) { c.Workload.Name = "fuzz" },
			fields: []string{"workload.name"},
		},
		{
			name: "recursive depth",
			mutate: func(c *Config) {
				c.Workload.Name = "recursive"
				c.Workload.Depth = 64
			},
			fields: []string{"workload.depth"},
		},
		{
			name: "parallel workers",
			mutate: func(c *Config) {
				c.Workload.Name = "parallel"
				c.Workload.Workers = 0
				c.Workload.Iterations = 0
			},
			fields: []string{"workload.iterations", "workload.workers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()

			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			var got []string
			for _, e := range verrs.Errors {
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := &ValidationErrors{}
	assert.Equal(t, "no validation errors", errs.Error())
	assert.False(t, errs.HasErrors())

	errs.Add("report.top", "must not be negative")
	assert.Equal(t, "validation error on field 'report.top': must not be negative", errs.Error())

	errs.Add("", "something else")
	assert.Contains(t, errs.Error(), "2 validation errors:")
	assert.Contains(t, errs.Error(), "2. validation error: something else")
}
