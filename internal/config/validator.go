package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks the whole configuration.
//
// Returns nil if valid, or a *ValidationErrors containing every problem found.
func (c *Config) Validate() error {
	errs := &ValidationErrors{}

	if c.WarningThreshold < 0 {
		errs.Add("warningThreshold", "must not be negative")
	}

	validateHistogram(&c.Histogram, errs)
	validateReport(&c.Report, errs)
	validateWorkload(&c.Workload, errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateHistogram(h *HistogramConfig, errs *ValidationErrors) {
	if !h.Enabled {
		return
	}
	if h.Min <= 0 {
		errs.Add("histogram.min", "must be positive")
	}
	if h.Max <= h.Min {
		errs.Add("histogram.max", fmt.Sprintf("must be greater than min (%s)", h.Min))
	}
	if h.SigFigs < 1 || h.SigFigs > 5 {
		errs.Add("histogram.sigFigs", "must be between 1 and 5")
	}
}

func validateReport(r *ReportConfig, errs *ValidationErrors) {
	if !oneOf(r.Format, Formats) {
		errs.Add("report.format", fmt.Sprintf("unknown format %q (valid: %s)", r.Format, strings.Join(Formats, ", ")))
	}
	if !oneOf(r.SortBy, SortKeys) {
		errs.Add("report.sortBy", fmt.Sprintf("unknown sort key %q (valid: %s)", r.SortBy, strings.Join(SortKeys, ", ")))
	}
	if r.Top < 0 {
		errs.Add("report.top", "must not be negative")
	}
}

func validateWorkload(w *WorkloadConfig, errs *ValidationErrors) {
	if !oneOf(w.Name, Workloads) {
		errs.Add("workload.name", fmt.Sprintf("unknown workload %q (valid: %s)", w.Name, strings.Join(Workloads, ", ")))
		return
	}
	if w.Iterations <= 0 {
		errs.Add("workload.iterations", "must be positive")
	}
	if w.Work < 0 {
		errs.Add("workload.work", "must not be negative")
	}

	switch w.Name {
	case "recursive":
		if w.Depth < 1 || w.Depth > 32 {
			errs.Add("workload.depth", "must be between 1 and 32")
		}
	case "parallel":
		if w.Workers < 1 {
			errs.Add("workload.workers", "must be at least 1")
		}
	}
}

func oneOf(s string, valid []string) bool {
	for _, v := range valid {
		if s == v {
			return true
		}
	}
	return false
}
