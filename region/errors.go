package region

import (
	"fmt"

	"github.com/pkg/errors"
)

// StackError describes a Stop that did not match the innermost running
// metric of its group. It is raised with panic, wrapped with a stack trace.
type StackError struct {
	Group  string
	Metric string
	// Top is the metric actually on top of the stack, empty if none was running
	Top   string
	Depth int
}

func (e *StackError) Error() string {
	if e.Top == "" {
		return fmt.Sprintf("region: stop %q with no running metric in group %q", e.Metric, e.Group)
	}
	return fmt.Sprintf("region: stop %q while %q is innermost in group %q (depth %d)",
		e.Metric, e.Top, e.Group, e.Depth)
}

// failStack aborts the caller. Mismatched Start/Stop pairs would corrupt
// every later measurement of the group.
func failStack(e *StackError) {
	panic(errors.WithStack(e))
}

// AsStackError extracts a *StackError from a recovered panic value.
func AsStackError(v interface{}) (*StackError, bool) {
	err, ok := v.(error)
	if !ok {
		return nil, false
	}
	se, ok := errors.Cause(err).(*StackError)
	return se, ok
}
