//go:build !noinstrument

package cli

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/regiontime/internal/report"
	"github.com/wesleyorama2/regiontime/region"
)

func restoreThreshold(t *testing.T) {
	t.Helper()
	old := region.WarningThreshold()
	t.Cleanup(func() { region.SetWarningThreshold(old) })
}

func TestRunCmd_PipelineTable(t *testing.T) {
	restoreThreshold(t)

	stdout, _, err := execute(t, "run", "pipeline", "--iterations", "5", "--work", "10", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, stdout, "pipeline: 5 iterations across 1 group(s)")
	for _, name := range []string{"request", "parse", "plan", "execute", "scan"} {
		assert.Contains(t, stdout, name)
	}
	assert.Contains(t, stdout, "metrics, self time")
}

func TestRunCmd_ParallelMergedJSON(t *testing.T) {
	restoreThreshold(t)

	stdout, _, err := execute(t, "run",
		"--workload", "parallel", "--workers", "3", "--iterations", "4", "--work", "10",
		"--merge", "--format", "json", "--sort", "name")
	require.NoError(t, err)

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	require.NotEmpty(t, doc.Metrics)

	byName := map[string]report.Row{}
	for _, row := range doc.Metrics {
		byName[row.Name] = row
	}
	req, ok := byName["request"]
	require.True(t, ok)
	assert.Equal(t, int64(12), req.Invocations)
	assert.Empty(t, req.Group)
	require.NotNil(t, req.Percentiles)
	assert.Equal(t, int64(12), req.Percentiles.Count)
}

func TestRunCmd_RecursiveYAMLWithoutHistogram(t *testing.T) {
	restoreThreshold(t)

	stdout, _, err := execute(t, "run", "recursive", "--depth", "8", "--iterations", "2",
		"--format", "yaml", "--histogram=false")
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: fib")
	assert.NotContains(t, stdout, "percentiles:")
}

func TestRunCmd_ThresholdReportsOverruns(t *testing.T) {
	restoreThreshold(t)

	_, stderr, err := execute(t, "run", "pipeline", "--iterations", "2", "--work", "10",
		"--threshold", "1ns", "--no-color")
	require.NoError(t, err)
	assert.Equal(t, time.Nanosecond, region.WarningThreshold())
	assert.Contains(t, stderr, "overrun: request took")
}

func TestRunCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "run", "pipeline", "extra")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "--iterations", "0")
	assert.Error(t, err)
}
