package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100*time.Millisecond, time.Duration(cfg.WarningThreshold))
	assert.True(t, cfg.Histogram.Enabled)
	assert.Equal(t, "table", cfg.Report.Format)
	assert.Equal(t, "pipeline", cfg.Workload.Name)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "regiontime.yaml", `
warningThreshold: 5ms
histogram:
  enabled: true
  min: 1us
  max: 10s
  sigFigs: 2
report:
  format: json
  sortBy: self
  merge: true
workload:
  name: parallel
  workers: 8
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Millisecond, time.Duration(cfg.WarningThreshold))
	assert.Equal(t, 10*time.Second, time.Duration(cfg.Histogram.Max))
	assert.Equal(t, 2, cfg.Histogram.SigFigs)
	assert.Equal(t, "json", cfg.Report.Format)
	assert.Equal(t, "self", cfg.Report.SortBy)
	assert.True(t, cfg.Report.Merge)
	assert.Equal(t, "parallel", cfg.Workload.Name)
	assert.Equal(t, 8, cfg.Workload.Workers)

	// Keys absent from the file keep their defaults
	assert.Equal(t, 200, cfg.Workload.Iterations)
	assert.Equal(t, 2000, cfg.Workload.Work)
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeFile(t, "regiontime.json", `{
  "warningThreshold": "250us",
  "report": {"format": "yaml", "sortBy": "calls", "top": 3},
  "workload": {"name": "recursive", "depth": 12, "iterations": 5}
}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Microsecond, time.Duration(cfg.WarningThreshold))
	assert.Equal(t, "yaml", cfg.Report.Format)
	assert.Equal(t, 3, cfg.Report.Top)
	assert.Equal(t, 12, cfg.Workload.Depth)
	assert.Equal(t, 5, cfg.Workload.Iterations)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config file not found")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "bad.yaml", "report: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse YAML config")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "bad.json", "{"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse JSON config")
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "dur.yaml", "warningThreshold: soon"))
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "invalid.yaml", "report:\n  format: xml\n"))
		require.Error(t, err)
		var verrs *ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "report.format", verrs.Errors[0].Field)
	})
}

func TestParseConfig_UnknownExtensionFallsBackToYAML(t *testing.T) {
	cfg, err := ParseConfig([]byte("report:\n  top: 4\n"), "settings.conf")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Report.Top)
}

func TestConfig_MarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "warningThreshold: 100ms")

	cfg, err := ParseConfig(data, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDuration_YAML(t *testing.T) {
	var holder struct {
		D Duration `yaml:"d"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("d: 1h30m"), &holder))
	assert.Equal(t, 90*time.Minute, time.Duration(holder.D))
	assert.Equal(t, "1h30m0s", holder.D.String())
	assert.Equal(t, time.Second, Duration(0).GetDuration(time.Second))
}
