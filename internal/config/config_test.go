package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/magplot"
)

const jobsYAML = `output_dir: from_file
format: png
device_groups:
  - label: correctors
    devices: ["VKICKER(1)", "HKICKER(1)"]
groups:
  - input: z_shift.csv
    x: z_shift[m]
    x_label: Shift in z [mm]
    x_scale: 1000
  - input: str_shift.csv
    x: Strength_ratio
    x_scale: 100
    metrics:
      - name: d_x
        unit: position
        rms: none
metrics:
  - input: changes_x_shifting.csv
    x: x_shift
  - input: changes_y_shifting.csv
    x: y_shift
    skip: 0
histograms:
  - input: RBEND_variants.csv
    bins: 20
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "magplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "", used)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Empty(t, cfg.Groups)
}

func TestLoadJobs(t *testing.T) {
	path := writeConfig(t, jobsYAML)
	cfg, used, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	require.Len(t, cfg.Groups, 2)
	assert.Equal(t, "z_shift[m]", cfg.Groups[0].X)
	assert.Equal(t, "Shift in z [mm]", cfg.Groups[0].XLabel)
	assert.Equal(t, 1000.0, cfg.Groups[0].XScale)
	require.Len(t, cfg.DeviceGroups, 1)
	assert.Equal(t, []string{"VKICKER(1)", "HKICKER(1)"}, cfg.DeviceGroups[0].Devices)

	require.Len(t, cfg.Metrics, 2)
	assert.Nil(t, cfg.Metrics[0].Skip)
	require.NotNil(t, cfg.Metrics[1].Skip)
	assert.Equal(t, 0, *cfg.Metrics[1].Skip)

	require.Len(t, cfg.Histograms, 1)
	assert.Equal(t, 20, cfg.Histograms[0].Bins)
}

func TestJobs(t *testing.T) {
	cfg, _, err := Load(writeConfig(t, jobsYAML), nil)
	require.NoError(t, err)

	g, err := cfg.GroupJob(cfg.Groups[0])
	require.NoError(t, err)
	assert.Equal(t, "from_file", g.OutDir)
	assert.Nil(t, g.Metrics, "default metrics")
	require.Len(t, g.Groups, 1)
	assert.Equal(t, "correctors", g.Groups[0].Label)

	g, err = cfg.GroupJob(cfg.Groups[1])
	require.NoError(t, err)
	require.Len(t, g.Metrics, 1)
	assert.Equal(t, "Mean(d_x)", g.Metrics[0].Mean)
	assert.Equal(t, "", g.Metrics[0].RMS)
	assert.Equal(t, magplot.Position, g.Metrics[0].Unit)

	m, err := cfg.MetricJob(cfg.Metrics[0])
	require.NoError(t, err)
	assert.Equal(t, magplot.DefaultMetricSkip, m.Skip)
	m, err = cfg.MetricJob(cfg.Metrics[1])
	require.NoError(t, err)
	assert.Equal(t, 0, m.Skip)

	h, err := cfg.HistJob(cfg.Histograms[0])
	require.NoError(t, err)
	assert.Equal(t, magplot.DefaultHistSkip, h.Skip)
	assert.Equal(t, filepath.Join("from_file", magplot.DefaultHistDir), h.OutDir)
	assert.Equal(t, "RBEND_variants.csv", h.Input)
}

func TestMetricSpec(t *testing.T) {
	m, err := MetricSpec{Name: "d_sx", Unit: "angle"}.Metric()
	require.NoError(t, err)
	assert.Equal(t, magplot.NewMetric("d_sx", magplot.Angle), m)

	m, err = MetricSpec{Name: "k", Mean: "MeanK", RMS: "SpreadK"}.Metric()
	require.NoError(t, err)
	assert.Equal(t, "MeanK", m.Mean)
	assert.Equal(t, "SpreadK", m.RMS)

	_, err = MetricSpec{Name: "d_x", Unit: "parsec"}.Metric()
	assert.Error(t, err)
}

func TestPrecedence(t *testing.T) {
	path := writeConfig(t, "output_dir: from_file\nlog_level: warn\n")

	t.Setenv("MAGPLOT_OUTPUT_DIR", "from_env")
	cfg, _, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.OutputDir, "env overrides file")
	assert.Equal(t, "warn", cfg.LogLevel)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output-dir", DefaultOutputDir, "")
	flags.String("log-level", DefaultLogLevel, "")
	require.NoError(t, flags.Set("output-dir", "from_flag"))

	cfg, _, err = Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "from_flag", cfg.OutputDir, "flag overrides env")
	assert.Equal(t, "warn", cfg.LogLevel, "unset flag keeps file value")
}

func TestValidate(t *testing.T) {
	bad := []string{
		"groups:\n  - input: a.csv\n",
		"metrics:\n  - x: x_shift\n",
		"histograms:\n  - input: a.csv\n    bins: -1\n",
		"device_groups:\n  - label: empty\n",
		"format: gif\n",
	}
	for _, content := range bad {
		_, _, err := Load(writeConfig(t, content), nil)
		assert.Error(t, err, content)
	}

	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestExampleConfig(t *testing.T) {
	cfg, _, err := Load(filepath.Join("..", "..", "magplot.example.yaml"), nil)
	require.NoError(t, err)
	assert.Len(t, cfg.Groups, 2)
	assert.Len(t, cfg.Metrics, 2)
	assert.Len(t, cfg.Histograms, 1)
	assert.Equal(t, "Magnet strength [%]", cfg.Groups[1].XLabel)
}
