// Package config loads the plotting jobs of magplot.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vdobler/magplot"
)

// Config is the complete configuration of a magplot run.
type Config struct {
	LogLevel  string `koanf:"log_level" yaml:"log_level"`
	OutputDir string `koanf:"output_dir" yaml:"output_dir"`
	Format    string `koanf:"format" yaml:"format"`

	// DeviceGroups replaces the built-in device groups of all group jobs
	// which do not list their own.
	DeviceGroups []magplot.DeviceGroup `koanf:"device_groups" yaml:"device_groups,omitempty"`

	Groups     []GroupConfig  `koanf:"groups" yaml:"groups,omitempty"`
	Metrics    []MetricConfig `koanf:"metrics" yaml:"metrics,omitempty"`
	Histograms []HistConfig   `koanf:"histograms" yaml:"histograms,omitempty"`
}

// MetricSpec declares one metric explicitly.
type MetricSpec struct {
	Name string `koanf:"name" yaml:"name"`
	Mean string `koanf:"mean" yaml:"mean,omitempty"` // Empty: Mean(<name>).
	RMS  string `koanf:"rms" yaml:"rms,omitempty"`   // Empty: RMS(<name>).
	Unit string `koanf:"unit" yaml:"unit,omitempty"` // position, angle or raw.
}

// GroupConfig is a device-group plotting job.
type GroupConfig struct {
	Input   string                `koanf:"input" yaml:"input"`
	X       string                `koanf:"x" yaml:"x"`
	XLabel  string                `koanf:"x_label" yaml:"x_label,omitempty"`
	XScale  float64               `koanf:"x_scale" yaml:"x_scale,omitempty"`
	Groups  []magplot.DeviceGroup `koanf:"device_groups" yaml:"device_groups,omitempty"`
	Metrics []MetricSpec          `koanf:"metrics" yaml:"metrics,omitempty"`
}

// MetricConfig is a per-metric plotting job.
type MetricConfig struct {
	Input   string       `koanf:"input" yaml:"input"`
	X       string       `koanf:"x" yaml:"x"`
	Skip    *int         `koanf:"skip" yaml:"skip,omitempty"`
	Metrics []MetricSpec `koanf:"metrics" yaml:"metrics,omitempty"`
}

// HistConfig is a histogram job.
type HistConfig struct {
	Input     string       `koanf:"input" yaml:"input"`
	Skip      *int         `koanf:"skip" yaml:"skip,omitempty"`
	Bins      int          `koanf:"bins" yaml:"bins,omitempty"`
	OutputDir string       `koanf:"output_dir" yaml:"output_dir,omitempty"`
	Metrics   []MetricSpec `koanf:"metrics" yaml:"metrics,omitempty"`
}

// Metric converts s.
func (s MetricSpec) Metric() (magplot.Metric, error) {
	unit, ok := magplot.UnitByName(s.Unit)
	if !ok {
		return magplot.Metric{}, fmt.Errorf("metric %s: unknown unit %q", s.Name, s.Unit)
	}
	m := magplot.NewMetric(s.Name, unit)
	if s.Mean != "" {
		m.Mean = s.Mean
	}
	if s.RMS != "" {
		m.RMS = s.RMS
	}
	if strings.EqualFold(s.RMS, "none") {
		m.RMS = ""
	}
	return m, nil
}

// metrics converts specs; no specs give nil, i.e. the default metrics.
func metrics(specs []MetricSpec) ([]magplot.Metric, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	ms := make([]magplot.Metric, 0, len(specs))
	for _, s := range specs {
		m, err := s.Metric()
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}

// GroupJob builds the job of g.
func (c *Config) GroupJob(g GroupConfig) (magplot.GroupJob, error) {
	ms, err := metrics(g.Metrics)
	if err != nil {
		return magplot.GroupJob{}, err
	}
	groups := g.Groups
	if len(groups) == 0 {
		groups = c.DeviceGroups
	}
	if len(groups) == 0 {
		groups = nil
	}
	return magplot.GroupJob{
		X:       g.X,
		XLabel:  g.XLabel,
		XScale:  g.XScale,
		Groups:  groups,
		Metrics: ms,
		OutDir:  c.OutputDir,
		Format:  c.Format,
	}, nil
}

// MetricJob builds the job of m.
func (c *Config) MetricJob(m MetricConfig) (magplot.MetricJob, error) {
	ms, err := metrics(m.Metrics)
	if err != nil {
		return magplot.MetricJob{}, err
	}
	skip := magplot.DefaultMetricSkip
	if m.Skip != nil {
		skip = *m.Skip
	}
	return magplot.MetricJob{
		X:       m.X,
		Skip:    skip,
		Metrics: ms,
		OutDir:  c.OutputDir,
		Format:  c.Format,
	}, nil
}

// HistJob builds the job of h.
func (c *Config) HistJob(h HistConfig) (magplot.HistJob, error) {
	ms, err := metrics(h.Metrics)
	if err != nil {
		return magplot.HistJob{}, err
	}
	skip := magplot.DefaultHistSkip
	if h.Skip != nil {
		skip = *h.Skip
	}
	dir := h.OutputDir
	if dir == "" {
		dir = filepath.Join(c.OutputDir, magplot.DefaultHistDir)
	}
	return magplot.HistJob{
		Input:   h.Input,
		Skip:    skip,
		Bins:    h.Bins,
		Metrics: ms,
		OutDir:  dir,
		Format:  c.Format,
	}, nil
}

// Validate checks that every job names its input and x column.
func (c *Config) Validate() error {
	for i, g := range c.Groups {
		if g.Input == "" || g.X == "" {
			return fmt.Errorf("groups[%d]: input and x are required", i)
		}
	}
	for i, m := range c.Metrics {
		if m.Input == "" || m.X == "" {
			return fmt.Errorf("metrics[%d]: input and x are required", i)
		}
	}
	for i, h := range c.Histograms {
		if h.Input == "" {
			return fmt.Errorf("histograms[%d]: input is required", i)
		}
		if h.Bins < 0 {
			return fmt.Errorf("histograms[%d]: bins must not be negative", i)
		}
	}
	for i, g := range c.DeviceGroups {
		if len(g.Devices) == 0 {
			return fmt.Errorf("device_groups[%d]: no devices", i)
		}
	}
	switch strings.ToLower(c.Format) {
	case "", "png", "jpg", "jpeg", "tif", "tiff":
	default:
		return fmt.Errorf("unsupported format %q", c.Format)
	}
	return nil
}
