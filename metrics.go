package magplot

import (
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultMetricSkip is the number of leading identifier columns of a
// per-metric data file which never hold metrics.
const DefaultMetricSkip = 6

// MetricJob describes the per-metric figures of one data file.
type MetricJob struct {
	X            string   // Column of the independent variable.
	DeviceColumn string   // Empty: DeviceColumn.
	Skip         int      // Leading columns ignored by metric detection; 0 skips none, see DefaultMetricSkip.
	Metrics      []Metric // Nil: DetectMetrics(df, Skip).

	OutDir string
	Format string
	Theme  Theme // Unset fields default to MetricTheme.
}

// PlotMetrics draws one figure per metric overlaying the series of all
// devices found in the data, in order of appearance.
func PlotMetrics(df *DataFrame, job MetricJob) ([]string, error) {
	if job.DeviceColumn == "" {
		job.DeviceColumn = DeviceColumn
	}
	job.Theme = job.Theme.merge(MetricTheme)
	metrics := job.Metrics
	if metrics == nil {
		metrics = DetectMetrics(df, job.Skip)
	}
	log := logrus.WithField("data", df.Name)
	if len(metrics) == 0 {
		log.Warn("No metrics with non-zero values found")
		return nil, nil
	}

	devices, err := Uniques(df, job.DeviceColumn)
	if err != nil {
		return nil, err
	}
	styles, err := NewStyleMap(devices, job.Theme)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, m := range metrics {
		fig, err := MetricFigure(df, job, m, devices, styles)
		if err != nil {
			return written, pkgerrors.Wrapf(err, "metric %s", m.Mean)
		}
		path := MetricFileName(job.OutDir, job.X, m.Mean, job.Format)
		if err := fig.Save(path, job.Format); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// MetricFigure builds the figure of metric m without saving it.
func MetricFigure(df *DataFrame, job MetricJob, m Metric, devices []string, styles StyleMap) (*Figure, error) {
	if err := checkColumns(df, SeriesSpec{X: job.X, Metric: m}); err != nil {
		return nil, err
	}
	fig := NewFigure("", 1, 1, job.Theme)
	panel := fig.Panels[0]
	panel.XLabel = job.X
	panel.YLabel = m.YLabel()
	panel.Legend = true

	for _, device := range devices {
		s, err := Series(df, SeriesSpec{
			DeviceColumn: job.DeviceColumn,
			Device:       device,
			X:            job.X,
			Metric:       m,
		})
		if err != nil {
			return nil, err
		}
		if s.Len() == 0 {
			continue
		}
		panel.AddSeries(s, styles.Geom(device, job.Theme))
	}
	return fig, nil
}
