package magplot

import (
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GroupJob describes the device-group figures of one data file.
type GroupJob struct {
	X      string  // Column of the independent variable.
	XLabel string  // Label of the x axis, empty: X.
	XScale float64 // Factor applied to X for display, 0: none.

	DeviceColumn string        // Empty: DeviceColumn.
	Groups       []DeviceGroup // Nil: DefaultDeviceGroups.
	Metrics      []Metric      // One panel each, nil: DefaultGroupMetrics.

	OutDir string // Empty: current directory.
	Format string // Image format, empty: png.
	Theme  Theme  // Unset fields default to GroupTheme.
}

func (job GroupJob) withDefaults() GroupJob {
	if job.XLabel == "" {
		job.XLabel = job.X
	}
	if job.DeviceColumn == "" {
		job.DeviceColumn = DeviceColumn
	}
	if job.Groups == nil {
		job.Groups = DefaultDeviceGroups
	}
	if job.Metrics == nil {
		job.Metrics = DefaultGroupMetrics
	}
	job.Theme = job.Theme.merge(GroupTheme)
	return job
}

// PlotGroups draws one figure per device group with one panel per metric;
// each device of the group is one error-bar series in every panel. The
// written files are returned. Processing stops at the first failing group:
// figures already written stay, the failing one is not written.
func PlotGroups(df *DataFrame, job GroupJob) ([]string, error) {
	job = job.withDefaults()

	var written []string
	for _, group := range job.Groups {
		fig, err := GroupFigure(df, job, group)
		if err != nil {
			return written, pkgerrors.Wrapf(err, "group %s", group.label())
		}
		path := GroupFileName(job.OutDir, job.X, group.label(), job.Format)
		if err := fig.Save(path, job.Format); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// GroupFigure builds the figure of one device group without saving it.
func GroupFigure(df *DataFrame, job GroupJob, group DeviceGroup) (*Figure, error) {
	job = job.withDefaults()
	log := logrus.WithFields(logrus.Fields{
		"data":  df.Name,
		"group": group.label(),
	})

	styles, err := NewStyleMap(group.Devices, job.Theme)
	if err != nil {
		return nil, err
	}

	rows, cols := gridShape(len(job.Metrics))
	fig := NewFigure(job.X+" "+group.label(), rows, cols, job.Theme)
	for i, m := range job.Metrics {
		panel := fig.Panels[i]
		panel.Title = m.Mean
		panel.XLabel = job.XLabel
		panel.YLabel = m.YLabel()
		panel.Legend = i == 0
		if err := checkColumns(df, SeriesSpec{X: job.X, Metric: m}); err != nil {
			return nil, err
		}
	}

	var keys []LegendKey
	for _, device := range group.Devices {
		sub, err := Filter(df, job.DeviceColumn, device)
		if err != nil {
			return nil, err
		}
		if sub.N == 0 {
			log.WithField("device", device).Debug("Device not in data, skipped")
			continue
		}
		drawn := false
		for i, m := range job.Metrics {
			spec := SeriesSpec{
				DeviceColumn: job.DeviceColumn,
				Device:       device,
				X:            job.X,
				XScale:       job.XScale,
				Metric:       m,
			}
			s := series(sub, spec)
			if s.Len() == 0 {
				log.WithFields(logrus.Fields{
					"device": device,
					"metric": m.Mean,
				}).Debug("No finite values, skipped")
				continue
			}
			fig.Panels[i].AddSeries(s, styles.Geom(device, job.Theme))
			drawn = true
		}
		if drawn {
			keys = append(keys, LegendKey{Name: device, Style: styles.Geom(device, job.Theme)})
		}
	}
	// The first panel's legend lists every device drawn in any panel.
	fig.Panels[0].Keys = keys
	return fig, nil
}
