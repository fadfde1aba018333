package magplot

import (
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go-hep.org/x/hep/hbook"

	"github.com/vdobler/magplot/geom"
	"github.com/vdobler/magplot/stat"
)

const (
	// DefaultHistSkip is the number of leading identifier columns of a
	// variants data file.
	DefaultHistSkip = 7

	// DefaultBins is the number of histogram bins.
	DefaultBins = 15

	// DefaultHistDir receives the histograms.
	DefaultHistDir = "pics_csv_data"
)

// HistJob describes the histograms of one data file.
type HistJob struct {
	Input   string   // Name of the data file, used to name the outputs. Empty: df.Name.
	Skip    int      // Leading columns ignored by metric detection; 0 skips none, see DefaultHistSkip.
	Bins    int      // 0: DefaultBins.
	Metrics []Metric // Only Mean is used. Nil: DetectMetrics(df, Skip).

	OutDir string // Empty: DefaultHistDir.
	Format string
	Theme  Theme // Unset fields default to HistTheme.
}

// PlotHistograms draws a histogram of the finite values of every metric.
// Metrics without any finite value are skipped.
func PlotHistograms(df *DataFrame, job HistJob) ([]string, error) {
	if job.Input == "" {
		job.Input = df.Name
	}
	if job.Bins <= 0 {
		job.Bins = DefaultBins
	}
	if job.OutDir == "" {
		job.OutDir = DefaultHistDir
	}
	job.Theme = job.Theme.merge(HistTheme)
	metrics := job.Metrics
	if metrics == nil {
		metrics = DetectMetrics(df, job.Skip)
	}

	var written []string
	for _, m := range metrics {
		log := logrus.WithFields(logrus.Fields{"data": df.Name, "metric": m.Mean})
		h, err := Histogram(df, m.Mean, job.Bins)
		if pkgerrors.Is(err, stat.ErrNoValues) {
			log.Warn("No finite values, histogram skipped")
			continue
		}
		if err != nil {
			return written, err
		}
		log.WithFields(logrus.Fields{
			"entries": h.Entries(),
			"mean":    h.XMean(),
		}).Debug("Histogram filled")

		fig, err := HistFigure(h, m.Mean, job.Theme)
		if err != nil {
			return written, err
		}
		path := HistFileName(job.OutDir, job.Input, m.Mean, job.Format)
		if err := fig.Save(path, job.Format); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// Histogram bins the finite values of column into n bins.
func Histogram(df *DataFrame, column string, n int) (*hbook.H1D, error) {
	rows, err := DropNonFinite(df, column)
	if err != nil {
		return nil, err
	}
	h, err := stat.Bin(rows.Columns[column].Data, n)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "column %q", column)
	}
	return h, nil
}

// HistFigure builds the figure showing h.
func HistFigure(h *hbook.H1D, xlabel string, theme Theme) (*Figure, error) {
	fill, err := String2Color(theme.Fill)
	if err != nil {
		return nil, err
	}
	line, err := String2Color(theme.Line)
	if err != nil {
		return nil, err
	}
	fig := NewFigure("", 1, 1, theme)
	panel := fig.Panels[0]
	panel.HEP = true
	panel.XLabel = xlabel
	panel.YLabel = "Probability density"
	panel.AddPlotter(geom.Histogram(h, fill, line))
	return fig, nil
}

// finite counts the finite values of data.
func finite(data []float64) int {
	n := 0
	for _, x := range data {
		if isFinite(x) {
			n++
		}
	}
	return n
}
