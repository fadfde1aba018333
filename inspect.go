package magplot

import "github.com/vdobler/magplot/stat"

// Summary describes what the plotters would find in a data frame.
type Summary struct {
	Name    string
	Rows    int
	Columns []string
	Devices []string // Empty if the frame has no device column.
	Metrics []MetricSummary
}

// MetricSummary is the range of the mean values of one detected metric.
type MetricSummary struct {
	Metric
	Count    int // Rows with a finite mean.
	Min, Max float64
	Bins     []stat.BinnedData // Distribution of the finite means, if requested.
}

// Inspect summarizes df, detecting metrics after the first skip columns.
// If bins is positive the finite mean values of every metric are binned
// like PlotHistograms would do.
func Inspect(df *DataFrame, skip, bins int) (Summary, error) {
	s := Summary{
		Name:    df.Name,
		Rows:    df.N,
		Columns: append([]string(nil), df.Order...),
	}
	if df.Has(DeviceColumn) && df.Columns[DeviceColumn].Discrete() {
		devices, err := Uniques(df, DeviceColumn)
		if err != nil {
			return s, err
		}
		s.Devices = devices
	}

	for _, m := range DetectMetrics(df, skip) {
		min, max, _, _, err := MinMax(df, m.Mean)
		if err != nil {
			return s, err
		}
		ms := MetricSummary{
			Metric: m,
			Count:  finite(df.Columns[m.Mean].Data),
			Min:    min,
			Max:    max,
		}
		if bins > 0 && ms.Count > 0 {
			h, err := Histogram(df, m.Mean, bins)
			if err != nil {
				return s, err
			}
			ms.Bins = stat.Summarize(h)
		}
		s.Metrics = append(s.Metrics, ms)
	}
	return s, nil
}
