package magplot

import "strings"

// Unit describes how the values of a metric are displayed.
type Unit struct {
	Name  string  // e.g. "mm"
	Scale float64 // Factor applied to the stored values.
	Label string  // Axis label, empty: use the metric column name.
}

var (
	// Position differences are stored in meters and shown in millimeters.
	Position = Unit{Name: "mm", Scale: 1000, Label: "Difference in position [mm]"}

	// Angle differences are stored and shown in microradians.
	Angle = Unit{Name: "urad", Scale: 1, Label: "Difference in angle [urad]"}

	// Raw shows values as stored.
	Raw = Unit{Scale: 1}
)

// UnitByName returns the unit called name ("position", "angle" or "raw").
func UnitByName(name string) (Unit, bool) {
	switch strings.ToLower(name) {
	case "position", "mm":
		return Position, true
	case "angle", "urad":
		return Angle, true
	case "", "raw":
		return Raw, true
	}
	return Unit{}, false
}

// Metric pairs the mean and spread column of one measured quantity.
type Metric struct {
	Name string // Inner name, e.g. "d_x".
	Mean string // e.g. "Mean(d_x)"
	RMS  string // e.g. "RMS(d_x)", empty: no error bars.
	Unit Unit
}

// NewMetric returns the metric for the columns Mean(name) and RMS(name).
func NewMetric(name string, unit Unit) Metric {
	return Metric{
		Name: name,
		Mean: "Mean(" + name + ")",
		RMS:  "RMS(" + name + ")",
		Unit: unit,
	}
}

// YLabel is the axis label for values of m.
func (m Metric) YLabel() string {
	if m.Unit.Label != "" {
		return m.Unit.Label
	}
	return m.Mean
}

func (m Metric) scale() float64 {
	if m.Unit.Scale == 0 {
		return 1
	}
	return m.Unit.Scale
}

// DefaultGroupMetrics are the four panels of a device-group figure.
var DefaultGroupMetrics = []Metric{
	NewMetric("d_x", Position),
	NewMetric("d_y", Position),
	NewMetric("d_sx", Angle),
	NewMetric("d_sy", Angle),
}

// NonZeroColumns returns, in column order, the numerical columns after the
// first skip columns which contain at least one finite non-zero value. NaN
// and infinite values do not count.
func NonZeroColumns(df *DataFrame, skip int) []string {
	if skip < 0 {
		skip = 0
	}
	var names []string
	for j, name := range df.Order {
		if j < skip {
			continue
		}
		f := df.Columns[name]
		if f.Type != Float {
			continue
		}
		for _, x := range f.Data {
			if x != 0 && isFinite(x) {
				names = append(names, name)
				break
			}
		}
	}
	return names
}

// DetectMetrics derives the metrics present in df: every non-zero column
// whose name contains "Mean" is paired with the non-zero "RMS" column of the
// same inner name.
func DetectMetrics(df *DataFrame, skip int) []Metric {
	cols := NonZeroColumns(df, skip)
	rms := make(map[string]string)
	for _, c := range cols {
		if strings.Contains(c, "RMS") {
			rms[innerName(c)] = c
		}
	}

	var metrics []Metric
	for _, c := range cols {
		if !strings.Contains(c, "Mean") {
			continue
		}
		name := innerName(c)
		metrics = append(metrics, Metric{
			Name: name,
			Mean: c,
			RMS:  rms[name],
			Unit: Raw,
		})
	}
	return metrics
}

// innerName extracts "d_x" from "Mean(d_x)". Names without parentheses are
// returned with "Mean" and "RMS" removed.
func innerName(col string) string {
	if i := strings.Index(col, "("); i != -1 {
		if j := strings.LastIndex(col, ")"); j > i {
			return col[i+1 : j]
		}
	}
	r := strings.NewReplacer("Mean", "", "RMS", "")
	return strings.Trim(r.Replace(col), "_ -")
}
