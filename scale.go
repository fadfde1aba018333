package magplot

import (
	"math"

	"github.com/vdobler/magplot/geom"
)

// ScaleTransform maps stored values to displayed values.
type ScaleTransform struct {
	Trans func(float64) float64
}

// Linear returns the transform x -> factor*x. A zero factor is the identity.
func Linear(factor float64) ScaleTransform {
	if factor == 0 || factor == 1 {
		return IdentityScale
	}
	return ScaleTransform{
		Trans: func(x float64) float64 { return factor * x },
	}
}

var IdentityScale = ScaleTransform{
	Trans: func(x float64) float64 { return x },
}

// Apply transforms data in place.
func (st ScaleTransform) Apply(data []float64) {
	for i, x := range data {
		data[i] = st.Trans(x)
	}
}

// SeriesSpec selects the values of one error-bar series.
type SeriesSpec struct {
	DeviceColumn string  // Column identifying the device, empty: DeviceColumn.
	Device       string  // Device whose rows are used.
	X            string  // Column of the independent variable.
	XScale       float64 // Factor applied to X, 0: none.
	Metric       Metric  // Mean and RMS columns; the unit scales both.
}

// checkColumns makes sure all columns needed by spec are present and
// numerical.
func checkColumns(df *DataFrame, spec SeriesSpec) error {
	if _, err := df.Values(spec.X); err != nil {
		return err
	}
	if _, err := df.Values(spec.Metric.Mean); err != nil {
		return err
	}
	if spec.Metric.RMS != "" {
		if _, err := df.Values(spec.Metric.RMS); err != nil {
			return err
		}
	}
	return nil
}

// Series extracts the scaled error-bar series selected by spec. Rows where
// x or the mean is NaN or infinite are skipped, a non-finite spread draws no
// error bar. A device without rows yields an empty series.
func Series(df *DataFrame, spec SeriesSpec) (geom.Series, error) {
	if spec.DeviceColumn == "" {
		spec.DeviceColumn = DeviceColumn
	}
	if err := checkColumns(df, spec); err != nil {
		return geom.Series{}, err
	}
	rows, err := Filter(df, spec.DeviceColumn, spec.Device)
	if err != nil {
		return geom.Series{}, err
	}
	return series(rows, spec), nil
}

// series builds the series of spec from the already filtered data frame.
func series(rows *DataFrame, spec SeriesSpec) geom.Series {
	xs := rows.Columns[spec.X].Data
	ys := rows.Columns[spec.Metric.Mean].Data
	var es []float64
	if spec.Metric.RMS != "" {
		es = rows.Columns[spec.Metric.RMS].Data
	}

	var x, y, e []float64
	for i := 0; i < rows.N; i++ {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			continue
		}
		x = append(x, xs[i])
		y = append(y, ys[i])
		err := 0.0
		if es != nil && isFinite(es[i]) {
			err = es[i]
		}
		e = append(e, err)
	}

	Linear(spec.XScale).Apply(x)
	yt := Linear(spec.Metric.scale())
	yt.Apply(y)
	yt.Apply(e)
	for i := range e {
		e[i] = math.Abs(e[i])
	}
	return geom.NewSeries(spec.Device, x, y, e)
}
