// Package magplot plots magnet shift measurements read from CSV files.
//
// # Data Representation
//
// A CSV file is read into a DataFrame: one Field per column, numerical
// columns hold float64 values, string columns (like the magnet name) hold
// indices into a shared StringPool. Missing cells are NaN.
//
// # Metrics
//
// A measured quantity is stored as a pair of columns, its mean and its
// spread, e.g. "Mean(d_x)" and "RMS(d_x)". Metrics are either declared
// explicitly (see DefaultGroupMetrics) or detected from the columns which
// hold at least one non-zero value (see DetectMetrics).
//
// # Figures
//
//	PlotGroups      one figure per DeviceGroup, one panel per metric
//	PlotMetrics     one figure per metric, one series per device
//	PlotHistograms  one histogram per metric
//
// Every device gets the same color and marker in all panels of a figure;
// see StyleMap.
package magplot
