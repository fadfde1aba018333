package magplot

// Theme collects the presentation parameters of a kind of figure.
type Theme struct {
	Width, Height float64 // Figure size in inches.
	DPI           int

	Palette []string // Colors assigned to devices in order.
	Shapes  []string // Markers assigned to devices in order.

	ErrorColor   string  // Color of error bars, empty: color of the series.
	MarkerRadius float64 // In points.
	CapWidth     float64 // In points.

	TitleSize float64 // Font size of the figure title in points, 0: no title.

	// LegendTop and LegendLeft place the legend.
	LegendTop, LegendLeft bool

	Fill, Line string // Histogram bar colors.
}

// GroupTheme is used for device-group figures.
var GroupTheme = Theme{
	Width:        16,
	Height:       9,
	DPI:          150,
	Palette:      []string{"cyan", "green", "violet", "blue", "black", "orange", "grey", "yellow"},
	Shapes:       []string{"o", "v", "s", "P", "D", "d", "*", "X"},
	MarkerRadius: 3,
	CapWidth:     10,
	TitleSize:    16,
	LegendTop:    true,
}

// MetricTheme is used for per-metric figures overlaying all devices.
var MetricTheme = Theme{
	Width:        16,
	Height:       9,
	DPI:          300,
	Palette:      []string{"cyan", "green", "violet", "blue", "black", "yellow", "grey", "orange"},
	Shapes:       []string{"*"},
	ErrorColor:   "red",
	MarkerRadius: 3,
	CapWidth:     0,
	LegendTop:    true,
}

// HistTheme is used for histograms.
var HistTheme = Theme{
	Width:  6.4,
	Height: 4.8,
	DPI:    100,
	Fill:   "#1f77b4",
	Line:   "#1f77b4",
}

// merge fills unset fields of t from def.
func (t Theme) merge(def Theme) Theme {
	if t.Width <= 0 || t.Height <= 0 {
		t.Width, t.Height = def.Width, def.Height
	}
	if t.DPI <= 0 {
		t.DPI = def.DPI
	}
	if len(t.Palette) == 0 {
		t.Palette = def.Palette
	}
	if len(t.Shapes) == 0 {
		t.Shapes = def.Shapes
	}
	if t.ErrorColor == "" {
		t.ErrorColor = def.ErrorColor
	}
	if t.MarkerRadius <= 0 {
		t.MarkerRadius = def.MarkerRadius
	}
	if t.CapWidth <= 0 {
		t.CapWidth = def.CapWidth
	}
	if t.TitleSize <= 0 {
		t.TitleSize = def.TitleSize
	}
	if !t.LegendTop && !t.LegendLeft {
		t.LegendTop, t.LegendLeft = def.LegendTop, def.LegendLeft
	}
	if t.Fill == "" {
		t.Fill = def.Fill
	}
	if t.Line == "" {
		t.Line = def.Line
	}
	return t
}
