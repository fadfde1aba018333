package geom

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Series is one error-bar series: points with a symmetric error on y.
type Series struct {
	Name string
	plotter.XYs
	plotter.YErrors
}

// NewSeries builds a series from parallel slices. All slices must have the
// same length; err may be nil for a series without error bars.
func NewSeries(name string, x, y, err []float64) Series {
	s := Series{
		Name:    name,
		XYs:     make(plotter.XYs, len(x)),
		YErrors: make(plotter.YErrors, len(x)),
	}
	for i := range x {
		s.XYs[i].X, s.XYs[i].Y = x[i], y[i]
		if err != nil {
			s.YErrors[i].Low, s.YErrors[i].High = err[i], err[i]
		}
	}
	return s
}

// Len is the number of points of s.
func (s Series) Len() int { return len(s.XYs) }

// Style of an error-bar series.
type Style struct {
	Color    color.Color
	ErrColor color.Color // nil uses Color
	Shape    Shape
	Radius   vg.Length
	CapWidth vg.Length
}

// ErrorBars renders s as a scatter of glyphs with y error bars. The scatter
// is also the legend thumbnail of the series.
func ErrorBars(s Series, sty Style) (*plotter.Scatter, *plotter.YErrorBars, error) {
	points, err := plotter.NewScatter(s.XYs)
	if err != nil {
		return nil, nil, err
	}
	points.GlyphStyle = draw.GlyphStyle{
		Color:  sty.Color,
		Radius: sty.Radius,
		Shape:  sty.Shape.Glyph(),
	}

	bars, err := plotter.NewYErrorBars(s)
	if err != nil {
		return nil, nil, err
	}
	bars.LineStyle.Color = sty.Color
	if sty.ErrColor != nil {
		bars.LineStyle.Color = sty.ErrColor
	}
	bars.CapWidth = sty.CapWidth

	return points, bars, nil
}

// Key is the legend thumbnail of a series style. It needs no data, so a
// legend can list series drawn in other panels.
type Key Style

// Thumbnail draws the glyph of k centered in c.
func (k Key) Thumbnail(c *draw.Canvas) {
	pt := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}
	c.DrawGlyph(draw.GlyphStyle{
		Color:  k.Color,
		Radius: k.Radius,
		Shape:  k.Shape.Glyph(),
	}, pt)
}
