package geom

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestNewSeries(t *testing.T) {
	s := NewSeries("RBEND(1)", []float64{1, 2}, []float64{3, 4}, []float64{0.5, 0.25})
	require.Equal(t, 2, s.Len())
	x, y := s.XY(1)
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 4.0, y)
	lo, hi := s.YError(0)
	assert.Equal(t, 0.5, lo)
	assert.Equal(t, 0.5, hi)

	bare := NewSeries("bare", []float64{1}, []float64{1}, nil)
	lo, hi = bare.YError(0)
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestErrorBars(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	s := NewSeries("d", []float64{1, 2}, []float64{1, 2}, []float64{0.1, 0.2})
	points, bars, err := ErrorBars(s, Style{Color: color.Black, ErrColor: red, Shape: StarPoint, Radius: 3})
	require.NoError(t, err)
	assert.Equal(t, vg.Length(3), points.GlyphStyle.Radius)
	assert.Equal(t, StarGlyph{}, points.GlyphStyle.Shape)
	assert.Equal(t, red, bars.LineStyle.Color)

	_, bars, err = ErrorBars(s, Style{Color: color.Black})
	require.NoError(t, err)
	assert.Equal(t, color.Black, bars.LineStyle.Color)

	_, _, err = ErrorBars(NewSeries("nan", []float64{math.NaN()}, []float64{1}, nil), Style{})
	assert.Error(t, err)
}

func TestShapes(t *testing.T) {
	c := vgimg.New(2*vg.Centimeter, 2*vg.Centimeter)
	dc := draw.New(c)
	center := vg.Point{X: vg.Centimeter, Y: vg.Centimeter}
	for s := BlankPoint; s <= SolidCrossPoint; s++ {
		assert.NotEqual(t, "", s.String())
		g := s.Glyph()
		require.NotNil(t, g, s.String())
		g.DrawGlyph(&dc, draw.GlyphStyle{Color: color.Black, Radius: 4, Shape: g}, center)
	}
	assert.Equal(t, "blank", Shape(99).String())
	assert.Equal(t, "thin-diamond", ThinDiamondPoint.String())
}

func TestHistogram(t *testing.T) {
	p := plot.New()

	h := hbook.NewH1D(4, 0, 4)
	h.Fill(1.5, 1)
	hh := Histogram(h, color.Black, color.White)
	assert.Equal(t, color.Black, hh.FillColor)
	p.Add(hh)

	c := vgimg.New(8*vg.Centimeter, 6*vg.Centimeter)
	p.Draw(draw.New(c))
}

func TestKeyInLegend(t *testing.T) {
	p := plot.New()
	p.Legend.Add("QUADRUPOLE(7)", Key(Style{Color: color.Black, Shape: DiamondPoint, Radius: 3}))

	c := vgimg.New(8*vg.Centimeter, 6*vg.Centimeter)
	dc := draw.New(c)
	assert.Greater(t, p.Legend.Rectangle(dc).Size().X, vg.Length(0))
	p.Draw(dc)
}
