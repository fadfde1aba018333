package magplot

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/magplot/geom"
)

// Figure is a grid of panels written as one image.
type Figure struct {
	Title      string
	Rows, Cols int
	Panels     []*Panel // Row-major, len(Panels) <= Rows*Cols.
	Theme      Theme
}

// NewFigure returns a figure of rows x cols empty panels.
func NewFigure(title string, rows, cols int, theme Theme) *Figure {
	f := &Figure{
		Title: title,
		Rows:  rows,
		Cols:  cols,
		Theme: theme,
	}
	for i := 0; i < rows*cols; i++ {
		f.Panels = append(f.Panels, &Panel{})
	}
	return f
}

// Panel is one set of axes of a figure.
type Panel struct {
	Title, XLabel, YLabel string

	// Legend shows Keys, or the names of the error-bar series of this
	// panel if there are no Keys.
	Legend bool
	Keys   []LegendKey

	// HEP draws the panel in the style of go-hep's hplot.
	HEP bool

	Layers []Layer
}

// Layer is one item drawn onto a panel: either an error-bar series or a
// ready made plotter.
type Layer struct {
	Series  geom.Series
	Style   geom.Style
	Plotter plot.Plotter
}

// LegendKey is one legend entry independent of the layers of a panel.
type LegendKey struct {
	Name  string
	Style geom.Style
}

// AddSeries adds an error-bar series drawn with sty.
func (p *Panel) AddSeries(s geom.Series, sty geom.Style) {
	p.Layers = append(p.Layers, Layer{Series: s, Style: sty})
}

// AddPlotter adds an arbitrary gonum plotter.
func (p *Panel) AddPlotter(pl plot.Plotter) {
	p.Layers = append(p.Layers, Layer{Plotter: pl})
}

// NumSeries counts the error-bar series of p.
func (p *Panel) NumSeries() int {
	n := 0
	for _, l := range p.Layers {
		if l.Plotter == nil {
			n++
		}
	}
	return n
}

// build constructs the gonum plot of p.
func (p *Panel) build(t Theme) (*plot.Plot, error) {
	var pl *plot.Plot
	if p.HEP {
		pl = hplot.New().Plot
	} else {
		pl = plot.New()
	}
	pl.Title.Text = p.Title
	pl.X.Label.Text = p.XLabel
	pl.Y.Label.Text = p.YLabel
	pl.Add(plotter.NewGrid())
	pl.Legend.Top = t.LegendTop
	pl.Legend.Left = t.LegendLeft

	for _, l := range p.Layers {
		if l.Plotter != nil {
			pl.Add(l.Plotter)
			continue
		}
		points, bars, err := geom.ErrorBars(l.Series, l.Style)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "series %s", l.Series.Name)
		}
		pl.Add(bars, points)
		if p.Legend && len(p.Keys) == 0 {
			pl.Legend.Add(l.Series.Name, points)
		}
	}
	if p.Legend {
		for _, k := range p.Keys {
			pl.Legend.Add(k.Name, geom.Key(k.Style))
		}
	}
	return pl, nil
}

// Draw renders f onto dc.
func (f *Figure) Draw(dc draw.Canvas) error {
	if f.Rows <= 0 || f.Cols <= 0 {
		return pkgerrors.Errorf("bad figure layout %dx%d", f.Rows, f.Cols)
	}
	plots := make([][]*plot.Plot, f.Rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, f.Cols)
		for c := range plots[r] {
			panel := &Panel{}
			if i := r*f.Cols + c; i < len(f.Panels) {
				panel = f.Panels[i]
			}
			pl, err := panel.build(f.Theme)
			if err != nil {
				return err
			}
			plots[r][c] = pl
		}
	}

	body := dc
	if f.Title != "" && f.Theme.TitleSize > 0 {
		size := vg.Points(f.Theme.TitleSize)
		sty := plots[0][0].Title.TextStyle
		sty.Font.Size = size
		sty.XAlign = text.XCenter
		sty.YAlign = text.YTop
		top := vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - size/2}
		dc.FillText(sty, top, f.Title)
		body = draw.Crop(dc, 0, 0, 0, -2*size)
	}

	tiles := draw.Tiles{
		Rows:      f.Rows,
		Cols:      f.Cols,
		PadX:      vg.Millimeter * 8,
		PadY:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
	}
	canvases := plot.Align(plots, tiles, body)
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}
	return nil
}

// WriteTo renders f completely and writes the encoded image to w.
func (f *Figure) WriteTo(w io.Writer, format string) error {
	width := vg.Length(f.Theme.Width) * vg.Inch
	height := vg.Length(f.Theme.Height) * vg.Inch
	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(f.Theme.DPI))
	if err := f.Draw(draw.New(img)); err != nil {
		return err
	}

	var enc io.WriterTo
	switch strings.ToLower(format) {
	case "", "png":
		enc = vgimg.PngCanvas{Canvas: img}
	case "jpg", "jpeg":
		enc = vgimg.JpegCanvas{Canvas: img}
	case "tif", "tiff":
		enc = vgimg.TiffCanvas{Canvas: img}
	default:
		return pkgerrors.Wrapf(ErrBadFormat, "%q", format)
	}
	_, err := enc.WriteTo(w)
	return err
}

// Save renders f and writes it to path. Nothing is written if rendering
// fails. The directory of path is created if needed.
func (f *Figure) Save(path, format string) error {
	var buf bytes.Buffer
	if err := f.WriteTo(&buf, format); err != nil {
		return pkgerrors.Wrapf(err, "cannot render %s", path)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return pkgerrors.Wrap(err, "cannot create output directory")
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return pkgerrors.Wrapf(err, "cannot write %s", path)
	}
	logrus.WithFields(logrus.Fields{
		"file":   path,
		"panels": len(f.Panels),
		"bytes":  buf.Len(),
	}).Info("Figure written")
	return nil
}

// gridShape returns a layout with two columns for n panels.
func gridShape(n int) (rows, cols int) {
	if n <= 1 {
		return 1, 1
	}
	return (n + 1) / 2, 2
}
