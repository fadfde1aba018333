package geom

import (
	"image/color"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
)

// Histogram renders h as filled bars with an entries/mean/RMS box.
func Histogram(h *hbook.H1D, fill, line color.Color) *hplot.H1D {
	hh := hplot.NewH1D(h)
	hh.FillColor = fill
	hh.LineStyle.Color = line
	hh.LineStyle.Width = vg.Points(0.5)
	hh.Infos.Style = hplot.HInfoSummary
	return hh
}
