// Package geom turns measurement series into gonum plotters: error-bar
// series drawn with per-device glyphs and histograms.
package geom

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Shape is the marker used for the points of a series.
type Shape int

const (
	BlankPoint Shape = iota
	CirclePoint
	RingPoint
	SquarePoint
	OpenSquarePoint
	DeltaPoint
	SolidDeltaPoint
	NablaPoint
	DiamondPoint
	ThinDiamondPoint
	StarPoint
	PlusPoint
	SolidPlusPoint
	CrossPoint
	SolidCrossPoint
)

var shapeNames = [...]string{
	"blank", "circle", "ring", "square", "open-square", "delta", "solid-delta",
	"nabla", "diamond", "thin-diamond", "star", "plus", "solid-plus",
	"cross", "solid-cross",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "blank"
	}
	return shapeNames[s]
}

// Glyph returns the gonum glyph drawer for s.
func (s Shape) Glyph() draw.GlyphDrawer {
	switch s {
	case CirclePoint:
		return draw.CircleGlyph{}
	case RingPoint:
		return draw.RingGlyph{}
	case SquarePoint:
		return draw.BoxGlyph{}
	case OpenSquarePoint:
		return draw.SquareGlyph{}
	case DeltaPoint:
		return draw.TriangleGlyph{}
	case SolidDeltaPoint:
		return draw.PyramidGlyph{}
	case NablaPoint:
		return NablaGlyph{}
	case DiamondPoint:
		return DiamondGlyph{Aspect: 1}
	case ThinDiamondPoint:
		return DiamondGlyph{Aspect: 0.6}
	case StarPoint:
		return StarGlyph{}
	case PlusPoint:
		return draw.PlusGlyph{}
	case SolidPlusPoint:
		return SolidPlusGlyph{}
	case CrossPoint:
		return draw.CrossGlyph{}
	case SolidCrossPoint:
		return SolidCrossGlyph{}
	}
	return blankGlyph{}
}

type blankGlyph struct{}

func (blankGlyph) DrawGlyph(*draw.Canvas, draw.GlyphStyle, vg.Point) {}

var (
	sinPi6 = vg.Length(math.Sin(math.Pi / 6))
	cosPi6 = vg.Length(math.Cos(math.Pi / 6))
)

// NablaGlyph is a filled triangle pointing down.
type NablaGlyph struct{}

func (NablaGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	r := sty.Radius + (sty.Radius-sty.Radius*sinPi6)/2
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r*cosPi6, Y: pt.Y + r*sinPi6})
	p.Line(vg.Point{X: pt.X + r*cosPi6, Y: pt.Y + r*sinPi6})
	p.Close()
	c.Fill(p)
}

// DiamondGlyph is a filled rhombus; Aspect is width over height.
type DiamondGlyph struct {
	Aspect float64
}

func (d DiamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	w := sty.Radius * vg.Length(d.Aspect)
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y + sty.Radius})
	p.Line(vg.Point{X: pt.X + w, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - sty.Radius})
	p.Line(vg.Point{X: pt.X - w, Y: pt.Y})
	p.Close()
	c.Fill(p)
}

// StarGlyph is a filled five pointed star.
type StarGlyph struct{}

func (StarGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	outer := float64(sty.Radius) * 1.2
	inner := outer * 0.4
	var p vg.Path
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		phi := math.Pi/2 + float64(i)*math.Pi/5
		q := vg.Point{
			X: pt.X + vg.Length(r*math.Cos(phi)),
			Y: pt.Y + vg.Length(r*math.Sin(phi)),
		}
		if i == 0 {
			p.Move(q)
		} else {
			p.Line(q)
		}
	}
	p.Close()
	c.Fill(p)
}

// SolidPlusGlyph is a filled plus sign.
type SolidPlusGlyph struct{}

func (SolidPlusGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	r, w := sty.Radius, sty.Radius/3
	c.Fill(rect(pt.X-r, pt.Y-w, pt.X+r, pt.Y+w))
	c.Fill(rect(pt.X-w, pt.Y-r, pt.X+w, pt.Y+r))
}

// SolidCrossGlyph is a filled diagonal cross.
type SolidCrossGlyph struct{}

func (SolidCrossGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	r, w := sty.Radius*0.8, sty.Radius/4
	var p vg.Path
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y - r + w})
	p.Line(vg.Point{X: pt.X - r + w, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y + r - w})
	p.Line(vg.Point{X: pt.X + r - w, Y: pt.Y + r})
	p.Close()
	c.Fill(p)

	var q vg.Path
	q.Move(vg.Point{X: pt.X + r, Y: pt.Y - r + w})
	q.Line(vg.Point{X: pt.X + r - w, Y: pt.Y - r})
	q.Line(vg.Point{X: pt.X - r, Y: pt.Y + r - w})
	q.Line(vg.Point{X: pt.X - r + w, Y: pt.Y + r})
	q.Close()
	c.Fill(q)
}

func rect(x0, y0, x1, y1 vg.Length) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: x0, Y: y0})
	p.Line(vg.Point{X: x1, Y: y0})
	p.Line(vg.Point{X: x1, Y: y1})
	p.Line(vg.Point{X: x0, Y: y1})
	p.Close()
	return p
}
