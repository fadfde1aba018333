package magplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/magplot/geom"
)

// -------------------------------------------------------------------------
// Points

// String2Shape parses a marker given as number, as one of the single
// character codes "o v ^ s D d * P X + x" or as a name like "solid-delta".
func String2Shape(s string) geom.Shape {
	n, err := strconv.Atoi(s)
	if err == nil {
		return geom.Shape(n % (int(geom.SolidCrossPoint) + 1))
	}
	switch s {
	case "o", "circle":
		return geom.CirclePoint
	case "ring":
		return geom.RingPoint
	case "s", "square":
		return geom.SquarePoint
	case "open-square":
		return geom.OpenSquarePoint
	case "delta":
		return geom.DeltaPoint
	case "^", "solid-delta":
		return geom.SolidDeltaPoint
	case "v", "nabla":
		return geom.NablaPoint
	case "D", "diamond":
		return geom.DiamondPoint
	case "d", "thin-diamond":
		return geom.ThinDiamondPoint
	case "*", "star":
		return geom.StarPoint
	case "+", "plus":
		return geom.PlusPoint
	case "P", "solid-plus":
		return geom.SolidPlusPoint
	case "x", "cross":
		return geom.CrossPoint
	case "X", "solid-cross":
		return geom.SolidCrossPoint
	}
	return geom.BlankPoint
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"lime":    {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"violet":  {0xee, 0x82, 0xee, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// String2Color parses "#rrggbb", "#rrggbbaa" or a builtin color name.
func String2Color(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		var r, g, b uint8
		a := uint8(0xff)
		if _, err := fmt.Sscanf(s[1:7], "%2x%2x%2x", &r, &g, &b); err != nil {
			return nil, pkgerrors.Wrapf(err, "bad color %q", s)
		}
		if len(s) == 9 {
			if _, err := fmt.Sscanf(s[7:9], "%2x", &a); err != nil {
				return nil, pkgerrors.Wrapf(err, "bad color %q", s)
			}
		}
		return color.NRGBA{r, g, b, a}, nil
	}
	if col, ok := BuiltinColors[strings.ToLower(s)]; ok {
		return col, nil
	}
	return nil, pkgerrors.Errorf("unknown color %q", s)
}

// -------------------------------------------------------------------------
// Per-device styles

// Style is the visual identity of one device.
type Style struct {
	Color    color.Color
	ErrColor color.Color // nil: Color
	Shape    geom.Shape
}

// StyleMap assigns a style to each device name.
type StyleMap map[string]Style

// NewStyleMap assigns colors and shapes of t to devices in the given order,
// cycling through palette and shapes if there are more devices. A bad color
// in t is an error.
func NewStyleMap(devices []string, t Theme) (StyleMap, error) {
	if len(t.Palette) == 0 || len(t.Shapes) == 0 {
		return nil, pkgerrors.New("need at least one color and one shape")
	}
	var errColor color.Color
	if t.ErrorColor != "" {
		c, err := String2Color(t.ErrorColor)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "error bar color")
		}
		errColor = c
	}
	sm := make(StyleMap, len(devices))
	for i, d := range devices {
		col, err := String2Color(t.Palette[i%len(t.Palette)])
		if err != nil {
			return nil, err
		}
		sm[d] = Style{
			Color:    col,
			ErrColor: errColor,
			Shape:    String2Shape(t.Shapes[i%len(t.Shapes)]),
		}
	}
	return sm, nil
}

// Geom returns the series style for device d drawn with the sizes of t.
func (sm StyleMap) Geom(d string, t Theme) geom.Style {
	s, ok := sm[d]
	if !ok {
		s = Style{Color: BuiltinColors["black"], Shape: geom.CirclePoint}
	}
	return geom.Style{
		Color:    s.Color,
		ErrColor: s.ErrColor,
		Shape:    s.Shape,
		Radius:   vg.Points(t.MarkerRadius),
		CapWidth: vg.Points(t.CapWidth),
	}
}
