// Package render writes figures to image files.
package render

import (
	"math"

	"github.com/ChicagoDave/rangeviewer/pkg/geo"
	"github.com/ChicagoDave/rangeviewer/pkg/plot"
)

// marginRatio is the share of each figure side left around the axes.
const marginRatio = 0.08

// arcSteps is the polyline resolution of a quarter circle.
const arcSteps = 24

// Transform maps data coordinates to pixel coordinates. Pixel Y grows
// downward.
type Transform struct {
	XLim [2]float64
	YLim [2]float64
	Plot geo.Rect
}

// Apply maps a data point to pixel space.
func (t Transform) Apply(p geo.Point2D) geo.Point2D {
	return geo.Point2D{
		X: t.Plot.Min.X + (p.X-t.XLim[0])*t.scaleX(),
		Y: t.Plot.Max.Y - (p.Y-t.YLim[0])*t.scaleY(),
	}
}

// Radii returns the pixel radii of a data-space circle of radius r.
func (t Transform) Radii(r float64) (float64, float64) {
	return r * t.scaleX(), r * t.scaleY()
}

func (t Transform) scaleX() float64 {
	return t.Plot.Width() / (t.XLim[1] - t.XLim[0])
}

func (t Transform) scaleY() float64 {
	return t.Plot.Height() / (t.YLim[1] - t.YLim[0])
}

// Tick is a tick position in pixels with its label.
type Tick struct {
	Pos   float64
	Label string
}

// Frame is the pixel layout of a figure: canvas size, axes rectangle and
// tick positions.
type Frame struct {
	Width  int
	Height int
	DPI    float64
	T      Transform
	XTicks []Tick
	YTicks []Tick
	Grid   bool
}

// NewFrame lays out f on its own pixel canvas.
func NewFrame(f *plot.Figure) Frame {
	w, h := f.PixelSize()
	if w <= 0 || h <= 0 {
		w, h = 800, 800
	}
	dpi := f.DPI
	if dpi <= 0 {
		dpi = 100
	}
	mx, my := float64(w)*marginRatio, float64(h)*marginRatio
	xlim, ylim := f.Limits()
	t := Transform{
		XLim: xlim,
		YLim: ylim,
		Plot: geo.Rect{Min: geo.Pt(mx, my), Max: geo.Pt(float64(w)-mx, float64(h)-my)},
	}

	fr := Frame{Width: w, Height: h, DPI: dpi, T: t, Grid: f.Axes.Grid}
	for i, v := range f.Axes.XTicks {
		if v < xlim[0] || v > xlim[1] {
			continue
		}
		fr.XTicks = append(fr.XTicks, Tick{
			Pos:   t.Apply(geo.Pt(v, ylim[0])).X,
			Label: plot.TickLabel(f.Axes.XTicks, f.Axes.XTickLabels, i),
		})
	}
	for i, v := range f.Axes.YTicks {
		if v < ylim[0] || v > ylim[1] {
			continue
		}
		fr.YTicks = append(fr.YTicks, Tick{
			Pos:   t.Apply(geo.Pt(xlim[0], v)).Y,
			Label: plot.TickLabel(f.Axes.YTicks, f.Axes.YTickLabels, i),
		})
	}
	return fr
}

// StrokeWidth converts a line width in points to pixels.
func (fr Frame) StrokeWidth(points float64) float64 {
	return points * fr.DPI / 72
}

// Polyline returns the pixel points of a primitive. Arcs are sampled with
// arcSteps segments per quarter turn.
func (fr Frame) Polyline(p plot.Primitive) []geo.Point2D {
	var pts []geo.Point2D
	switch p.Kind {
	case plot.KindLine:
		pts = []geo.Point2D{p.Line.A, p.Line.B}
	case plot.KindArc:
		n := int(math.Ceil(p.Arc.Sweep() / 90 * arcSteps))
		pts = p.Arc.Points(n)
	}
	for i := range pts {
		pts[i] = fr.T.Apply(pts[i])
	}
	return pts
}
