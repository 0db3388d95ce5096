package render

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/ChicagoDave/rangeviewer/pkg/geo"
	"github.com/ChicagoDave/rangeviewer/pkg/plot"
)

// SVG writes figures as SVG documents.
type SVG struct {
	W io.Writer
}

// Present implements plot.Presenter.
func (s SVG) Present(f *plot.Figure) error {
	fr := NewFrame(f)
	cw := &errWriter{w: s.W}
	canvas := svg.New(cw)

	canvas.Start(fr.Width, fr.Height)
	if f.Title != "" {
		canvas.Title(f.Title)
	}
	canvas.Rect(0, 0, fr.Width, fr.Height, "fill:white")

	plotRect := fr.T.Plot
	if fr.Grid {
		canvas.Gstyle("stroke:#b0b0b0;stroke-width:0.8;fill:none")
		for _, tk := range fr.XTicks {
			canvas.Path(moveLine(geo.Pt(tk.Pos, plotRect.Min.Y), geo.Pt(tk.Pos, plotRect.Max.Y)))
		}
		for _, tk := range fr.YTicks {
			canvas.Path(moveLine(geo.Pt(plotRect.Min.X, tk.Pos), geo.Pt(plotRect.Max.X, tk.Pos)))
		}
		canvas.Gend()
	}

	canvas.Gstyle("fill:none;stroke-linecap:butt")
	for _, p := range f.Primitives {
		style := fmt.Sprintf("stroke:%s;stroke-width:%.2f", plot.Hex(p.Style.Color), fr.StrokeWidth(p.Style.LineWidth))
		switch p.Kind {
		case plot.KindLine:
			canvas.Path(moveLine(fr.T.Apply(p.Line.A), fr.T.Apply(p.Line.B)), style)
		case plot.KindArc:
			canvas.Path(arcPath(fr.T, *p.Arc), style)
		}
	}
	canvas.Gend()

	canvas.Rect(round(plotRect.Min.X), round(plotRect.Min.Y), round(plotRect.Width()), round(plotRect.Height()),
		"fill:none;stroke:black;stroke-width:1")
	drawTicks(canvas, fr)

	canvas.End()
	return cw.err
}

func drawTicks(canvas *svg.SVG, fr Frame) {
	plotRect := fr.T.Plot
	const tickLen = 4.0
	canvas.Gstyle("stroke:black;stroke-width:0.8")
	for _, tk := range fr.XTicks {
		canvas.Path(moveLine(geo.Pt(tk.Pos, plotRect.Max.Y), geo.Pt(tk.Pos, plotRect.Max.Y+tickLen)))
	}
	for _, tk := range fr.YTicks {
		canvas.Path(moveLine(geo.Pt(plotRect.Min.X-tickLen, tk.Pos), geo.Pt(plotRect.Min.X, tk.Pos)))
	}
	canvas.Gend()

	canvas.Gstyle("font-family:sans-serif;font-size:10px;fill:black")
	for _, tk := range fr.XTicks {
		if tk.Label != "" {
			canvas.Text(round(tk.Pos), round(plotRect.Max.Y+tickLen+10), tk.Label, "text-anchor:middle")
		}
	}
	for _, tk := range fr.YTicks {
		if tk.Label != "" {
			canvas.Text(round(plotRect.Min.X-tickLen-2), round(tk.Pos+3), tk.Label, "text-anchor:end")
		}
	}
	canvas.Gend()
}

func moveLine(a, b geo.Point2D) string {
	return fmt.Sprintf("M%.2f,%.2f L%.2f,%.2f", a.X, a.Y, b.X, b.Y)
}

// arcPath encodes a counterclockwise data-space arc as an SVG path. The Y
// flip turns it clockwise on screen, hence sweep-flag 0. A full turn is
// split in two halves because SVG cannot draw an arc back to its start.
func arcPath(t Transform, a geo.Arc) string {
	rx, ry := t.Radii(a.Radius)
	sweep := a.Sweep()
	if sweep >= 360 {
		half := a
		half.Theta2 = a.Theta1 + 180
		rest := a
		rest.Theta1 = a.Theta1 + 180
		rest.Theta2 = a.Theta1 + 360
		return arcPath(t, half) + " " + arcPath(t, rest)
	}
	start := t.Apply(a.PointAt(a.Theta1))
	end := t.Apply(a.PointAt(a.Theta1 + sweep))
	large := 0
	if sweep > 180 {
		large = 1
	}
	return fmt.Sprintf("M%.2f,%.2f A%.2f,%.2f 0 %d,0 %.2f,%.2f", start.X, start.Y, rx, ry, large, end.X, end.Y)
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// SVGString renders f to a string.
func SVGString(f *plot.Figure) (string, error) {
	var sb strings.Builder
	if err := (SVG{W: &sb}).Present(f); err != nil {
		return "", err
	}
	return sb.String(), nil
}
