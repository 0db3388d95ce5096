package plot

import (
	"math"
	"strconv"

	"github.com/ChicagoDave/rangeviewer/pkg/geo"
)

// Kind identifies a recorded primitive.
type Kind string

const (
	KindLine Kind = "line"
	KindArc  Kind = "arc"
)

// Primitive is one drawing call, in the order it was issued.
type Primitive struct {
	Kind  Kind         `json:"kind"`
	Line  *geo.Segment `json:"line,omitempty"`
	Arc   *geo.Arc     `json:"arc,omitempty"`
	Style Style        `json:"style"`
}

// Axes holds the axis state of a figure.
//
// A nil tick label slice means labels are derived from the tick values; an
// empty non-nil slice suppresses labels.
type Axes struct {
	XLim        [2]float64 `json:"xlim"`
	YLim        [2]float64 `json:"ylim"`
	XTicks      []float64  `json:"xticks"`
	YTicks      []float64  `json:"yticks"`
	XTickLabels []string   `json:"xticklabels"`
	YTickLabels []string   `json:"yticklabels"`
	Grid        bool       `json:"grid"`
}

// Figure is an in-memory Surface. Primitives are kept in issue order so a
// presenter can replay them with the same layering.
type Figure struct {
	Title      string      `json:"title,omitempty"`
	SizeInches [2]float64  `json:"size_inches"`
	DPI        float64     `json:"dpi"`
	Primitives []Primitive `json:"primitives"`
	Axes       Axes        `json:"axes"`

	presenter Presenter
}

// NewFigure creates an empty figure of the given size in inches.
func NewFigure(widthIn, heightIn, dpi float64, p Presenter) *Figure {
	return &Figure{
		SizeInches: [2]float64{widthIn, heightIn},
		DPI:        dpi,
		Primitives: []Primitive{},
		presenter:  p,
	}
}

// PixelSize returns the figure size in pixels.
func (f *Figure) PixelSize() (int, int) {
	return int(math.Round(f.SizeInches[0] * f.DPI)), int(math.Round(f.SizeInches[1] * f.DPI))
}

func (f *Figure) Line(seg geo.Segment, st Style) {
	f.Primitives = append(f.Primitives, Primitive{Kind: KindLine, Line: &seg, Style: st})
}

func (f *Figure) Arc(arc geo.Arc, st Style) {
	f.Primitives = append(f.Primitives, Primitive{Kind: KindArc, Arc: &arc, Style: st})
}

func (f *Figure) Grid(on bool)           { f.Axes.Grid = on }
func (f *Figure) SetXLim(lo, hi float64) { f.Axes.XLim = [2]float64{lo, hi} }
func (f *Figure) SetYLim(lo, hi float64) { f.Axes.YLim = [2]float64{lo, hi} }

func (f *Figure) SetXTicks(ticks []float64) {
	f.Axes.XTicks = append([]float64(nil), ticks...)
}

func (f *Figure) SetYTicks(ticks []float64) {
	f.Axes.YTicks = append([]float64(nil), ticks...)
}

func (f *Figure) SetXTickLabels(labels []string) {
	f.Axes.XTickLabels = append([]string{}, labels...)
}

func (f *Figure) SetYTickLabels(labels []string) {
	f.Axes.YTickLabels = append([]string{}, labels...)
}

// Show hands the figure to its presenter. Without a presenter it is a no-op.
func (f *Figure) Show() error {
	if f.presenter == nil {
		return nil
	}
	return f.presenter.Present(f)
}

// Lines returns the recorded line primitives in order.
func (f *Figure) Lines() []Primitive {
	return f.filter(KindLine)
}

// Arcs returns the recorded arc primitives in order.
func (f *Figure) Arcs() []Primitive {
	return f.filter(KindArc)
}

func (f *Figure) filter(k Kind) []Primitive {
	var out []Primitive
	for _, p := range f.Primitives {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

// DataBounds returns the extent of every recorded primitive. Arcs count
// with their full circle. ok is false for an empty figure.
func (f *Figure) DataBounds() (b geo.Rect, ok bool) {
	for _, p := range f.Primitives {
		var r geo.Rect
		switch p.Kind {
		case KindLine:
			r = geo.Rect{
				Min: geo.Pt(math.Min(p.Line.A.X, p.Line.B.X), math.Min(p.Line.A.Y, p.Line.B.Y)),
				Max: geo.Pt(math.Max(p.Line.A.X, p.Line.B.X), math.Max(p.Line.A.Y, p.Line.B.Y)),
			}
		case KindArc:
			r = geo.Rect{Min: p.Arc.Center, Max: p.Arc.Center}.Expand(p.Arc.Radius)
		default:
			continue
		}
		if !ok {
			b, ok = r, true
			continue
		}
		b = b.Union(r)
	}
	return b, ok
}

// Limits returns the axis limits, falling back to the data bounds when a
// limit was never set.
func (f *Figure) Limits() (x, y [2]float64) {
	x, y = f.Axes.XLim, f.Axes.YLim
	if x[0] < x[1] && y[0] < y[1] {
		return x, y
	}
	b, ok := f.DataBounds()
	if !ok {
		b = geo.Rect{Max: geo.Pt(1, 1)}
	}
	if x[0] >= x[1] {
		x = [2]float64{b.Min.X, b.Max.X}
		if x[0] == x[1] {
			x[1]++
		}
	}
	if y[0] >= y[1] {
		y = [2]float64{b.Min.Y, b.Max.Y}
		if y[0] == y[1] {
			y[1]++
		}
	}
	return x, y
}

// TickLabel returns the label for tick i of ticks, honoring suppressed or
// explicit labels.
func TickLabel(ticks []float64, labels []string, i int) string {
	if labels == nil {
		return formatTick(ticks[i])
	}
	if i < len(labels) {
		return labels[i]
	}
	return ""
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}
