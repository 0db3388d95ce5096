// Package plot is the drawing surface the village renders onto: a single
// set of axes that records line and arc primitives plus axis state, and
// hands the finished figure to a Presenter when shown.
package plot

import "github.com/ChicagoDave/rangeviewer/pkg/geo"

// DefaultLineWidth is the stroke width used for contours and range bands.
const DefaultLineWidth = 1.5

// Style describes how a primitive is stroked.
type Style struct {
	Color     string  `json:"color"`
	LineWidth float64 `json:"line_width"`
}

// Surface is a 2D plotting surface with one coordinate plane.
type Surface interface {
	Line(seg geo.Segment, st Style)
	Arc(arc geo.Arc, st Style)
	Grid(on bool)
	SetXLim(lo, hi float64)
	SetYLim(lo, hi float64)
	SetXTicks(ticks []float64)
	SetYTicks(ticks []float64)
	SetXTickLabels(labels []string)
	SetYTickLabels(labels []string)
	Show() error
}

// Presenter displays or writes a finished figure.
type Presenter interface {
	Present(f *Figure) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(f *Figure) error

// Present calls fn(f).
func (fn PresenterFunc) Present(f *Figure) error {
	return fn(f)
}
