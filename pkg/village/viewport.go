package village

import (
	"math"

	"github.com/ChicagoDave/rangeviewer/pkg/geo"
	"github.com/ChicagoDave/rangeviewer/pkg/validation"
)

// padding is the margin added below the square viewport on each axis.
const padding = 1.0

// Viewport is the square window framing every building and its outermost band.
type Viewport struct {
	Bounds geo.Rect   `json:"bounds"`
	Span   float64    `json:"span"`
	XLim   [2]float64 `json:"xlim"`
	YLim   [2]float64 `json:"ylim"`
	XTicks []float64  `json:"xticks"`
	YTicks []float64  `json:"yticks"`
}

// ComputeViewport frames the given buildings. The window is forced square
// using the larger extent and anchored at the bottom-left of the bounds.
func ComputeViewport(buildings []*Building) (Viewport, error) {
	if len(buildings) == 0 {
		return Viewport{}, validation.Configf("buildings", nil, "cannot frame an empty village")
	}

	bounds := buildings[0].Extent()
	for _, b := range buildings[1:] {
		bounds = bounds.Union(b.Extent())
	}

	minX, minY := bounds.Min.X, bounds.Min.Y
	span := math.Max(bounds.Width(), bounds.Height())
	if !validation.Finite(minX) || !validation.Finite(minY) || !validation.Finite(span) {
		return Viewport{}, validation.Configf("buildings", span, "village extent is not finite")
	}

	return Viewport{
		Bounds: bounds,
		Span:   span,
		XLim:   [2]float64{minX - padding, minX + span + padding},
		YLim:   [2]float64{minY - padding, minY + span + padding},
		XTicks: integerTicks(minX, span),
		YTicks: integerTicks(minY, span),
	}, nil
}

// integerTicks returns every integer from trunc(lo) up to but excluding
// trunc(lo+span+1).
func integerTicks(lo, span float64) []float64 {
	start := math.Trunc(lo)
	end := math.Trunc(lo + span + padding)
	if !validation.Finite(start) || !validation.Finite(end) || end <= start {
		return []float64{}
	}
	ticks := make([]float64, 0, int(end-start))
	for v := start; v < end; v++ {
		ticks = append(ticks, v)
	}
	return ticks
}
