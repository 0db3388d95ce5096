// Package village models towers with range bands and frames them in a
// single square viewport.
package village

import (
	"fmt"

	"github.com/ChicagoDave/rangeviewer/pkg/plot"
	"github.com/ChicagoDave/rangeviewer/pkg/validation"
)

// Figure defaults for a village drawing.
const (
	FigureInches = 8.0
	FigureDPI    = 100.0
)

// Village is an ordered set of buildings sharing one drawing surface.
type Village struct {
	title     string
	buildings []*Building
	surface   plot.Surface
}

// New creates a village drawing onto a fresh figure shown by p.
func New(buildings []*Building, p plot.Presenter) (*Village, error) {
	return NewWithSurface(buildings, plot.NewFigure(FigureInches, FigureInches, FigureDPI, p))
}

// NewWithSurface creates a village drawing onto s.
func NewWithSurface(buildings []*Building, s plot.Surface) (*Village, error) {
	if len(buildings) == 0 {
		return nil, validation.Configf("buildings", nil, "a village needs at least one building")
	}
	for i, b := range buildings {
		if b == nil {
			return nil, validation.Configf(fmt.Sprintf("buildings[%d]", i), nil, "building is nil")
		}
	}
	if s == nil {
		return nil, validation.Configf("surface", nil, "drawing surface is nil")
	}
	return &Village{
		buildings: append([]*Building(nil), buildings...),
		surface:   s,
	}, nil
}

// SetTitle names the village; figures drawn by it carry the title.
func (v *Village) SetTitle(title string) {
	v.title = title
	if f, ok := v.surface.(*plot.Figure); ok {
		f.Title = title
	}
}

func (v *Village) Title() string         { return v.title }
func (v *Village) Surface() plot.Surface { return v.surface }

// Buildings returns the buildings in drawing order.
func (v *Village) Buildings() []*Building {
	return append([]*Building(nil), v.buildings...)
}

// Viewport returns the square window framing every building.
func (v *Village) Viewport() Viewport {
	// Only an extent overflowing float64 fails here; it yields the zero Viewport.
	vp, _ := ComputeViewport(v.buildings)
	return vp
}

// Render draws every building in order and applies the grid, limits and
// unlabeled ticks, without showing the result.
func (v *Village) Render() {
	for _, b := range v.buildings {
		b.Draw(v.surface)
	}

	v.surface.Grid(true)

	vp := v.Viewport()
	v.surface.SetXLim(vp.XLim[0], vp.XLim[1])
	v.surface.SetYLim(vp.YLim[0], vp.YLim[1])
	v.surface.SetXTicks(vp.XTicks)
	v.surface.SetYTicks(vp.YTicks)
	v.surface.SetXTickLabels([]string{})
	v.surface.SetYTickLabels([]string{})
}

// Draw renders the village and shows the surface.
func (v *Village) Draw() error {
	v.Render()
	if err := v.surface.Show(); err != nil {
		return fmt.Errorf("showing village: %w", err)
	}
	return nil
}
