package village

import (
	"fmt"

	"github.com/ChicagoDave/rangeviewer/pkg/geo"
	"github.com/ChicagoDave/rangeviewer/pkg/plot"
	"github.com/ChicagoDave/rangeviewer/pkg/spec"
	"github.com/ChicagoDave/rangeviewer/pkg/validation"
)

// BuildingsFromSpec constructs the buildings described by s, in order.
func BuildingsFromSpec(s *spec.VillageSpec) ([]*Building, error) {
	buildings := make([]*Building, 0, len(s.Buildings))
	for i, def := range s.Buildings {
		bands := make([]RangeBand, 0, len(def.Ranges))
		for _, d := range def.Ranges {
			bands = append(bands, RangeBand{Radius: d.Radius, Color: d.Color})
		}
		b, err := NewBuilding(geo.Pt(def.Position[0], def.Position[1]), def.Size, def.Color, bands)
		if err != nil {
			return nil, fmt.Errorf("buildings[%d]: %w", i, err)
		}
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("building-%d", i)
		}
		buildings = append(buildings, b.Named(name))
	}
	return buildings, nil
}

// FromSpec validates s and builds a village shown by p. A spec with schema
// errors is rejected with the first error; warnings are returned in the
// report for the caller to print.
func FromSpec(s *spec.VillageSpec, p plot.Presenter) (*Village, *validation.Report, error) {
	return FromSpecOn(s, plot.NewFigure(FigureInches, FigureInches, FigureDPI, p))
}

// FromSpecOn is FromSpec drawing onto the given surface.
func FromSpecOn(s *spec.VillageSpec, surface plot.Surface) (*Village, *validation.Report, error) {
	report := validation.ValidateSchema(s)
	if err := report.Err(); err != nil {
		return nil, report, err
	}
	buildings, err := BuildingsFromSpec(s)
	if err != nil {
		return nil, report, err
	}
	v, err := NewWithSurface(buildings, surface)
	if err != nil {
		return nil, report, err
	}
	v.SetTitle(s.Title)
	return v, report, nil
}
