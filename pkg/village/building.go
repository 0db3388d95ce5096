package village

import (
	"fmt"

	"github.com/ChicagoDave/rangeviewer/pkg/geo"
	"github.com/ChicagoDave/rangeviewer/pkg/plot"
	"github.com/ChicagoDave/rangeviewer/pkg/validation"
)

// RangeBand is one concentric range drawn around a building.
type RangeBand struct {
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
}

// Building is a square tower with one or more range bands.
type Building struct {
	name      string
	square    geo.Square
	color     string
	bands     []RangeBand
	greatestR float64
}

// NewBuilding creates a building whose bottom-left corner is at origin.
// An empty color defaults to black. At least one band is required and
// size and every radius must be positive.
func NewBuilding(origin geo.Point2D, size float64, color string, bands []RangeBand) (*Building, error) {
	if !validation.Finite(origin.X) || !validation.Finite(origin.Y) {
		return nil, validation.Configf("position", origin, "building position must be finite")
	}
	if !validation.PositiveFinite(size) {
		return nil, validation.Configf("size", size, "building size must be > 0")
	}
	if len(bands) == 0 {
		return nil, validation.Configf("ranges", nil, "building at (%g, %g) needs at least one range band", origin.X, origin.Y)
	}
	if color == "" {
		color = plot.DefaultColor
	}

	greatest := bands[0].Radius
	for i, band := range bands {
		if !validation.PositiveFinite(band.Radius) {
			return nil, validation.Configf(fmt.Sprintf("ranges[%d].radius", i), band.Radius, "range radius must be > 0")
		}
		if band.Radius > greatest {
			greatest = band.Radius
		}
	}

	return &Building{
		square:    geo.Square{Origin: origin, Side: size},
		color:     color,
		bands:     append([]RangeBand(nil), bands...),
		greatestR: greatest,
	}, nil
}

// NewBuildingWithBand creates a building with a single range band.
func NewBuildingWithBand(origin geo.Point2D, size float64, color string, band RangeBand) (*Building, error) {
	return NewBuilding(origin, size, color, []RangeBand{band})
}

// Named returns a copy of b carrying the given name.
func (b *Building) Named(name string) *Building {
	c := *b
	c.name = name
	return &c
}

func (b *Building) Name() string        { return b.name }
func (b *Building) Origin() geo.Point2D { return b.square.Origin }
func (b *Building) Size() float64       { return b.square.Side }
func (b *Building) Color() string       { return b.color }
func (b *Building) Square() geo.Square  { return b.square }

// Bands returns a copy of the range bands in their given order.
func (b *Building) Bands() []RangeBand {
	return append([]RangeBand(nil), b.bands...)
}

// GreatestRadius returns the largest band radius.
func (b *Building) GreatestRadius() float64 {
	return b.greatestR
}

// Extent returns the square grown by the greatest radius.
func (b *Building) Extent() geo.Rect {
	return b.square.Stadium(b.greatestR).Bounds()
}

// Draw emits the contour and every range band onto s.
func (b *Building) Draw(s plot.Surface) {
	contour := plot.Style{Color: b.color, LineWidth: plot.DefaultLineWidth}
	for _, e := range b.square.Edges() {
		s.Line(e, contour)
	}

	for _, band := range b.bands {
		st := plot.Style{Color: band.Color, LineWidth: plot.DefaultLineWidth}
		stadium := b.square.Stadium(band.Radius)
		for _, side := range stadium.Sides {
			s.Line(side, st)
		}
		for _, corner := range stadium.Corners {
			s.Arc(corner, st)
		}
	}
}
