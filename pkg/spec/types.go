package spec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// VillageSpec is the top-level description of a village file.
type VillageSpec struct {
	Title     string        `yaml:"title" json:"title"`
	Buildings []BuildingDef `yaml:"buildings" json:"buildings"`
}

// BuildingDef describes one tower: a square footprint and its range bands.
type BuildingDef struct {
	Name     string     `yaml:"name" json:"name"`
	Position [2]float64 `yaml:"position" json:"position"`
	Size     float64    `yaml:"size" json:"size"`
	Color    string     `yaml:"color,omitempty" json:"color,omitempty"`
	Ranges   RangeList  `yaml:"ranges" json:"ranges"`
}

// RangeDef is a single (radius, color) range band.
//
// In YAML it is written either as a mapping ({radius: 2, color: sienna})
// or as a two-element sequence ([2, sienna]).
type RangeDef struct {
	Radius float64 `yaml:"radius" json:"radius"`
	Color  string  `yaml:"color" json:"color"`
}

// UnmarshalYAML accepts the mapping and pair forms of a range band.
func (d *RangeDef) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		type plain RangeDef
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*d = RangeDef(p)
		return nil
	case yaml.SequenceNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("line %d: range pair needs 2 elements (radius, color), got %d",
				value.Line, len(value.Content))
		}
		var r float64
		if err := value.Content[0].Decode(&r); err != nil {
			return fmt.Errorf("line %d: range radius: %w", value.Line, err)
		}
		var c string
		if err := value.Content[1].Decode(&c); err != nil {
			return fmt.Errorf("line %d: range color: %w", value.Line, err)
		}
		*d = RangeDef{Radius: r, Color: c}
		return nil
	default:
		return fmt.Errorf("line %d: range must be a mapping or a [radius, color] pair", value.Line)
	}
}

// RangeList is the ordered list of range bands of a building.
//
// A single band may be given without the surrounding list; it is
// normalized to a one-element list.
type RangeList []RangeDef

// UnmarshalYAML accepts a single band or a sequence of bands.
func (l *RangeList) UnmarshalYAML(value *yaml.Node) error {
	switch {
	case value.Tag == "!!null":
		*l = nil
		return nil
	case value.Kind == yaml.MappingNode || isPair(value):
		var d RangeDef
		if err := value.Decode(&d); err != nil {
			return err
		}
		*l = RangeList{d}
		return nil
	case value.Kind == yaml.SequenceNode:
		var defs []RangeDef
		if err := value.Decode(&defs); err != nil {
			return err
		}
		*l = defs
		return nil
	default:
		return fmt.Errorf("line %d: ranges must be a band or a list of bands", value.Line)
	}
}

// Greatest returns the largest radius in the list, or 0 when empty.
func (l RangeList) Greatest() float64 {
	g := 0.0
	for i, d := range l {
		if i == 0 || d.Radius > g {
			g = d.Radius
		}
	}
	return g
}

// isPair reports whether n is a bare [radius, color] sequence.
func isPair(n *yaml.Node) bool {
	return n.Kind == yaml.SequenceNode && len(n.Content) == 2 &&
		n.Content[0].Kind == yaml.ScalarNode && n.Content[1].Kind == yaml.ScalarNode
}
