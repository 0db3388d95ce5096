package validation

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/rangeviewer/pkg/geo"
	"github.com/ChicagoDave/rangeviewer/pkg/plot"
	"github.com/ChicagoDave/rangeviewer/pkg/spec"
)

// ValidateSchema checks a parsed VillageSpec before any building is
// constructed. Every problem is collected rather than stopping at the first.
func ValidateSchema(s *spec.VillageSpec) *Report {
	r := NewReport()

	if len(s.Buildings) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "a village needs at least one building",
			SpecPath: "buildings",
			Expected: "at least 1 building",
		})
		return r
	}

	for i, b := range s.Buildings {
		validateBuilding(i, b, r)
	}
	validateNames(s, r)
	r.Merge(ValidateGeometry(s))

	return r
}

// ValidateGeometry reports how building footprints and their outermost
// bands sit relative to each other.
func ValidateGeometry(s *spec.VillageSpec) *Report {
	r := NewReport()
	validateOverlaps(s, r)
	validateReach(s, r)
	return r
}

// Finite reports whether v is neither infinite nor NaN.
func Finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// PositiveFinite reports whether v is a finite number above zero.
func PositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func validateBuilding(i int, b spec.BuildingDef, r *Report) {
	path := fmt.Sprintf("buildings[%d]", i)

	if !Finite(b.Position[0]) || !Finite(b.Position[1]) {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s: position must be finite", label(i, b)),
			SpecPath:    path + ".position",
			ActualValue: b.Position,
			Expected:    "finite x and y",
		})
	}
	if !PositiveFinite(b.Size) {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s: size must be > 0", label(i, b)),
			SpecPath:    path + ".size",
			ActualValue: b.Size,
			Expected:    "finite, > 0",
		})
	}
	if b.Color != "" {
		validateColor(path+".color", b.Color, r)
	}

	if len(b.Ranges) == 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s: at least one range band is required", label(i, b)),
			SpecPath:    path + ".ranges",
			Expected:    "at least 1 (radius, color) pair",
			Suggestions: []string{"add ranges: {radius: 2, color: black}"},
		})
		return
	}

	for j, d := range b.Ranges {
		bandPath := fmt.Sprintf("%s.ranges[%d]", path, j)
		if !PositiveFinite(d.Radius) {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s: range radius must be > 0", label(i, b)),
				SpecPath:    bandPath + ".radius",
				ActualValue: d.Radius,
				Expected:    "finite, > 0",
			})
		}
		validateColor(bandPath+".color", d.Color, r)
		if j > 0 && d.Radius < b.Ranges[j-1].Radius {
			r.AddWarning(Result{
				Level:       LevelGeometry,
				Message:     fmt.Sprintf("%s: range radii are not ascending; inner bands will be drawn over outer ones", label(i, b)),
				SpecPath:    bandPath + ".radius",
				ActualValue: d.Radius,
				Expected:    fmt.Sprintf(">= %v", b.Ranges[j-1].Radius),
			})
		}
	}
}

func validateColor(path, c string, r *Report) {
	if c == "" {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "color must not be empty",
			SpecPath: path,
		})
		return
	}
	if _, err := plot.ParseColor(c); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown color %q", c),
			SpecPath:    path,
			ActualValue: c,
			Expected:    "CSS color name or #rrggbb",
		})
	}
}

func validateNames(s *spec.VillageSpec, r *Report) {
	seen := make(map[string]int, len(s.Buildings))
	for i, b := range s.Buildings {
		if b.Name == "" {
			continue
		}
		if prev, ok := seen[b.Name]; ok {
			r.AddWarning(Result{
				Level:        LevelSchema,
				Message:      fmt.Sprintf("duplicate building name %q", b.Name),
				SpecPath:     fmt.Sprintf("buildings[%d].name", i),
				ActualValue:  b.Name,
				ConflictWith: fmt.Sprintf("buildings[%d].name", prev),
			})
			continue
		}
		seen[b.Name] = i
	}
}

func validateOverlaps(s *spec.VillageSpec, r *Report) {
	squares := make([]geo.Rect, len(s.Buildings))
	for i, b := range s.Buildings {
		squares[i] = geo.Square{Origin: geo.Pt(b.Position[0], b.Position[1]), Side: b.Size}.Bounds()
	}
	for i := 0; i < len(squares); i++ {
		for j := i + 1; j < len(squares); j++ {
			if squares[i].Overlaps(squares[j]) {
				r.AddWarning(Result{
					Level:        LevelGeometry,
					Message:      fmt.Sprintf("%s overlaps %s", label(i, s.Buildings[i]), label(j, s.Buildings[j])),
					SpecPath:     fmt.Sprintf("buildings[%d].position", j),
					ConflictWith: fmt.Sprintf("buildings[%d]", i),
				})
			}
		}
	}
}

// validateReach notes every pair of buildings whose outermost bands overlap.
func validateReach(s *spec.VillageSpec, r *Report) {
	reach := make([]geo.Rect, len(s.Buildings))
	for i, b := range s.Buildings {
		sq := geo.Square{Origin: geo.Pt(b.Position[0], b.Position[1]), Side: b.Size}
		reach[i] = sq.Bounds().Expand(b.Ranges.Greatest())
	}
	for i := 0; i < len(reach); i++ {
		for j := i + 1; j < len(reach); j++ {
			if reach[i].Overlaps(reach[j]) {
				r.AddInfo(Result{
					Level:        LevelGeometry,
					Message:      fmt.Sprintf("outer ranges of %s and %s overlap", label(i, s.Buildings[i]), label(j, s.Buildings[j])),
					SpecPath:     fmt.Sprintf("buildings[%d].ranges", j),
					ConflictWith: fmt.Sprintf("buildings[%d]", i),
				})
			}
		}
	}
}

func label(i int, b spec.BuildingDef) string {
	if b.Name != "" {
		return b.Name
	}
	return fmt.Sprintf("building %d", i)
}
