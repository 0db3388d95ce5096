package validation

import (
	"math"
	"testing"

	"github.com/ChicagoDave/rangeviewer/pkg/spec"
)

func validSpec() *spec.VillageSpec {
	return spec.Default()
}

func TestValidateSchemaValid(t *testing.T) {
	r := ValidateSchema(validSpec())
	if !r.Valid {
		t.Errorf("expected valid report, got %d errors: %v", len(r.Errors), r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", r.Warnings)
	}
}

func TestValidateSchemaNoBuildings(t *testing.T) {
	r := ValidateSchema(&spec.VillageSpec{})
	if r.Valid {
		t.Error("expected invalid report for empty village")
	}
	assertHasError(t, r, "buildings")
}

func TestValidateSchemaNoRanges(t *testing.T) {
	s := validSpec()
	s.Buildings[1].Ranges = nil
	r := ValidateSchema(s)
	if r.Valid {
		t.Error("expected invalid report for building without ranges")
	}
	assertHasError(t, r, "buildings[1].ranges")
}

func TestValidateSchemaSize(t *testing.T) {
	s := validSpec()
	s.Buildings[0].Size = 0
	r := ValidateSchema(s)
	if r.Valid {
		t.Error("expected invalid for size=0")
	}
	assertHasError(t, r, "buildings[0].size")
}

func TestValidateSchemaRadius(t *testing.T) {
	s := validSpec()
	s.Buildings[0].Ranges[1].Radius = -1
	r := ValidateSchema(s)
	if r.Valid {
		t.Error("expected invalid for negative radius")
	}
	assertHasError(t, r, "buildings[0].ranges[1].radius")
}

func TestValidateSchemaUnknownColor(t *testing.T) {
	s := validSpec()
	s.Buildings[1].Ranges[0].Color = "notacolor"
	s.Buildings[0].Color = "#12345"
	r := ValidateSchema(s)
	if r.Valid {
		t.Error("expected invalid for unknown colors")
	}
	assertHasError(t, r, "buildings[1].ranges[0].color")
	assertHasError(t, r, "buildings[0].color")
}

func TestValidateSchemaHexColor(t *testing.T) {
	s := validSpec()
	s.Buildings[0].Ranges[0].Color = "#40e0d0"
	r := ValidateSchema(s)
	if !r.Valid {
		t.Errorf("expected hex color to be accepted, got %v", r.Errors)
	}
}

func TestValidateSchemaDescendingWarning(t *testing.T) {
	s := validSpec()
	s.Buildings[0].Ranges = spec.RangeList{{Radius: 4.7, Color: "sienna"}, {Radius: 2, Color: "black"}}
	r := ValidateSchema(s)
	if !r.Valid {
		t.Errorf("descending radii should only warn, got %v", r.Errors)
	}
	if len(r.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(r.Warnings))
	}
	if r.Warnings[0].Level != LevelGeometry {
		t.Errorf("expected geometry level, got %s", r.Warnings[0].Level)
	}
}

func TestValidateSchemaDuplicateNames(t *testing.T) {
	s := validSpec()
	s.Buildings[1].Name = s.Buildings[0].Name
	r := ValidateSchema(s)
	if !r.Valid {
		t.Error("duplicate names should only warn")
	}
	if len(r.Warnings) != 1 || r.Warnings[0].ConflictWith != "buildings[0].name" {
		t.Errorf("unexpected warnings: %v", r.Warnings)
	}
}

func TestValidateSchemaOverlap(t *testing.T) {
	s := validSpec()
	s.Buildings[1].Position = [2]float64{1, 1}
	r := ValidateSchema(s)
	if !r.Valid {
		t.Error("overlap should only warn")
	}
	if len(r.Warnings) != 1 || r.Warnings[0].SpecPath != "buildings[1].position" {
		t.Errorf("unexpected warnings: %v", r.Warnings)
	}
}

func TestValidateSchemaNonFinite(t *testing.T) {
	s := validSpec()
	s.Buildings[0].Size = math.NaN()
	s.Buildings[1].Position = [2]float64{math.Inf(1), 0}
	s.Buildings[1].Ranges[1].Radius = math.Inf(1)
	r := ValidateSchema(s)
	if r.Valid {
		t.Fatal("expected invalid report for non-finite values")
	}
	assertHasError(t, r, "buildings[0].size")
	assertHasError(t, r, "buildings[1].position")
	assertHasError(t, r, "buildings[1].ranges[1].radius")
}

func TestValidateSchemaInfiniteRadiusFromYAML(t *testing.T) {
	s, err := spec.Parse([]byte("buildings:\n  - position: [0, 0]\n    size: 3\n    ranges: {radius: .inf, color: red}\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	r := ValidateSchema(s)
	assertHasError(t, r, "buildings[0].ranges[0].radius")
	if r.Err() == nil {
		t.Error("expected Err to report the infinite radius")
	}
}

func TestValidateGeometryReach(t *testing.T) {
	r := ValidateGeometry(validSpec())
	if !r.Valid || len(r.Warnings) != 0 {
		t.Errorf("sample footprints do not overlap, got %v", r.Warnings)
	}
	if len(r.Info) != 1 || r.Info[0].ConflictWith != "buildings[0]" {
		t.Errorf("expected one reach note against buildings[0], got %v", r.Info)
	}

	far := validSpec()
	far.Buildings[1].Position = [2]float64{50, 50}
	if r := ValidateGeometry(far); len(r.Info) != 0 {
		t.Errorf("distant buildings should not overlap, got %v", r.Info)
	}
}

func TestValidateSchemaMergesGeometry(t *testing.T) {
	r := ValidateSchema(validSpec())
	if len(r.Info) != 1 || r.Info[0].Level != LevelGeometry {
		t.Errorf("expected the geometry reach note in the schema report, got %v", r.Info)
	}
}

func assertHasError(t *testing.T, r *Report, specPath string) {
	t.Helper()
	for _, e := range r.Errors {
		if e.SpecPath == specPath {
			return
		}
	}
	t.Errorf("expected error with spec_path %q, got errors: %v", specPath, r.Errors)
}
