package spec

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadProject(t *testing.T) {
	s, err := LoadProject("testdata/sample")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if s.Title != "Sample village" {
		t.Errorf("title = %q, want %q", s.Title, "Sample village")
	}
	if len(s.Buildings) != 2 {
		t.Fatalf("buildings = %d, want 2", len(s.Buildings))
	}

	b := s.Buildings[1]
	if b.Name != "tour2" || b.Position != [2]float64{5, 7} || b.Size != 4 {
		t.Errorf("tour2 = %+v", b)
	}
	if b.Color != "" {
		t.Errorf("tour2 color = %q, want empty (defaulted later)", b.Color)
	}
	if len(b.Ranges) != 2 || b.Ranges[1].Radius != 4.7 || b.Ranges[1].Color != "sienna" {
		t.Errorf("tour2 ranges = %+v", b.Ranges)
	}

	// Pair and mapping forms must decode to the same bands.
	if !reflect.DeepEqual(s.Buildings[0].Ranges, s.Buildings[1].Ranges) {
		t.Errorf("range forms differ: %+v vs %+v", s.Buildings[0].Ranges, s.Buildings[1].Ranges)
	}
}

func TestLoadProjectFilePath(t *testing.T) {
	s, err := LoadProject("testdata/single.yaml")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	want := RangeList{{Radius: 3, Color: "sienna"}}
	for _, b := range s.Buildings {
		if !reflect.DeepEqual(b.Ranges, want) {
			t.Errorf("%s ranges = %+v, want %+v", b.Name, b.Ranges, want)
		}
	}
}

func TestLoadProjectMissing(t *testing.T) {
	_, err := LoadProject("/nonexistent/path")
	if err == nil {
		t.Error("expected error for missing project directory")
	}
}

func TestParseEmptyRanges(t *testing.T) {
	s, err := Parse([]byte("buildings:\n  - name: a\n    size: 1\n    ranges:\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(s.Buildings[0].Ranges) != 0 {
		t.Errorf("expected no ranges, got %+v", s.Buildings[0].Ranges)
	}
}

func TestParseBadPair(t *testing.T) {
	_, err := Parse([]byte("buildings:\n  - size: 1\n    ranges:\n      - [1, red, extra]\n"))
	if err == nil {
		t.Fatal("expected error for three-element range pair")
	}
	if !strings.Contains(err.Error(), "2 elements") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRangeListGreatest(t *testing.T) {
	tests := []struct {
		l    RangeList
		want float64
	}{
		{nil, 0},
		{RangeList{{Radius: 2}}, 2},
		{RangeList{{Radius: 4.7}, {Radius: 2}}, 4.7},
		{RangeList{{Radius: 2}, {Radius: 4.7}, {Radius: 3}}, 4.7},
	}
	for _, tt := range tests {
		if got := tt.l.Greatest(); got != tt.want {
			t.Errorf("Greatest(%+v) = %v, want %v", tt.l, got, tt.want)
		}
	}
}

func TestSaveRoundTripDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectFile)
	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	s, err := LoadProject(filepath.Dir(path))
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if !reflect.DeepEqual(s, Default()) {
		t.Errorf("loaded %+v, want %+v", s, Default())
	}
}
