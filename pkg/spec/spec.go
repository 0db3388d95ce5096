package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the village file looked up inside a project directory.
const ProjectFile = "village.yaml"

// Load reads a village spec from a YAML file.
func Load(path string) (*VillageSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading village file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a village spec from YAML bytes.
func Parse(data []byte) (*VillageSpec, error) {
	var spec VillageSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing village YAML: %w", err)
	}
	return &spec, nil
}

// LoadProject loads a village spec from a project path. A directory is
// searched for village.yaml; any other path is read as the file itself.
func LoadProject(projectPath string) (*VillageSpec, error) {
	path, err := ResolveProject(projectPath)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// ResolveProject returns the village file a project path refers to.
func ResolveProject(projectPath string) (string, error) {
	info, err := os.Stat(projectPath)
	if err != nil {
		return "", fmt.Errorf("resolving project: %w", err)
	}
	if info.IsDir() {
		return filepath.Join(projectPath, ProjectFile), nil
	}
	return projectPath, nil
}

// Save writes the spec as YAML, creating or truncating path.
func Save(path string, s *VillageSpec) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding village YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing village file: %w", err)
	}
	return nil
}

// Default returns the two-tower sample village.
func Default() *VillageSpec {
	bands := func() RangeList {
		return RangeList{
			{Radius: 2, Color: "mediumturquoise"},
			{Radius: 4.7, Color: "sienna"},
		}
	}
	return &VillageSpec{
		Title: "Sample village",
		Buildings: []BuildingDef{
			{Name: "tour1", Position: [2]float64{0, 0}, Size: 3, Color: "black", Ranges: bands()},
			{Name: "tour2", Position: [2]float64{5, 7}, Size: 4, Color: "black", Ranges: bands()},
		},
	}
}
