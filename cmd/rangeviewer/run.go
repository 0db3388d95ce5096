package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChicagoDave/rangeviewer/internal/config"
	"github.com/ChicagoDave/rangeviewer/internal/logger"
	"github.com/ChicagoDave/rangeviewer/internal/termview"
	"github.com/ChicagoDave/rangeviewer/pkg/geo"
	"github.com/ChicagoDave/rangeviewer/pkg/plot"
	"github.com/ChicagoDave/rangeviewer/pkg/render"
	"github.com/ChicagoDave/rangeviewer/pkg/report"
	"github.com/ChicagoDave/rangeviewer/pkg/spec"
	"github.com/ChicagoDave/rangeviewer/pkg/validation"
	"github.com/ChicagoDave/rangeviewer/pkg/village"
)

// errInvalid is returned by validate after the report has been printed.
var errInvalid = errors.New("village has validation errors")

func settings() *config.Config {
	if cfg == nil {
		return &config.Config{DPI: village.FigureDPI, FigureSize: village.FigureInches, OutputDir: "."}
	}
	return cfg
}

// buildVillage turns a parsed village file into a village drawing onto a
// figure shown by p. Warnings are logged; errors abort.
func buildVillage(vs *spec.VillageSpec, p plot.Presenter) (*village.Village, error) {
	c := settings()
	fig := plot.NewFigure(c.FigureSize, c.FigureSize, c.DPI, p)
	v, rep, err := village.FromSpecOn(vs, fig)
	if err != nil {
		if rep != nil && !rep.Valid {
			printValidationReport(os.Stderr, rep)
		}
		return nil, err
	}
	for _, w := range rep.Warnings {
		logger.Warn(w.Message, "path", w.SpecPath)
	}
	return v, nil
}

// loadVillage loads and builds the village at projectPath.
func loadVillage(projectPath string, p plot.Presenter) (*village.Village, error) {
	vs, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading village: %w", err)
	}
	logger.Debug("loaded village", "project", projectPath, "buildings", len(vs.Buildings))
	return buildVillage(vs, p)
}

func runDefault() error {
	v, err := buildVillage(spec.Default(), termview.Presenter{})
	if err != nil {
		return err
	}
	return v.Draw()
}

func runShow(projectPath string) error {
	v, err := loadVillage(projectPath, termview.Presenter{})
	if err != nil {
		return err
	}
	return v.Draw()
}

func outputPath(out, name string) string {
	if out != "" {
		return out
	}
	return filepath.Join(settings().OutputDir, name)
}

// renderFormat picks the output format: the explicit one, else the
// extension of out, else svg.
func renderFormat(format, out string) string {
	format = strings.ToLower(format)
	if format == "" && out != "" {
		format = render.FormatFromPath(out)
	}
	if format == "" {
		format = "svg"
	}
	return format
}

func runRender(w io.Writer, projectPath, format, out string) error {
	format = renderFormat(format, out)
	path := outputPath(out, "village."+format)
	p, err := render.ToFile(path, format)
	if err != nil {
		return err
	}
	v, err := loadVillage(projectPath, p)
	if err != nil {
		return err
	}
	if err := v.Draw(); err != nil {
		return err
	}
	logger.Info("rendered village", "format", format, "path", path)
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

func runValidate(w io.Writer, projectPath string) error {
	vs, err := spec.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading village: %w", err)
	}
	r := validation.ValidateSchema(vs)
	printValidationReport(w, r)
	if !r.Valid {
		return errInvalid
	}
	return nil
}

func runViewport(w io.Writer, projectPath string) error {
	v, err := loadVillage(projectPath, nil)
	if err != nil {
		return err
	}
	printViewport(w, v.Viewport())
	return nil
}

func runCover(w io.Writer, projectPath string, x, y float64) error {
	v, err := loadVillage(projectPath, nil)
	if err != nil {
		return err
	}
	printCoverage(w, geo.Pt(x, y), v.Coverage(geo.Pt(x, y)))
	return nil
}

func runExport(w io.Writer, projectPath, out, title string) error {
	v, err := loadVillage(projectPath, nil)
	if err != nil {
		return err
	}
	path := outputPath(out, "village.xlsx")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := report.Write(f, v, title); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report: %w", err)
	}
	logger.Info("exported report", "path", path)
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

func runInit(w io.Writer, dir string) error {
	path := filepath.Join(dir, spec.ProjectFile)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}
	if err := spec.Save(path, spec.Default()); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}
