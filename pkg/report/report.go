// Package report exports a village as an xlsx workbook.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ChicagoDave/rangeviewer/pkg/village"
)

// Sheet names, in workbook order.
const (
	SheetBuildings = "Buildings"
	SheetBands     = "Bands"
	SheetViewport  = "Viewport"
)

var (
	buildingHeader = []any{"Name", "X", "Y", "Size", "Color", "Greatest radius", "Bands", "Covered area"}
	bandHeader     = []any{"Building", "Index", "Radius", "Color", "Stadium area"}
)

// Write renders the workbook for v to w. An empty title falls back to the
// village title.
func Write(w io.Writer, v *village.Village, title string) error {
	f, err := Build(v, title)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// Build assembles the workbook in memory.
func Build(v *village.Village, title string) (*excelize.File, error) {
	if title == "" {
		title = v.Title()
	}
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetBuildings); err != nil {
		f.Close()
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	for _, name := range []string{SheetBands, SheetViewport} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("adding sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	steps := []func(*excelize.File, *village.Village, int) error{
		writeBuildings,
		writeBands,
		func(f *excelize.File, v *village.Village, bold int) error {
			return writeViewport(f, v, title, bold)
		},
	}
	for _, step := range steps {
		if err := step(f, v, bold); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeBuildings(f *excelize.File, v *village.Village, bold int) error {
	if err := writeHeader(f, SheetBuildings, buildingHeader, bold); err != nil {
		return err
	}
	for i, b := range v.Buildings() {
		r := b.GreatestRadius()
		row := []any{
			b.Name(), b.Origin().X, b.Origin().Y, b.Size(), b.Color(),
			r, len(b.Bands()), b.Square().Stadium(r).Area(),
		}
		if err := setRow(f, SheetBuildings, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeBands(f *excelize.File, v *village.Village, bold int) error {
	if err := writeHeader(f, SheetBands, bandHeader, bold); err != nil {
		return err
	}
	line := 2
	for _, b := range v.Buildings() {
		for i, band := range b.Bands() {
			row := []any{b.Name(), i, band.Radius, band.Color, b.Square().Stadium(band.Radius).Area()}
			if err := setRow(f, SheetBands, line, row); err != nil {
				return err
			}
			line++
		}
	}
	return nil
}

func writeViewport(f *excelize.File, v *village.Village, title string, bold int) error {
	vp := v.Viewport()
	rows := [][]any{
		{"Title", title},
		{"Min X", vp.Bounds.Min.X},
		{"Min Y", vp.Bounds.Min.Y},
		{"Max X", vp.Bounds.Max.X},
		{"Max Y", vp.Bounds.Max.Y},
		{"Span", vp.Span},
		{"X limits", vp.XLim[0], vp.XLim[1]},
		{"Y limits", vp.YLim[0], vp.YLim[1]},
		{"X ticks", len(vp.XTicks)},
		{"Y ticks", len(vp.YTicks)},
	}
	for i, row := range rows {
		if err := setRow(f, SheetViewport, i+1, row); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetViewport, "A1", fmt.Sprintf("A%d", len(rows)), bold); err != nil {
		return fmt.Errorf("styling %s: %w", SheetViewport, err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, header []any, bold int) error {
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}
