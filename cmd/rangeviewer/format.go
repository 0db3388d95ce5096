package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ChicagoDave/rangeviewer/pkg/geo"
	"github.com/ChicagoDave/rangeviewer/pkg/validation"
	"github.com/ChicagoDave/rangeviewer/pkg/village"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, e := range r.Warnings {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(w io.Writer, e validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
	if e.SpecPath != "" {
		if e.ActualValue != nil {
			fmt.Fprintf(w, "    -> %s = %v\n", e.SpecPath, e.ActualValue)
		} else {
			fmt.Fprintf(w, "    -> %s\n", e.SpecPath)
		}
	}
	if e.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", e.Expected)
	}
	if e.ConflictWith != "" {
		fmt.Fprintf(w, "    conflicts with: %s\n", e.ConflictWith)
	}
	for _, s := range e.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

func printViewport(w io.Writer, vp village.Viewport) {
	fmt.Fprintln(w, "Viewport")
	fmt.Fprintln(w, "========")
	fmt.Fprintf(w, "  Bounds:   (%s, %s) to (%s, %s)\n",
		formatNum(vp.Bounds.Min.X), formatNum(vp.Bounds.Min.Y), formatNum(vp.Bounds.Max.X), formatNum(vp.Bounds.Max.Y))
	fmt.Fprintf(w, "  Span:     %s\n", formatNum(vp.Span))
	fmt.Fprintf(w, "  X limits: [%s, %s]\n", formatNum(vp.XLim[0]), formatNum(vp.XLim[1]))
	fmt.Fprintf(w, "  Y limits: [%s, %s]\n", formatNum(vp.YLim[0]), formatNum(vp.YLim[1]))
	fmt.Fprintf(w, "  X ticks:  %s\n", formatTicks(vp.XTicks))
	fmt.Fprintf(w, "  Y ticks:  %s\n", formatTicks(vp.YTicks))
}

func printCoverage(w io.Writer, pt geo.Point2D, hits []village.Hit) {
	if len(hits) == 0 {
		fmt.Fprintf(w, "No range band reaches (%s, %s).\n", formatNum(pt.X), formatNum(pt.Y))
		return
	}
	fmt.Fprintf(w, "%-16s %6s %8s %-18s %9s\n", "Building", "Band", "Radius", "Color", "Distance")
	fmt.Fprintf(w, "%-16s %6s %8s %-18s %9s\n",
		"----------------", "------", "--------", "------------------", "---------")
	for _, h := range hits {
		fmt.Fprintf(w, "%-16s %6d %8s %-18s %9s\n",
			h.Building, h.Index, formatNum(h.Band.Radius), h.Band.Color, formatNum(h.Distance))
	}
}

func formatNum(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func formatTicks(ticks []float64) string {
	if len(ticks) == 0 {
		return "(none)"
	}
	return fmt.Sprintf("%s .. %s (%d)", formatNum(ticks[0]), formatNum(ticks[len(ticks)-1]), len(ticks))
}
