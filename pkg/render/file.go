package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChicagoDave/rangeviewer/pkg/plot"
)

// Formats lists the file formats ToFile understands.
var Formats = []string{"svg", "png"}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// ToFile returns a presenter writing the figure to path in the given
// format, matched case-insensitively. An empty format is taken from the
// path's extension.
func ToFile(path, format string) (plot.Presenter, error) {
	format = strings.ToLower(format)
	if format == "" {
		format = FormatFromPath(path)
	}
	switch format {
	case "svg":
		return plot.PresenterFunc(func(f *plot.Figure) error {
			out, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating SVG file: %w", err)
			}
			if err := (SVG{W: out}).Present(f); err != nil {
				out.Close()
				return fmt.Errorf("writing SVG: %w", err)
			}
			return out.Close()
		}), nil
	case "png":
		return PNG{Path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}
