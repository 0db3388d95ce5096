package render

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/rangeviewer/pkg/geo"
	"github.com/ChicagoDave/rangeviewer/pkg/plot"
	"github.com/ChicagoDave/rangeviewer/pkg/spec"
	"github.com/ChicagoDave/rangeviewer/pkg/village"
)

func sampleFigure(t *testing.T) *plot.Figure {
	t.Helper()
	v, _, err := village.FromSpec(spec.Default(), nil)
	require.NoError(t, err)
	v.Render()
	f, ok := v.Surface().(*plot.Figure)
	require.True(t, ok)
	return f
}

func TestTransformCorners(t *testing.T) {
	tr := Transform{
		XLim: [2]float64{0, 10},
		YLim: [2]float64{0, 10},
		Plot: geo.Rect{Min: geo.Pt(0, 0), Max: geo.Pt(100, 200)},
	}
	assert.Equal(t, geo.Pt(0, 200), tr.Apply(geo.Pt(0, 0)))
	assert.Equal(t, geo.Pt(100, 0), tr.Apply(geo.Pt(10, 10)))
	rx, ry := tr.Radii(1)
	assert.InDelta(t, 10, rx, 1e-9)
	assert.InDelta(t, 20, ry, 1e-9)
}

func TestNewFrameSample(t *testing.T) {
	fr := NewFrame(sampleFigure(t))
	assert.Equal(t, 800, fr.Width)
	assert.Equal(t, 800, fr.Height)
	assert.True(t, fr.Grid)
	require.Len(t, fr.XTicks, 20)
	require.Len(t, fr.YTicks, 20)
	for _, tk := range fr.XTicks {
		assert.Empty(t, tk.Label)
	}
	assert.InDelta(t, 1.5*100.0/72, fr.StrokeWidth(1.5), 1e-9)

	// Left limit sits on the plot edge.
	left := fr.T.Apply(geo.Pt(-5.7, -5.7))
	assert.InDelta(t, fr.T.Plot.Min.X, left.X, 1e-9)
	assert.InDelta(t, fr.T.Plot.Max.Y, left.Y, 1e-9)
}

func TestFramePolylineArc(t *testing.T) {
	f := plot.NewFigure(8, 8, 100, nil)
	f.SetXLim(-2, 2)
	f.SetYLim(-2, 2)
	f.Arc(geo.Arc{Radius: 1, Theta1: 0, Theta2: 90}, plot.Style{Color: "black", LineWidth: 1})
	fr := NewFrame(f)
	pts := fr.Polyline(f.Primitives[0])
	require.Len(t, pts, arcSteps+1)
	assert.InDelta(t, fr.T.Apply(geo.Pt(1, 0)).X, pts[0].X, 1e-9)
	assert.InDelta(t, fr.T.Apply(geo.Pt(0, 1)).Y, pts[len(pts)-1].Y, 1e-9)
}

func TestSVGSample(t *testing.T) {
	out, err := SVGString(sampleFigure(t))
	require.NoError(t, err)

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `width="800"`)
	assert.Contains(t, out, "<title>Sample village</title>")
	assert.Contains(t, out, "#48d1cc", "mediumturquoise band")
	assert.Contains(t, out, "#a0522d", "sienna band")
	// 2 buildings, 2 bands, 4 corners each.
	assert.Equal(t, 16, strings.Count(out, " A"))
	assert.NotContains(t, out, "<text", "tick labels are suppressed")
}

func TestSVGTickLabels(t *testing.T) {
	f := plot.NewFigure(4, 4, 100, nil)
	f.Line(geo.Seg(0, 0, 2, 2), plot.Style{Color: "red", LineWidth: 1})
	f.SetXLim(0, 2)
	f.SetYLim(0, 2)
	f.SetXTicks([]float64{0, 1, 2})
	out, err := SVGString(f)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "<text"))
	assert.Contains(t, out, "#ff0000")
}

func TestArcPathFullTurn(t *testing.T) {
	tr := Transform{
		XLim: [2]float64{-1, 1},
		YLim: [2]float64{-1, 1},
		Plot: geo.Rect{Max: geo.Pt(100, 100)},
	}
	d := arcPath(tr, geo.Arc{Radius: 1, Theta1: 0, Theta2: 360})
	assert.Equal(t, 2, strings.Count(d, " A"))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestSVGWriteError(t *testing.T) {
	err := SVG{W: failWriter{}}.Present(sampleFigure(t))
	require.ErrorIs(t, err, os.ErrClosed)
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()
	f := sampleFigure(t)

	svgPath := filepath.Join(dir, "village.svg")
	p, err := ToFile(svgPath, "")
	require.NoError(t, err)
	require.NoError(t, p.Present(f))
	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "</svg>")

	pngPath := filepath.Join(dir, "village.out")
	p, err = ToFile(pngPath, "png")
	require.NoError(t, err)
	require.NoError(t, p.Present(f))
	fh, err := os.Open(pngPath)
	require.NoError(t, err)
	defer fh.Close()
	img, err := png.Decode(fh)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestToFileFormatCaseInsensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "village.bin")
	p, err := ToFile(path, "PNG")
	require.NoError(t, err)
	assert.IsType(t, PNG{}, p)

	p, err = ToFile(filepath.Join(t.TempDir(), "VILLAGE.SVG"), "")
	require.NoError(t, err)
	require.NoError(t, p.Present(sampleFigure(t)))
}

func TestToFileUnknownFormat(t *testing.T) {
	_, err := ToFile("village.gif", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
