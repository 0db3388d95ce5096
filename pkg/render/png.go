package render

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/ChicagoDave/rangeviewer/pkg/geo"
	"github.com/ChicagoDave/rangeviewer/pkg/plot"
)

var (
	gridColor  = color.RGBA{0xb0, 0xb0, 0xb0, 0xff}
	frameColor = color.RGBA{0, 0, 0, 0xff}
)

// PNG writes figures as PNG images to Path.
type PNG struct {
	Path string
}

// Present implements plot.Presenter.
func (p PNG) Present(f *plot.Figure) error {
	fr := NewFrame(f)
	dc := gg.NewContext(fr.Width, fr.Height)

	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, float64(fr.Width), float64(fr.Height))
	dc.Fill()

	plotRect := fr.T.Plot
	if fr.Grid {
		for _, tk := range fr.XTicks {
			strokePolyline(dc, []geo.Point2D{geo.Pt(tk.Pos, plotRect.Min.Y), geo.Pt(tk.Pos, plotRect.Max.Y)}, gridColor, 0.8)
		}
		for _, tk := range fr.YTicks {
			strokePolyline(dc, []geo.Point2D{geo.Pt(plotRect.Min.X, tk.Pos), geo.Pt(plotRect.Max.X, tk.Pos)}, gridColor, 0.8)
		}
	}

	for _, prim := range f.Primitives {
		c, err := plot.ParseColor(prim.Style.Color)
		if err != nil {
			c = frameColor
		}
		strokePolyline(dc, fr.Polyline(prim), c, fr.StrokeWidth(prim.Style.LineWidth))
	}

	corners := []geo.Point2D{
		plotRect.Min,
		geo.Pt(plotRect.Max.X, plotRect.Min.Y),
		plotRect.Max,
		geo.Pt(plotRect.Min.X, plotRect.Max.Y),
		plotRect.Min,
	}
	strokePolyline(dc, corners, frameColor, 1)

	if err := dc.SavePNG(p.Path); err != nil {
		return fmt.Errorf("writing PNG: %w", err)
	}
	return nil
}

func strokePolyline(dc *gg.Context, pts []geo.Point2D, c color.RGBA, width float64) {
	if len(pts) < 2 {
		return
	}
	dc.SetRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
	dc.SetLineWidth(width)
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.Stroke()
}
