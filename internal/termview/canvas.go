// Package termview shows figures in a terminal window.
package termview

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/ChicagoDave/rangeviewer/pkg/geo"
	"github.com/ChicagoDave/rangeviewer/pkg/plot"
)

const (
	strokeRune = '•'
	gridRune   = '·'
	gridColor  = "#808080"
	// Terminal cells are about twice as tall as they are wide.
	cellAspect = 2
)

// Cell is one rasterized terminal cell. A zero Rune is blank.
type Cell struct {
	Rune  rune
	Color string
}

// Canvas is a cell grid a figure is rasterized onto. The bottom row holds
// the status line; the plot area above it is kept square on screen.
type Canvas struct {
	Width  int
	Height int
	cells  []Cell
	status string

	// plot area in cells
	left, top, cols, rows int
	xlim, ylim            [2]float64
}

// NewCanvas allocates a blank canvas of w by h cells.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Canvas{Width: w, Height: h, cells: make([]Cell, w*h)}
}

// At returns the cell at column x, row y.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return Cell{}
	}
	return c.cells[y*c.Width+x]
}

// Status returns the status line text.
func (c *Canvas) Status() string {
	return c.status
}

func (c *Canvas) set(x, y int, cell Cell) {
	if x < c.left || y < c.top || x >= c.left+c.cols || y >= c.top+c.rows {
		return
	}
	c.cells[y*c.Width+x] = cell
}

// Rasterize draws f onto the canvas: grid dots at tick crossings, then
// every primitive in order so later strokes cover earlier ones.
func (c *Canvas) Rasterize(f *plot.Figure) {
	for i := range c.cells {
		c.cells[i] = Cell{}
	}
	c.layout(f)

	if f.Axes.Grid {
		for _, x := range f.Axes.XTicks {
			for _, y := range f.Axes.YTicks {
				cx, cy := c.Project(geo.Pt(x, y))
				c.set(cx, cy, Cell{Rune: gridRune, Color: gridColor})
			}
		}
	}

	for _, p := range f.Primitives {
		cell := Cell{Rune: strokeRune, Color: plot.Hex(p.Style.Color)}
		pts := c.samples(p)
		for i := 1; i < len(pts); i++ {
			c.stroke(pts[i-1], pts[i], cell)
		}
		if len(pts) == 1 {
			x, y := c.Project(pts[0])
			c.set(x, y, cell)
		}
	}

	title := f.Title
	if title == "" {
		title = "village"
	}
	c.status = fmt.Sprintf("%s  x[%.1f, %.1f] y[%.1f, %.1f]  q to quit",
		title, c.xlim[0], c.xlim[1], c.ylim[0], c.ylim[1])
}

func (c *Canvas) layout(f *plot.Figure) {
	c.xlim, c.ylim = f.Limits()
	avail := c.Height - 1
	rows := avail
	if c.Width/cellAspect < rows {
		rows = c.Width / cellAspect
	}
	if rows < 0 {
		rows = 0
	}
	c.rows = rows
	c.cols = rows * cellAspect
	c.left = (c.Width - c.cols) / 2
	c.top = (avail - c.rows) / 2
	if c.top < 0 {
		c.top = 0
	}
}

// Project maps a data point to the nearest cell of the plot area.
func (c *Canvas) Project(p geo.Point2D) (int, int) {
	fx := (p.X - c.xlim[0]) / (c.xlim[1] - c.xlim[0])
	fy := (c.ylim[1] - p.Y) / (c.ylim[1] - c.ylim[0])
	x := c.left + int(math.Round(fx*float64(c.cols-1)))
	y := c.top + int(math.Round(fy*float64(c.rows-1)))
	return x, y
}

func (c *Canvas) samples(p plot.Primitive) []geo.Point2D {
	switch p.Kind {
	case plot.KindLine:
		return []geo.Point2D{p.Line.A, p.Line.B}
	case plot.KindArc:
		n := int(math.Ceil(p.Arc.Sweep() / 90 * 8))
		return p.Arc.Points(n)
	}
	return nil
}

// stroke marks every cell crossed by the segment a-b.
func (c *Canvas) stroke(a, b geo.Point2D, cell Cell) {
	ax, ay := c.Project(a)
	bx, by := c.Project(b)
	steps := max(abs(bx-ax), abs(by-ay))
	for _, p := range (geo.Segment{A: a, B: b}).Points(steps) {
		x, y := c.Project(p)
		c.set(x, y, cell)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Paint copies the canvas and the status line onto s.
func (c *Canvas) Paint(s tcell.Screen) {
	base := tcell.StyleDefault
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			cell := c.cells[y*c.Width+x]
			if cell.Rune == 0 {
				s.SetContent(x, y, ' ', nil, base)
				continue
			}
			s.SetContent(x, y, cell.Rune, nil, base.Foreground(tcell.GetColor(cell.Color)))
		}
	}
	if c.Height == 0 {
		return
	}
	row := c.Height - 1
	x := 0
	for _, r := range c.status {
		if x >= c.Width {
			break
		}
		s.SetContent(x, row, r, nil, base.Reverse(true))
		x++
	}
}
