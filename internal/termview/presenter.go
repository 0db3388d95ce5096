package termview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ChicagoDave/rangeviewer/internal/logger"
	"github.com/ChicagoDave/rangeviewer/pkg/plot"
)

// Presenter shows figures full screen until the user quits with q, Esc or
// Ctrl-C.
type Presenter struct {
	// OpenScreen returns an uninitialized screen; nil uses tcell.NewScreen.
	OpenScreen func() (tcell.Screen, error)
}

// Present implements plot.Presenter.
func (p Presenter) Present(f *plot.Figure) error {
	open := p.OpenScreen
	if open == nil {
		open = tcell.NewScreen
	}
	screen, err := open()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()

	return Run(screen, f)
}

// Run draws f on an initialized screen and handles events until quit.
// It returns when the user quits or the screen is finalized.
func Run(screen tcell.Screen, f *plot.Figure) error {
	draw := func() {
		w, h := screen.Size()
		c := NewCanvas(w, h)
		c.Rasterize(f)
		screen.Clear()
		c.Paint(screen)
		screen.Show()
		logger.Debug("drew figure", "cols", w, "rows", h, "lines", len(f.Lines()), "arcs", len(f.Arcs()))
	}
	draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if isQuit(ev) {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
			draw()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
