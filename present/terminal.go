// Package present hands finished frames to something a person can look
// at: a terminal, or a PNG file.
package present

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/32bitkid/canvas/colors"
	"github.com/32bitkid/canvas/screen"
)

var ErrClosed = errors.New("present: terminal closed")

// upperHalf covers the top half of a cell. Its foreground shows the even
// pixel row and the cell background the odd one.
const upperHalf = '▀'

// Terminal blits pixel buffers to a terminal, two pixel rows per cell.
type Terminal struct {
	screen tcell.Screen
	logger *log.Logger
	closed bool
}

func NewTerminal(logger *log.Logger) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewTerminalWithScreen(s, logger)
}

// NewTerminalWithScreen initializes s and takes ownership of it.
func NewTerminalWithScreen(s tcell.Screen, logger *log.Logger) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s.HideCursor()
	s.Clear()

	w, h := s.Size()
	logger.Debug("terminal ready", "cols", w, "rows", h)
	return &Terminal{screen: s, logger: logger}, nil
}

// Size returns the drawable area in pixels.
func (t *Terminal) Size() (int, int) {
	w, h := t.screen.Size()
	return w, h * 2
}

func toTcell(c colors.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Present draws buf anchored at the top-left corner of the terminal.
// Pixels that do not fit are clipped.
func (t *Terminal) Present(buf *screen.Buffer) error {
	if t.closed {
		return ErrClosed
	}

	cols, rows := t.screen.Size()
	bw, bh := buf.Size()
	pix := buf.Pix()

	for cy := 0; cy < rows; cy++ {
		top, bottom := cy*2, cy*2+1
		for cx := 0; cx < cols; cx++ {
			if cx >= bw || top >= bh {
				t.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault)
				continue
			}

			fg, bg := pix[top*bw+cx], colors.Black
			if bottom < bh {
				bg = pix[bottom*bw+cx]
			}
			style := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
			t.screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}

	t.screen.Show()
	return nil
}

func (t *Terminal) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.screen.Fini()
}
