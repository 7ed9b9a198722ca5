package present

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyQuit
	KeyRune
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Key(Up)"
	case KeyDown:
		return "Key(Down)"
	case KeyLeft:
		return "Key(Left)"
	case KeyRight:
		return "Key(Right)"
	case KeySpace:
		return "Key(Space)"
	case KeyQuit:
		return "Key(Quit)"
	case KeyRune:
		return "Key(Rune)"
	}
	return "Key(None)"
}

type KeyEvent struct {
	Key  Key
	Rune rune
}

// translate maps raw terminal key events, folding WASD onto the arrows.
func translate(ev *tcell.EventKey) KeyEvent {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyEvent{Key: KeyUp}
	case tcell.KeyDown:
		return KeyEvent{Key: KeyDown}
	case tcell.KeyLeft:
		return KeyEvent{Key: KeyLeft}
	case tcell.KeyRight:
		return KeyEvent{Key: KeyRight}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyEvent{Key: KeyQuit}
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'w', 'W':
			return KeyEvent{Key: KeyUp, Rune: r}
		case 's', 'S':
			return KeyEvent{Key: KeyDown, Rune: r}
		case 'a', 'A':
			return KeyEvent{Key: KeyLeft, Rune: r}
		case 'd', 'D':
			return KeyEvent{Key: KeyRight, Rune: r}
		case 'q', 'Q':
			return KeyEvent{Key: KeyQuit, Rune: r}
		case ' ':
			return KeyEvent{Key: KeySpace, Rune: r}
		default:
			return KeyEvent{Key: KeyRune, Rune: r}
		}
	}
	return KeyEvent{Key: KeyNone}
}

// Poll pumps key events from the terminal until ctx is done or the
// terminal is closed. The returned channel is closed when polling stops.
func (t *Terminal) Poll(ctx context.Context) <-chan KeyEvent {
	events := make(chan KeyEvent, 16)
	go func() {
		defer close(events)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}

			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				t.logger.Debug("terminal resized", "cols", w, "rows", h)
				t.screen.Sync()
			case *tcell.EventKey:
				key := translate(ev)
				if key.Key == KeyNone {
					continue
				}
				select {
				case events <- key:
				case <-ctx.Done():
					return
				}
			}

			if ctx.Err() != nil {
				return
			}
		}
	}()
	return events
}
