package demo

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/32bitkid/canvas"
	"github.com/32bitkid/canvas/font"
	"github.com/32bitkid/canvas/present"
	"github.com/32bitkid/canvas/screen"
)

// keyHold is how long a key press counts as held. Terminals only report
// presses, repeated while the key is down.
const keyHold = 150 * time.Millisecond

type Presenter interface {
	Present(buf *screen.Buffer) error
}

type Loop struct {
	State  *State
	Canvas *canvas.Canvas
	Font   *font.Font
	FPS    int
	Logger *log.Logger

	held map[present.Key]time.Duration
}

func (l *Loop) step() time.Duration {
	return time.Second / time.Duration(l.FPS)
}

// press records a key event. It returns false when the loop should stop.
func (l *Loop) press(ev present.KeyEvent) bool {
	if ev.Key == present.KeyQuit {
		return false
	}
	if l.held == nil {
		l.held = make(map[present.Key]time.Duration)
	}
	l.held[ev.Key] = keyHold
	return true
}

func (l *Loop) input() Input {
	return Input{
		Up:    l.held[present.KeyUp] > 0,
		Down:  l.held[present.KeyDown] > 0,
		Left:  l.held[present.KeyLeft] > 0,
		Right: l.held[present.KeyRight] > 0,
	}
}

func (l *Loop) decay(dt time.Duration) {
	for k, remaining := range l.held {
		if remaining -= dt; remaining > 0 {
			l.held[k] = remaining
		} else {
			delete(l.held, k)
		}
	}
}

// Tick advances the scene by one fixed step and presents the frame.
func (l *Loop) Tick(p Presenter) error {
	dt := l.step()
	l.State.Update(l.input(), dt)
	l.decay(dt)
	l.State.Draw(l.Canvas, l.Font)
	return p.Present(l.Canvas.Screen())
}

// Run ticks at the configured rate until ctx is done, the key channel is
// closed, or a quit key arrives.
func (l *Loop) Run(ctx context.Context, p Presenter, keys <-chan present.KeyEvent) error {
	ticker := time.NewTicker(l.step())
	defer ticker.Stop()

	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Info("loop started", "fps", l.FPS)

	for {
		select {
		case <-ctx.Done():
			logger.Info("loop stopped", "frames", l.State.Frame, "reason", ctx.Err())
			return nil
		case ev, ok := <-keys:
			if !ok || !l.press(ev) {
				logger.Info("loop stopped", "frames", l.State.Frame)
				return nil
			}
			logger.Debug("key", "key", ev.Key, "rune", string(ev.Rune))
		case <-ticker.C:
			if err := l.Tick(p); err != nil {
				return err
			}
		}
	}
}

// Simulate advances the scene by frames steps without input and draws the
// final frame, for headless rendering.
func (l *Loop) Simulate(frames int) {
	dt := l.step()
	for i := 0; i < frames; i++ {
		l.State.Update(Input{}, dt)
	}
	l.State.Draw(l.Canvas, l.Font)
}
