// Package demo is a small interactive scene drawn through the canvas. It
// keeps all of its state in an explicit State value; time and input are
// passed in by the caller.
package demo

import (
	"fmt"
	"math"
	"time"

	"github.com/32bitkid/canvas"
	"github.com/32bitkid/canvas/colors"
	"github.com/32bitkid/canvas/font"
	"github.com/32bitkid/canvas/internal/config"
)

const (
	playerSize  = 0.08
	playerSpeed = 1.2 // logical units per second
	groundY     = -0.8
	coinRadius  = 0.1
	starCount   = 12
)

type Input struct {
	Up, Down, Left, Right bool
}

type Theme struct {
	Background colors.Color
	Ground     colors.Color
	Player     colors.Color
	Coin       colors.Color
	Wall       colors.Color
	Text       colors.Color
}

func ThemeFromConfig(cfg config.Config) Theme {
	return Theme{
		Background: cfg.Color("background", colors.Black),
		Ground:     cfg.Color("ground", colors.Green),
		Player:     cfg.Color("player", colors.Blue),
		Coin:       cfg.Color("coin", colors.FromRGB(0xFF, 0xD7, 0x00)),
		Wall:       cfg.Color("wall", colors.Red),
		Text:       cfg.Color("text", colors.White),
	}
}

type State struct {
	X, Y    float64
	Elapsed time.Duration
	Frame   uint64

	Theme Theme
	// Sparkle picks the colors of the background stars.
	Sparkle func() colors.Color
}

func NewState(theme Theme) *State {
	return &State{
		X:       0,
		Y:       groundY + playerSize,
		Theme:   theme,
		Sparkle: colors.RandomHappy,
	}
}

// Update advances the scene by dt. The player is kept inside the logical
// space so that every drawing call stays in range.
func (s *State) Update(in Input, dt time.Duration) {
	step := playerSpeed * dt.Seconds()
	if in.Left {
		s.X -= step
	}
	if in.Right {
		s.X += step
	}
	if in.Up {
		s.Y += step
	}
	if in.Down {
		s.Y -= step
	}

	s.X = clamp(s.X, -1+playerSize, 1-playerSize)
	s.Y = clamp(s.Y, groundY+playerSize, 1-playerSize)

	s.Elapsed += dt
	s.Frame++
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

// Draw renders the scene. It issues every kind of drawing call the canvas
// supports: clear, fill, pixels, lines, triangles, quads and text.
func (s *State) Draw(c *canvas.Canvas, f *font.Font) {
	c.Clear()
	if s.Theme.Background != colors.Black {
		c.SetColor(s.Theme.Background)
		c.Fill()
	}

	s.drawStars(c)

	c.SetColor(s.Theme.Ground)
	c.Line(canvas.Pt(-1, groundY), canvas.Pt(1, groundY))

	c.SetColor(s.Theme.Wall)
	c.Quad(canvas.Pt(-0.9, -0.2), canvas.Pt(-0.4, -0.2), canvas.Pt(-0.4, -0.3), canvas.Pt(-0.9, -0.3))
	c.Quad(canvas.Pt(0.3, 0.2), canvas.Pt(0.85, 0.2), canvas.Pt(0.85, 0.1), canvas.Pt(0.3, 0.1))

	s.drawCoin(c, canvas.Pt(0.6, 0.5))

	c.SetColor(s.Theme.Player)
	c.Quad(
		canvas.Pt(s.X-playerSize, s.Y+playerSize),
		canvas.Pt(s.X+playerSize, s.Y+playerSize),
		canvas.Pt(s.X+playerSize, s.Y-playerSize),
		canvas.Pt(s.X-playerSize, s.Y-playerSize),
	)
	c.FloodFill(canvas.Pt(s.X, s.Y))

	c.SetColor(s.Theme.Text)
	c.Text(canvas.Pt(-0.97, 0.95), fmt.Sprintf("FRAME %d", s.Frame), f)
}

// drawCoin draws a triangle spinning around center.
func (s *State) drawCoin(c *canvas.Canvas, center canvas.Point) {
	angle := s.Elapsed.Seconds() * math.Pi
	var p [3]canvas.Point
	for i := range p {
		a := angle + float64(i)*2*math.Pi/3
		p[i] = canvas.Pt(center.X+coinRadius*math.Cos(a), center.Y+coinRadius*math.Sin(a))
	}
	c.SetColor(s.Theme.Coin)
	c.Triangle(p[0], p[1], p[2])
	c.Pixel(center)
}

// drawStars scatters a few pixels over the sky, moving them with the frame
// counter.
func (s *State) drawStars(c *canvas.Canvas) {
	for i := 0; i < starCount; i++ {
		x := math.Mod(float64(i)*0.37+float64(s.Frame)*0.005, 2) - 1
		y := 0.2 + math.Mod(float64(i)*0.53, 0.75)
		if s.Sparkle != nil {
			c.SetColor(s.Sparkle())
		}
		c.Pixel(canvas.Pt(x, y))
	}
}
