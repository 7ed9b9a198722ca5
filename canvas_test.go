package canvas

import (
	"errors"
	"image"
	"testing"

	"github.com/32bitkid/canvas/colors"
	"github.com/32bitkid/canvas/font"
	"github.com/32bitkid/canvas/screen"
)

func TestPointToPixel(t *testing.T) {
	c := New(800, 600)
	cases := []struct {
		x, y     float64
		expected image.Point
	}{
		{-1, -1, image.Pt(0, 599)},
		{1, 1, image.Pt(799, 0)},
		{-1, 1, image.Pt(0, 0)},
		{1, -1, image.Pt(799, 599)},
		{0, 0, image.Pt(399, 300)},
		{0.5, -0.5, image.Pt(599, 450)},
	}

	for i, tc := range cases {
		if actual := c.PointToPixel(tc.x, tc.y); actual != tc.expected {
			t.Fatalf("%d: expected(%v) != actual(%v)", i, tc.expected, actual)
		}
	}
}

func TestForwarding(t *testing.T) {
	c := New(4, 4)
	c.SetColor(colors.Green)
	if c.Color() != colors.Green || c.Screen().Color() != colors.Green {
		t.Fatal("expected color to be forwarded")
	}

	c.Fill()
	for i, px := range c.Buffer() {
		if px != colors.Green {
			t.Fatalf("%d: expected green got %v", i, px)
		}
	}

	c.Clear()
	for i, px := range c.Buffer() {
		if px != colors.Black {
			t.Fatalf("%d: expected black got %v", i, px)
		}
	}

	if w, h := c.Size(); w != 4 || h != 4 || len(c.Buffer()) != 16 {
		t.Fatal("unexpected size")
	}
}

func TestPixel(t *testing.T) {
	c := New(11, 11)
	c.Pixel(Pt(-1, -1))
	c.Pixel(Pt(1, 1))
	buf := c.Screen()
	if buf.Get(0, 10) != colors.White || buf.Get(10, 0) != colors.White {
		t.Fatal("expected corner pixels")
	}
}

func TestShapesMatchBuffer(t *testing.T) {
	p1, p2, p3, p4 := Pt(-0.9, -0.8), Pt(0.7, -0.2), Pt(0.3, 0.9), Pt(-0.5, 0.6)

	c := New(64, 48)
	c.Line(p1, p3)
	c.Triangle(p1, p2, p3)
	c.Quad(p1, p2, p3, p4)

	expected := screen.NewBuffer(64, 48)
	px := func(p Point) image.Point { return c.PointToPixel(p.X, p.Y) }
	expected.Line(px(p1), px(p3))
	expected.Triangle(px(p1), px(p2), px(p3))
	expected.Quad(px(p1), px(p2), px(p3), px(p4))

	for i := range expected.Pix() {
		if expected.Pix()[i] != c.Buffer()[i] {
			t.Fatalf("%d: mismatch", i)
		}
	}
}

func TestOutOfRangePanics(t *testing.T) {
	cases := []Point{{1.5, 0}, {0, 1.5}, {-1.5, 0}, {0, -1.5}}
	for i, p := range cases {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				var bErr *screen.BoundsError
				if !ok || !errors.As(err, &bErr) {
					t.Fatalf("%d: expected bounds panic, got %v", i, r)
				}
			}()
			New(11, 11).Pixel(p)
		}()
	}
}

func TestText(t *testing.T) {
	c := New(21, 21)
	c.SetColor(colors.Red)
	f := font.Builtin()
	if advance := c.Text(Pt(-1, 1), "I", f); advance != 4 {
		t.Fatalf("unexpected advance %d", advance)
	}
	if c.Screen().Get(0, 0) != colors.Red || c.Screen().Get(1, 4) != colors.Red {
		t.Fatal("expected glyph at the top-left corner")
	}
}

func TestFloodFill(t *testing.T) {
	c := New(21, 21)
	c.Quad(Pt(-0.5, -0.5), Pt(0.5, -0.5), Pt(0.5, 0.5), Pt(-0.5, 0.5))
	c.SetColor(colors.Blue)
	c.FloodFill(Pt(0, 0))

	buf := c.Screen()
	if buf.Get(10, 10) != colors.Blue {
		t.Fatal("expected the inside to be filled")
	}
	if buf.Get(0, 0) != colors.Black {
		t.Fatal("expected the outside to stay black")
	}
	if buf.Get(5, 5) != colors.White {
		t.Fatal("expected the outline to stay white")
	}
}
