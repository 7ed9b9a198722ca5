package screen

import (
	"errors"
	"image"
	"testing"

	"github.com/32bitkid/canvas/colors"
)

func mustPanic(t *testing.T, fn func()) *BoundsError {
	t.Helper()
	var bErr *BoundsError
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected panic")
			}
			err, ok := r.(error)
			if !ok || !errors.As(err, &bErr) {
				t.Fatalf("unexpected panic value: %v", r)
			}
		}()
		fn()
	}()
	return bErr
}

func countNonZero(buf *Buffer) int {
	n := 0
	for _, c := range buf.Pix() {
		if c != colors.Black {
			n++
		}
	}
	return n
}

func TestNewBuffer(t *testing.T) {
	buf := NewBuffer(7, 3)
	if w, h := buf.Size(); w != 7 || h != 3 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
	if len(buf.Pix()) != 21 {
		t.Fatalf("unexpected length %d", len(buf.Pix()))
	}
	if buf.Color() != colors.White {
		t.Fatal("expected default draw color to be white")
	}
	if countNonZero(buf) != 0 {
		t.Fatal("expected a black buffer")
	}
}

func TestNewBufferInvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewBuffer(0, 10)
}

func TestSetGet(t *testing.T) {
	buf := NewBuffer(5, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			buf.Clear()
			c := colors.FromRGB(uint8(x), uint8(y), 0x80)
			buf.Set(x, y, c)
			if actual := buf.Get(x, y); actual != c {
				t.Fatalf("(%d, %d): expected(%v) != actual(%v)", x, y, c, actual)
			}
			if buf.Pix()[y*5+x] != c {
				t.Fatalf("(%d, %d): not stored row-major", x, y)
			}
			if countNonZero(buf) != 1 {
				t.Fatalf("(%d, %d): other pixels changed", x, y)
			}
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	buf := NewBuffer(4, 3)
	cases := []image.Point{{4, 0}, {0, 3}, {-1, 0}, {0, -1}, {100, 100}}
	for _, p := range cases {
		err := mustPanic(t, func() { buf.Set(p.X, p.Y, colors.Red) })
		if err.X != p.X || err.Y != p.Y || err.Width != 4 || err.Height != 3 {
			t.Fatalf("unexpected error %+v", err)
		}
		mustPanic(t, func() { buf.Get(p.X, p.Y) })
		mustPanic(t, func() { buf.Pixel(p.X, p.Y) })
	}
	if countNonZero(buf) != 0 {
		t.Fatal("out of bounds write must not wrap")
	}

	err := mustPanic(t, func() { buf.Get(4, 0) })
	if err.Error() != "(4, 0) is out of bounds" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestClearAndFill(t *testing.T) {
	buf := NewBuffer(6, 6)
	buf.SetColor(colors.Green)
	buf.Fill()
	for i, c := range buf.Pix() {
		if c != colors.Green {
			t.Fatalf("%d: expected green got %v", i, c)
		}
	}

	buf.SetColor(colors.Red)
	if buf.Get(0, 0) != colors.Green {
		t.Fatal("SetColor must not affect drawn pixels")
	}

	buf.Clear()
	for i, c := range buf.Pix() {
		if c != colors.Black {
			t.Fatalf("%d: expected black got %v", i, c)
		}
	}
	if buf.Color() != colors.Red {
		t.Fatal("Clear must not change the draw color")
	}
}

func TestPixelUsesDrawColor(t *testing.T) {
	buf := NewBuffer(3, 3)
	buf.SetColor(colors.Blue)
	buf.Pixel(1, 2)
	if buf.Get(1, 2) != colors.Blue {
		t.Fatal("expected blue pixel")
	}
}

func TestFloodFill(t *testing.T) {
	buf := NewBuffer(10, 10)
	buf.Quad(image.Pt(2, 2), image.Pt(7, 2), image.Pt(7, 7), image.Pt(2, 7))

	buf.SetColor(colors.Red)
	buf.FloodFill(4, 4)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := buf.Get(x, y)
			inside := x > 2 && x < 7 && y > 2 && y < 7
			border := !inside && x >= 2 && x <= 7 && y >= 2 && y <= 7
			switch {
			case inside && c != colors.Red:
				t.Fatalf("(%d, %d): expected red got %v", x, y, c)
			case border && c != colors.White:
				t.Fatalf("(%d, %d): expected white got %v", x, y, c)
			case !inside && !border && c != colors.Black:
				t.Fatalf("(%d, %d): expected black got %v", x, y, c)
			}
		}
	}

	// Filling with the region's own color is a no-op.
	buf.FloodFill(4, 4)
	if buf.Get(4, 4) != colors.Red {
		t.Fatal("unexpected change")
	}
}

func TestFloodFillOutside(t *testing.T) {
	buf := NewBuffer(4, 4)
	buf.SetColor(colors.Blue)
	buf.FloodFill(0, 0)
	for i, c := range buf.Pix() {
		if c != colors.Blue {
			t.Fatalf("%d: expected blue got %v", i, c)
		}
	}
	mustPanic(t, func() { buf.FloodFill(4, 0) })
}
