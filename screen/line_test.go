package screen

import (
	"image"
	"testing"

	"github.com/32bitkid/canvas/colors"
)

func drawn(buf *Buffer) map[image.Point]bool {
	w, h := buf.Size()
	set := make(map[image.Point]bool)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if buf.Get(x, y) != colors.Black {
				set[image.Pt(x, y)] = true
			}
		}
	}
	return set
}

func runLineTest(t *testing.T, p1, p2 image.Point, expected []image.Point) {
	t.Helper()
	buf := NewBuffer(16, 16)
	buf.Line(p1, p2)

	actual := drawn(buf)
	if len(actual) != len(expected) {
		t.Fatalf("%v-%v: expected(%d) != actual(%d) pixels: %v", p1, p2, len(expected), len(actual), actual)
	}
	for _, p := range expected {
		if !actual[p] {
			t.Fatalf("%v-%v: missing %v", p1, p2, p)
		}
	}
}

func TestLineDegenerate(t *testing.T) {
	runLineTest(t, image.Pt(3, 5), image.Pt(3, 5), []image.Point{{3, 5}})
}

func TestLineHorizontal(t *testing.T) {
	expected := []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	runLineTest(t, image.Pt(0, 0), image.Pt(4, 0), expected)
	runLineTest(t, image.Pt(4, 0), image.Pt(0, 0), expected)
}

func TestLineVertical(t *testing.T) {
	runLineTest(t, image.Pt(2, 6), image.Pt(2, 3), []image.Point{{2, 3}, {2, 4}, {2, 5}, {2, 6}})
}

func TestLineDiagonal(t *testing.T) {
	expected := []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}
	runLineTest(t, image.Pt(0, 0), image.Pt(4, 4), expected)
	runLineTest(t, image.Pt(4, 4), image.Pt(0, 0), expected)
}

func TestLineAntiDiagonal(t *testing.T) {
	runLineTest(t, image.Pt(0, 3), image.Pt(3, 0), []image.Point{{0, 3}, {1, 2}, {2, 1}, {3, 0}})
}

func TestLineShallow(t *testing.T) {
	// dx=4, dy=-2, error=2: ties step both axes at once.
	runLineTest(t, image.Pt(0, 0), image.Pt(4, 2), []image.Point{
		{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2},
	})
}

func TestLineSteep(t *testing.T) {
	runLineTest(t, image.Pt(0, 0), image.Pt(2, 4), []image.Point{
		{0, 0}, {1, 1}, {1, 2}, {2, 3}, {2, 4},
	})
}

// Every octant produces a connected path that includes both endpoints.
func TestLineConnected(t *testing.T) {
	center := image.Pt(8, 8)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			buf := NewBuffer(16, 16)
			end := image.Pt(x, y)
			buf.Line(center, end)

			set := drawn(buf)
			if !set[center] || !set[end] {
				t.Fatalf("%v: endpoints missing", end)
			}
			dx, dy := absInt(end.X-center.X), absInt(end.Y-center.Y)
			major := dx
			if dy > major {
				major = dy
			}
			if len(set) != major+1 {
				t.Fatalf("%v: expected %d pixels got %d", end, major+1, len(set))
			}
			for p := range set {
				if p == center {
					continue
				}
				neighbor := false
				for ny := -1; ny <= 1 && !neighbor; ny++ {
					for nx := -1; nx <= 1 && !neighbor; nx++ {
						if (nx != 0 || ny != 0) && set[image.Pt(p.X+nx, p.Y+ny)] {
							neighbor = true
						}
					}
				}
				if !neighbor {
					t.Fatalf("%v: %v is disconnected", end, p)
				}
			}
		}
	}
}

func TestLineUsesDrawColor(t *testing.T) {
	buf := NewBuffer(8, 8)
	buf.SetColor(colors.Red)
	buf.Line(image.Pt(0, 7), image.Pt(7, 0))
	for p := range drawn(buf) {
		if buf.Get(p.X, p.Y) != colors.Red {
			t.Fatalf("%v: expected red", p)
		}
	}
}

func TestLineOutOfBounds(t *testing.T) {
	buf := NewBuffer(4, 4)
	mustPanic(t, func() { buf.Line(image.Pt(0, 0), image.Pt(4, 0)) })
}

func equalBuffers(t *testing.T, a, b *Buffer) {
	t.Helper()
	for i := range a.Pix() {
		if a.Pix()[i] != b.Pix()[i] {
			w, _ := a.Size()
			t.Fatalf("(%d, %d): %v != %v", i%w, i/w, a.Pix()[i], b.Pix()[i])
		}
	}
}

func TestTriangleIsThreeLines(t *testing.T) {
	p1, p2, p3 := image.Pt(1, 1), image.Pt(14, 4), image.Pt(6, 13)

	tri := NewBuffer(16, 16)
	tri.Triangle(p1, p2, p3)

	lines := NewBuffer(16, 16)
	lines.Line(p1, p2)
	lines.Line(p2, p3)
	lines.Line(p3, p1)

	equalBuffers(t, tri, lines)
}

func TestQuadIsFourLines(t *testing.T) {
	// Self-intersecting order is accepted as-is.
	p1, p2, p3, p4 := image.Pt(0, 0), image.Pt(15, 15), image.Pt(15, 0), image.Pt(0, 15)

	quad := NewBuffer(16, 16)
	quad.Quad(p1, p2, p3, p4)

	lines := NewBuffer(16, 16)
	lines.Line(p1, p2)
	lines.Line(p2, p3)
	lines.Line(p3, p4)
	lines.Line(p4, p1)

	equalBuffers(t, quad, lines)
}
