package screen

import "image"

// Line draws a one pixel wide line from p1 to p2 in the draw color using
// Bresenham's algorithm. Both endpoints are included; if p1 == p2 exactly
// one pixel is drawn.
func (buf *Buffer) Line(p1, p2 image.Point) {
	x, y := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y

	dx, sx := absInt(x2-x), step(x, x2)
	dy, sy := -absInt(y2-y), step(y, y2)
	fraction := dx + dy

	for {
		buf.Pixel(x, y)
		if x == x2 && y == y2 {
			return
		}

		e2 := 2 * fraction
		if e2 >= dy {
			if x == x2 {
				return
			}
			fraction += dy
			x += sx
		}
		if e2 <= dx {
			if y == y2 {
				return
			}
			fraction += dx
			y += sy
		}
	}
}

// Triangle outlines the closed path p1→p2→p3→p1.
func (buf *Buffer) Triangle(p1, p2, p3 image.Point) {
	buf.Line(p1, p2)
	buf.Line(p2, p3)
	buf.Line(p3, p1)
}

// Quad outlines the closed path p1→p2→p3→p4→p1. The points are connected
// in the order given; convexity and winding are not checked.
func (buf *Buffer) Quad(p1, p2, p3, p4 image.Point) {
	buf.Line(p1, p2)
	buf.Line(p2, p3)
	buf.Line(p3, p4)
	buf.Line(p4, p1)
}

func step(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
