// Package canvas draws on a pixel buffer using normalized coordinates.
//
// The logical space spans [-1, 1] on both axes with the origin in the
// center and y growing upwards. It is mapped onto the full pixel extent of
// the underlying screen.Buffer, whose origin is the top-left corner with y
// growing downwards.
//
// Coordinates are not clamped: a logical coordinate outside of [-1, 1] maps
// outside of the buffer and trips its bounds check, panicking with a
// *screen.BoundsError.
package canvas

import (
	"image"

	"github.com/32bitkid/canvas/colors"
	"github.com/32bitkid/canvas/font"
	"github.com/32bitkid/canvas/screen"
)

// Point is a position in logical coordinates.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

type Canvas struct {
	buf *screen.Buffer
}

func New(width, height int) *Canvas {
	return &Canvas{
		buf: screen.NewBuffer(width, height),
	}
}

// Buffer returns the raw row-major pixels, suitable for handing to a
// presenter. The slice must not be modified.
func (c *Canvas) Buffer() []colors.Color {
	return c.buf.Pix()
}

// Screen returns the underlying pixel buffer.
func (c *Canvas) Screen() *screen.Buffer {
	return c.buf
}

func (c *Canvas) Size() (int, int) {
	return c.buf.Size()
}

func (c *Canvas) Clear()                      { c.buf.Clear() }
func (c *Canvas) Fill()                       { c.buf.Fill() }
func (c *Canvas) Color() colors.Color         { return c.buf.Color() }
func (c *Canvas) SetColor(color colors.Color) { c.buf.SetColor(color) }

// PointToPixel maps a logical coordinate to a pixel coordinate. (-1, -1) is
// the bottom-left pixel and (1, 1) the top-right one. Fractions are
// truncated.
func (c *Canvas) PointToPixel(x, y float64) image.Point {
	width, height := c.buf.Size()
	x = (x + 1) / 2
	y = (y + 1) / 2
	return image.Point{
		X: int(x * float64(width-1)),
		Y: (height - 1) - int(y*float64(height-1)),
	}
}

func (c *Canvas) pixel(p Point) image.Point {
	return c.PointToPixel(p.X, p.Y)
}

func (c *Canvas) Pixel(p Point) {
	px := c.pixel(p)
	c.buf.Pixel(px.X, px.Y)
}

func (c *Canvas) Line(p1, p2 Point) {
	c.buf.Line(c.pixel(p1), c.pixel(p2))
}

func (c *Canvas) Triangle(p1, p2, p3 Point) {
	c.buf.Triangle(c.pixel(p1), c.pixel(p2), c.pixel(p3))
}

func (c *Canvas) Quad(p1, p2, p3, p4 Point) {
	c.buf.Quad(c.pixel(p1), c.pixel(p2), c.pixel(p3), c.pixel(p4))
}

// Text draws s with the top-left corner of the first glyph at p and
// returns the advance in pixels. Glyphs are clipped to the buffer.
func (c *Canvas) Text(p Point, s string, f *font.Font) int {
	px := c.pixel(p)
	return f.Draw(c.buf, px.X, px.Y, s)
}

// FloodFill fills the region around p with the draw color.
func (c *Canvas) FloodFill(p Point) {
	px := c.pixel(p)
	c.buf.FloodFill(px.X, px.Y)
}
