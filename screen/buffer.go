// Package screen implements a fixed-size buffer of packed colors and the
// pixel-level drawing primitives that operate on it.
//
// Coordinates are integer pixel positions with the origin at the top-left
// corner and y growing downwards. Every access is bounds checked; an out of
// range coordinate is a bug in the caller's coordinate math and panics with a
// *BoundsError rather than being clipped.
package screen

import (
	"fmt"

	"github.com/32bitkid/canvas/colors"
)

type Buffer struct {
	pix    []colors.Color
	width  int
	height int
	color  colors.Color
}

// BoundsError is the panic value used when a pixel outside of the buffer
// is read or written.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("(%d, %d) is out of bounds", e.X, e.Y)
}

// NewBuffer allocates a black width×height buffer. The draw color starts
// out as white.
func NewBuffer(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Errorf("invalid buffer size: %dx%d", width, height))
	}
	return &Buffer{
		pix:    make([]colors.Color, width*height),
		width:  width,
		height: height,
		color:  colors.White,
	}
}

func (buf *Buffer) Size() (int, int) {
	return buf.width, buf.height
}

func (buf *Buffer) Color() colors.Color {
	return buf.color
}

// SetColor sets the color used by subsequent drawing calls. Pixels that
// are already drawn keep their color.
func (buf *Buffer) SetColor(c colors.Color) {
	buf.color = c
}

// Pix returns the row-major pixel data. Index (x, y) lives at y*width+x.
// Callers must treat the slice as read-only.
func (buf *Buffer) Pix() []colors.Color {
	return buf.pix
}

// Clear sets every pixel to black, regardless of the draw color.
func (buf *Buffer) Clear() {
	for i, max := 0, len(buf.pix); i < max; i++ {
		buf.pix[i] = colors.Black
	}
}

// Fill sets every pixel to the draw color.
func (buf *Buffer) Fill() {
	c := buf.color
	for i, max := 0, len(buf.pix); i < max; i++ {
		buf.pix[i] = c
	}
}

func (buf *Buffer) InBounds(x, y int) bool {
	return uint(x) < uint(buf.width) && uint(y) < uint(buf.height)
}

func (buf *Buffer) offset(x, y int) int {
	if !buf.InBounds(x, y) {
		panic(&BoundsError{X: x, Y: y, Width: buf.width, Height: buf.height})
	}
	return y*buf.width + x
}

func (buf *Buffer) Get(x, y int) colors.Color {
	return buf.pix[buf.offset(x, y)]
}

func (buf *Buffer) Set(x, y int, c colors.Color) {
	buf.pix[buf.offset(x, y)] = c
}

// Pixel sets (x, y) to the draw color.
func (buf *Buffer) Pixel(x, y int) {
	buf.Set(x, y, buf.color)
}
