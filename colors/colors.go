// Package colors provides packed 24-bit RGB colors as used by the screen
// buffer, along with a handful of helpers for producing and mixing them.
//
// A Color packs three 8-bit channels into a single value as
// (r<<16)|(g<<8)|b. There is no alpha channel; the high byte is always zero
// for colors produced by this package.
package colors

import (
	"fmt"
	"image/color"
	"math/rand"
)

type Color uint32

const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
	Green Color = 0x00FF00
	Red   Color = 0xFF0000
	Blue  Color = 0x0000FF
)

const rgbMask = 0xFFFFFF

func FromRGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Random returns a uniformly distributed color. Only the low 24 bits are
// populated.
func Random() Color {
	return Color(rand.Uint32() & rgbMask)
}

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements color.Color. Packed colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	rb, gb, bb := (c>>16)&0xFF, (c>>8)&0xFF, (c>>0)&0xFF

	r = uint32((rb << 8) | rb)
	g = uint32((gb << 8) | gb)
	b = uint32((bb << 8) | bb)
	a = 0xFFFF
	return
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%s)", Hex(c))
}

// Model converts arbitrary colors into packed colors. Alpha is discarded
// after un-premultiplying.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

func FromColor(c color.Color) Color {
	if packed, ok := c.(Color); ok {
		return packed
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Black
	}
	if a != 0xFFFF {
		r = r * 0xFFFF / a
		g = g * 0xFFFF / a
		b = b * 0xFFFF / a
	}
	return FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
