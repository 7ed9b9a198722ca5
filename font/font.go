// Package font draws text with 1-bit bitmap fonts.
//
// Glyph bitmaps are stored row by row, each row padded to a whole number of
// bytes with the most significant bit being the left-most pixel.
package font

import (
	"fmt"
	"strings"
	"unicode"
)

type Font struct {
	First      rune
	LineHeight int
	Glyphs     []Glyph
}

type Glyph struct {
	Width  uint8
	Height uint8
	bitmap []byte
}

func bytesPerRow(width uint8) int {
	return int((width + 7) >> 3)
}

func (g Glyph) String() string {
	result := ""
	bpr := bytesPerRow(g.Width)
	for y := 0; y < int(g.Height); y++ {
		line := ""
		for x := 0; x < bpr; x++ {
			d := g.bitmap[y*bpr+x]
			line += fmt.Sprintf("%08b", d)
		}
		result += line[0:g.Width] + "\n"
	}

	return strings.Replace(strings.Replace(result, "0", " ", -1), "1", "█", -1)
}

// Glyph returns the glyph for r. Lower case letters fall back to their
// upper case glyph when the font has no lower case.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	if g, ok := f.lookup(r); ok {
		return g, true
	}
	if unicode.IsLower(r) {
		return f.lookup(unicode.ToUpper(r))
	}
	return Glyph{}, false
}

func (f *Font) lookup(r rune) (Glyph, bool) {
	i := int(r - f.First)
	if i < 0 || i >= len(f.Glyphs) {
		return Glyph{}, false
	}
	return f.Glyphs[i], true
}

func (f *Font) advance(r rune) int {
	if g, ok := f.Glyph(r); ok {
		return int(g.Width) + 1
	}
	if g, ok := f.lookup(' '); ok {
		return int(g.Width) + 1
	}
	return 0
}

// Measure returns the size in pixels of s drawn on a single line.
func (f *Font) Measure(s string) (w, h int) {
	for _, r := range s {
		w += f.advance(r)
	}
	if w > 0 {
		// no spacing after the last glyph
		w--
	}
	return w, f.LineHeight
}
