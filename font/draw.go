package font

import (
	"bytes"

	"github.com/32bitkid/bitreader"
	"github.com/32bitkid/canvas/screen"
)

// Draw renders s onto buf in the buffer's draw color with the top-left
// corner of the first glyph at (x, y) and returns the horizontal advance.
// Glyph pixels that fall outside of buf are clipped.
func (f *Font) Draw(buf *screen.Buffer, x, y int, s string) int {
	start := x
	for _, r := range s {
		if g, ok := f.Glyph(r); ok {
			g.draw(buf, x, y)
		}
		x += f.advance(r)
	}
	return x - start
}

func (g Glyph) draw(buf *screen.Buffer, left, top int) {
	br := bitreader.NewReader(bytes.NewReader(g.bitmap))
	padding := uint(bytesPerRow(g.Width)*8) - uint(g.Width)

	for py := top; py < top+int(g.Height); py++ {
		for px := left; px < left+int(g.Width); px++ {
			bit, err := br.Read8(1)
			if err != nil {
				return
			}
			if bit == 1 && buf.InBounds(px, py) {
				buf.Pixel(px, py)
			}
		}
		if padding > 0 {
			if err := br.Skip(padding); err != nil {
				return
			}
		}
	}
}
