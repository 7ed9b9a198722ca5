package font

import (
	"fmt"
	"strings"
)

// FromTemplate builds a font from textual glyph templates. Rows are separated
// by newlines or '|'; '#' marks a set pixel and '.', '_', '-', ' ' or '0' an
// unset one. Glyph i is assigned to rune first+i.
func FromTemplate(first rune, lineHeight int, templates ...string) (*Font, error) {
	f := &Font{
		First:      first,
		LineHeight: lineHeight,
		Glyphs:     make([]Glyph, 0, len(templates)),
	}

	for i, tmpl := range templates {
		g, err := glyphFromTemplate(tmpl)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", first+rune(i), err)
		}
		f.Glyphs = append(f.Glyphs, g)
	}

	return f, nil
}

func glyphFromTemplate(s string) (Glyph, error) {
	var rows [][]rune
	for _, l := range strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '|' }) {
		if l = strings.TrimRight(l, "\r"); l != "" {
			rows = append(rows, []rune(l))
		}
	}

	if len(rows) == 0 {
		return Glyph{}, fmt.Errorf("empty template")
	}
	width := len(rows[0])
	if width > 255 || len(rows) > 255 {
		return Glyph{}, fmt.Errorf("template too large: %dx%d", width, len(rows))
	}

	bpr := bytesPerRow(uint8(width))
	bitmap := make([]byte, bpr*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return Glyph{}, fmt.Errorf("invalid template width: %d is abnormal", len(row))
		}
		for x, tr := range row {
			switch tr {
			case '#':
				bitmap[y*bpr+(x>>3)] |= 0x80 >> (x & 7)
			case '.', '_', '-', ' ', '0':
			default:
				return Glyph{}, fmt.Errorf("invalid template character %q", tr)
			}
		}
	}

	return Glyph{Width: uint8(width), Height: uint8(len(rows)), bitmap: bitmap}, nil
}
