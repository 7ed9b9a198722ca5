package font

import (
	"encoding/binary"
	"fmt"
	"io"
)

type fontHeader struct {
	First      uint16
	Characters uint16
	LineHeight uint16
}

type glyphHeader struct {
	Width  uint8
	Height uint8
}

const headerSize = 6

// Read decodes a font. The layout is a little-endian header (first
// character, character count, line height), a table of glyph offsets
// relative to the start of the font, and the glyphs themselves: a width and
// height byte followed by the row-padded bitmap.
func Read(r io.ReadSeeker) (*Font, error) {
	var h fontHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("font header: %w", err)
	}

	f := Font{
		First:      rune(h.First),
		LineHeight: int(h.LineHeight),
		Glyphs:     make([]Glyph, int(h.Characters)),
	}

	pointers := make([]uint16, h.Characters)
	if err := binary.Read(r, binary.LittleEndian, &pointers); err != nil {
		return nil, fmt.Errorf("glyph table: %w", err)
	}

	for i, offset := range pointers {
		if _, err := r.Seek(int64(offset), io.SeekStart); err != nil {
			return nil, fmt.Errorf("glyph %d: %w", i, err)
		}

		var gh glyphHeader
		if err := binary.Read(r, binary.LittleEndian, &gh); err != nil {
			return nil, fmt.Errorf("glyph %d: %w", i, err)
		}

		bitmap := make([]uint8, bytesPerRow(gh.Width)*int(gh.Height))
		if _, err := io.ReadFull(r, bitmap); err != nil {
			return nil, fmt.Errorf("glyph %d bitmap: %w", i, err)
		}

		f.Glyphs[i] = Glyph{
			Width:  gh.Width,
			Height: gh.Height,
			bitmap: bitmap,
		}
	}

	return &f, nil
}

// Write encodes f in the layout understood by Read.
func Write(w io.Writer, f *Font) error {
	if f.First < 0 || f.First > 0xFFFF || len(f.Glyphs) > 0xFFFF {
		return fmt.Errorf("font out of range: first %q, %d glyphs", f.First, len(f.Glyphs))
	}

	h := fontHeader{
		First:      uint16(f.First),
		Characters: uint16(len(f.Glyphs)),
		LineHeight: uint16(f.LineHeight),
	}

	pointers := make([]uint16, len(f.Glyphs))
	offset := headerSize + 2*len(f.Glyphs)
	for i, g := range f.Glyphs {
		if offset > 0xFFFF {
			return fmt.Errorf("font too large at glyph %d", i)
		}
		pointers[i] = uint16(offset)
		offset += 2 + len(g.bitmap)
	}

	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, pointers); err != nil {
		return err
	}
	for _, g := range f.Glyphs {
		if err := binary.Write(w, binary.LittleEndian, glyphHeader{g.Width, g.Height}); err != nil {
			return err
		}
		if _, err := w.Write(g.bitmap); err != nil {
			return err
		}
	}
	return nil
}
