package colors

import "image/color"

type Palette []Color

// Convert returns the palette entry closest to c in Lab space.
func (p Palette) Convert(c Color) Color {
	if len(p) == 0 {
		return c
	}
	target := toColorful(c)
	best, bestDist := p[0], target.DistanceLab(toColorful(p[0]))
	for _, candidate := range p[1:] {
		if d := target.DistanceLab(toColorful(candidate)); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// ColorPalette adapts p for use with image.Paletted.
func (p Palette) ColorPalette() color.Palette {
	out := make(color.Palette, len(p))
	for i, c := range p {
		out[i] = c
	}
	return out
}

var (
	EGA = Palette{
		0x000000, 0x0000AA, 0x00AA00, 0x00AAAA,
		0xAA0000, 0xAA00AA, 0xAA5500, 0xAAAAAA,

		0x555555, 0x5555FF, 0x55FF55, 0x55FFFF,
		0xFF5555, 0xFF55FF, 0xFFFF55, 0xFFFFFF,
	}

	DB32EGA = Palette{
		0x000000, 0x3f3f74, 0x4b692f, 0x306082,
		0xac3232, 0x45283c, 0x8f563b, 0x847e87,

		0x323c39, 0x639bff, 0x6abe30, 0x5fcde4,
		0xd95763, 0xd77bba, 0xfbf236, 0xffffff,
	}
)

var Named = map[string]Color{
	"black": Black,
	"white": White,
	"red":   Red,
	"green": Green,
	"blue":  Blue,

	"sky":    FromRGB(135, 206, 250),
	"grass":  0x4b692f,
	"gold":   0xfbf236,
	"brick":  0xac3232,
	"stone":  0x847e87,
	"shadow": 0x323c39,
}
