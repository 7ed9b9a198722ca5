package colors

import (
	"fmt"

	clr "github.com/lucasb-eyer/go-colorful"
)

func toColorful(c Color) clr.Color {
	r, g, b := c.RGB()
	return clr.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c clr.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return FromRGB(r, g, b)
}

func isGrey(c clr.Color) bool {
	return c.R == c.G && c.G == c.B
}

// Mix blends from c1 towards c2 by t in [0, 1]. Blending happens in Lab
// space unless either side is a grey, which would pick up a hue in Lab.
func Mix(c1, c2 Color, t float64) Color {
	clr1, clr2 := toColorful(c1), toColorful(c2)
	if isGrey(clr1) || isGrey(clr2) {
		return fromColorful(clr1.BlendRgb(clr2, t))
	}
	return fromColorful(clr1.BlendLab(clr2, t))
}

func Lighten(c Color, p float64) Color {
	h, chroma, l := toColorful(c).Hcl()
	return fromColorful(clr.Hcl(h, chroma, l+p))
}

func Darken(c Color, p float64) Color {
	h, chroma, l := toColorful(c).Hcl()
	return fromColorful(clr.Hcl(h, chroma, l-p))
}

// RandomHappy returns a random, fairly saturated color.
func RandomHappy() Color {
	return fromColorful(clr.FastHappyColor())
}

// Hex formats c as "#rrggbb".
func Hex(c Color) string {
	return toColorful(c).Hex()
}

func ParseHex(s string) (Color, error) {
	c, err := clr.Hex(s)
	if err != nil {
		return Black, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// Distance is the perceptual distance between two colors in Lab space.
func Distance(c1, c2 Color) float64 {
	return toColorful(c1).DistanceLab(toColorful(c2))
}
