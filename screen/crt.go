package screen

import (
	"image"
	"image/color"

	"github.com/32bitkid/canvas/colors"
)

const crtScale = 6

var (
	maskRed   = colors.Color(0xFF9999)
	maskGreen = colors.Color(0x99FF99)
	maskBlue  = colors.Color(0x9999FF)
)

func rgbMul(a, b colors.Color) colors.Color {
	r1, g1, b1 := a.RGB()
	r2, g2, b2 := b.RGB()
	return colors.FromRGB(
		uint8(uint32(r1)*uint32(r2)/0xFF),
		uint8(uint32(g1)*uint32(g2)/0xFF),
		uint8(uint32(b1)*uint32(b2)/0xFF),
	)
}

func clamp(i int, min int, max int) int {
	if i < min {
		return min
	}
	if i > max {
		return max
	}
	return i
}

// RenderToCRT upscales src by 6 in both directions, simulating horizontal
// color bleed, scan-lines and an aperture grille shadow mask.
func RenderToCRT(src image.Image) image.Image {
	srcRect := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, srcRect.Dx()*crtScale, srcRect.Dy()*crtScale))
	at := func(x, y int) colors.Color {
		return colors.FromColor(src.At(x, y))
	}

	for sy, dy := srcRect.Min.Y, 0; sy < srcRect.Max.Y; sy, dy = sy+1, dy+crtScale {
		for sx, dx := srcRect.Min.X, 0; sx < srcRect.Max.X; sx, dx = sx+1, dx+crtScale {
			lc := at(clamp(sx-1, srcRect.Min.X, srcRect.Max.X-1), sy)
			c := at(sx, sy)
			rc := at(clamp(sx+1, srcRect.Min.X, srcRect.Max.X-1), sy)
			for i := 0; i < crtScale*crtScale; i++ {
				ix, iy := i%crtScale, i/crtScale
				co := c

				// Bleed
				switch ix {
				case 0:
					co = colors.Mix(lc, c, 3.0/6.0)
				case 1:
					co = colors.Mix(lc, c, 4.0/6.0)
				case 2:
					co = colors.Mix(lc, c, 5.0/6.0)
				case 4:
					co = colors.Mix(c, rc, 1.0/6.0)
				case 5:
					co = colors.Mix(c, rc, 2.0/6.0)
				}

				// Scan-lines
				switch iy {
				case 0:
					co = colors.Darken(co, 0.7)
				case 1:
					co = colors.Darken(co, 0.2)
				case 4:
					co = colors.Darken(co, 0.1)
				case 5:
					co = colors.Darken(co, 0.4)
				}

				// Shadow Mask
				switch iy % 2 {
				case 0:
					switch ix {
					case 0, 1:
						co = rgbMul(co, maskRed)
					case 2, 3:
						co = rgbMul(co, maskGreen)
					case 4, 5:
						co = rgbMul(co, maskBlue)
					}
				case 1:
					switch ix {
					case 3, 4:
						co = rgbMul(co, maskRed)
					case 0, 5:
						co = rgbMul(co, maskGreen)
					case 1, 2:
						co = rgbMul(co, maskBlue)
					}
				}

				r, g, b := co.RGB()
				dst.SetRGBA(dx+ix, dy+iy, color.RGBA{R: r, G: g, B: b, A: 0xFF})
			}
		}
	}

	return dst
}
