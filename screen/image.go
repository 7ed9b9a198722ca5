package screen

import (
	"image"
	"image/color"

	"github.com/32bitkid/canvas/colors"
)

// Image returns a live image.Image view of the buffer. Later drawing calls
// are visible through the view.
func (buf *Buffer) Image() image.Image {
	return bufferImage{buf}
}

type bufferImage struct {
	*Buffer
}

func (img bufferImage) ColorModel() color.Model { return colors.Model }

func (img bufferImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At follows the image.Image convention of returning a zero color outside
// of the bounds instead of panicking.
func (img bufferImage) At(x, y int) color.Color {
	if !img.InBounds(x, y) {
		return colors.Black
	}
	return img.pix[y*img.width+x]
}

// Paletted converts the buffer into an image.Paletted using the closest
// entries of p.
func (buf *Buffer) Paletted(p colors.Palette) *image.Paletted {
	dst := image.NewPaletted(image.Rect(0, 0, buf.width, buf.height), p.ColorPalette())
	index := make(map[colors.Color]uint8, len(p))
	for i, c := range p {
		if _, ok := index[c]; !ok {
			index[c] = uint8(i)
		}
	}
	cache := make(map[colors.Color]uint8)
	for i, c := range buf.pix {
		idx, ok := cache[c]
		if !ok {
			idx = index[p.Convert(c)]
			cache[c] = idx
		}
		dst.Pix[i] = idx
	}
	return dst
}

// Dithered is like Paletted, but pixels that sit between two palette
// entries are drawn as a checkerboard of both.
func (buf *Buffer) Dithered(p colors.Palette) *image.Paletted {
	dst := image.NewPaletted(image.Rect(0, 0, buf.width, buf.height), p.ColorPalette())
	cache := make(map[colors.Color]ditherPair)
	for y := 0; y < buf.height; y++ {
		for x := 0; x < buf.width; x++ {
			c := buf.pix[y*buf.width+x]
			pair, ok := cache[c]
			if !ok {
				pair = nearestPair(p, c)
				cache[c] = pair
			}
			dst.Pix[y*dst.Stride+x] = dither5050(x, y, pair.c1, pair.c2)
		}
	}
	return dst
}

type ditherPair struct{ c1, c2 uint8 }

func dither5050(x, y int, c1, c2 uint8) uint8 {
	if (x&1)^(y&1) == 0 {
		return c1
	}
	return c2
}

// nearestPair picks the two palette indices whose 50/50 checkerboard best
// approximates c. Both indices are equal when a single entry is closer.
func nearestPair(p colors.Palette, c colors.Color) ditherPair {
	best, bestDist := ditherPair{}, -1.0
	for i := range p {
		for j := i; j < len(p); j++ {
			d := colors.Distance(c, colors.Mix(p[i], p[j], 0.5))
			if bestDist < 0 || d < bestDist {
				best, bestDist = ditherPair{uint8(i), uint8(j)}, d
			}
		}
	}
	return best
}
