package present

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// WritePNG encodes img as a PNG, upscaled by an integer factor using
// nearest-neighbour sampling so that pixels stay crisp.
func WritePNG(w io.Writer, img image.Image, scale int) error {
	if scale < 1 {
		return fmt.Errorf("invalid scale: %d", scale)
	}

	out := img
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		out = dst
	}

	return png.Encode(w, out)
}

// SavePNG writes img to path, see WritePNG.
func SavePNG(path string, img image.Image, scale int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WritePNG(f, img, scale)
}
