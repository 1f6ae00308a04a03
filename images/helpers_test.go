package images

import (
	"image"
	"image/color"
)

// getTestImage returns a solid w x h image of the given color.
func getTestImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// getGradientImage returns an image where every pixel is derived from its
// coordinates, so any misplaced copy shows up as a mismatch.
func getGradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, gradientAt(x, y))
		}
	}
	return img
}

func gradientAt(x, y int) color.NRGBA {
	return color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: uint8(128 + (x+y)%128)}
}
