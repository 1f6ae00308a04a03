package images

import (
	"image"
	"image/color"
)

// Transparent is written over every pixel outside a mask.
var Transparent = color.NRGBA{R: 255, G: 255, B: 255, A: 0}

// ApplyCircleMask replaces every pixel of img outside c with Transparent.
// img is modified in place; pixels inside c keep their color and alpha.
//
// There is no anti-aliasing, a pixel is either inside or outside.
//
// Arguments:
// - img: The grid to mask.
// - c: The circle to keep, in img's coordinate space.
//
// Returns:
// - The number of pixels that were made transparent.
func ApplyCircleMask(img *image.NRGBA, c Circle) int {
	b := img.Bounds()
	masked := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c.Contains(x, y) {
				continue
			}
			img.SetNRGBA(x, y, Transparent)
			masked++
		}
	}
	return masked
}
