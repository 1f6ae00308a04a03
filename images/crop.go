package images

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/nvr-ai/go-circlecrop/common"
)

// Crop copies the pixels of img inside box into a new grid anchored at (0, 0).
//
// The box is clipped to img's bounds first, so the result never contains
// padding. An empty intersection yields a zero-sized image.
//
// Arguments:
// - img: The source grid.
// - box: The region to keep, in img's coordinate space.
//
// Returns:
// - *image.NRGBA: The cropped copy. img is left untouched.
func Crop(img *image.NRGBA, box common.BoundingBox) *image.NRGBA {
	clipped, _ := box.Clip(img.Bounds())
	return imaging.Crop(img, clipped.ToRect())
}
