package common

import (
	"fmt"
	"image"
)

// BoundingBox is an axis-aligned crop region.
//
// Right and Bottom are exclusive, like image.Rectangle.
type BoundingBox struct {
	Left, Top, Right, Bottom int
}

// CenteredBox returns the square box of side 2*radius centered on center.
//
// Arguments:
// - center: The point the box is centered on.
// - radius: Half the side of the box in pixels.
//
// Returns:
// - The bounding box (center.X-radius, center.Y-radius, center.X+radius, center.Y+radius).
//
// @example
// box := CenteredBox(image.Pt(512, 512), 420)
// fmt.Println(box) // (92, 92)-(932, 932)
func CenteredBox(center image.Point, radius int) BoundingBox {
	return BoundingBox{
		Left:   center.X - radius,
		Top:    center.Y - radius,
		Right:  center.X + radius,
		Bottom: center.Y + radius,
	}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("(%d, %d)-(%d, %d)", b.Left, b.Top, b.Right, b.Bottom)
}

// ToRect converts the bounding box to a canonical image.Rectangle.
func (b BoundingBox) ToRect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

// Clip intersects the box with bounds.
//
// Arguments:
// - bounds: The available pixels, usually img.Bounds().
//
// Returns:
// - The clipped box. It is empty when the box and bounds do not overlap.
// - Whether any clipping happened.
func (b BoundingBox) Clip(bounds image.Rectangle) (BoundingBox, bool) {
	r := b.ToRect()
	clipped := r.Intersect(bounds)
	out := BoundingBox{
		Left:   clipped.Min.X,
		Top:    clipped.Min.Y,
		Right:  clipped.Max.X,
		Bottom: clipped.Max.Y,
	}
	return out, clipped != r
}

// Size returns the width and height of the box.
func (b BoundingBox) Size() image.Point {
	return b.ToRect().Size()
}

// Empty reports whether the box contains no pixels.
func (b BoundingBox) Empty() bool {
	return b.ToRect().Empty()
}
