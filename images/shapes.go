package images

import (
	"image"

	"github.com/chewxy/math32"
)

// Distance returns the Euclidean length of the vector (dx, dy).
func Distance(dx, dy int) float32 {
	return math32.Sqrt(float32(dx*dx + dy*dy))
}

// Circle is a pixel-grid disc used as a mask.
type Circle struct {
	Center image.Point
	Radius int
}

// CenteredCircle returns the circle of the given radius centered on r.
//
// The center uses integer division, so an even-sized grid is centered on the
// pixel just below and right of its geometric middle.
//
// @example
// c := CenteredCircle(image.Rect(0, 0, 840, 840), 420)
// fmt.Println(c.Center) // (420,420)
func CenteredCircle(r image.Rectangle, radius int) Circle {
	return Circle{
		Center: image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2),
		Radius: radius,
	}
}

// Contains reports whether the pixel (x, y) lies within the circle.
// Pixels exactly on the radius are inside.
func (c Circle) Contains(x, y int) bool {
	return Distance(x-c.Center.X, y-c.Center.Y) <= float32(c.Radius)
}
