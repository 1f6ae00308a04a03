package images

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeChecksum(t *testing.T) {
	a := getGradientImage(32, 32)
	b := getGradientImage(32, 32)
	assert.Equal(t, ComputeChecksum(a), ComputeChecksum(b))

	b.SetNRGBA(31, 31, Transparent)
	assert.NotEqual(t, ComputeChecksum(a), ComputeChecksum(b))

	// Same bytes, different shape.
	wide := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	tall := image.NewNRGBA(image.Rect(0, 0, 1, 4))
	assert.NotEqual(t, ComputeChecksum(wide), ComputeChecksum(tall))

	assert.Equal(t, "empty", ComputeChecksum(image.NewNRGBA(image.Rectangle{})))
}

func TestComputeChecksumSubImage(t *testing.T) {
	src := getGradientImage(20, 20)
	sub := src.SubImage(image.Rect(5, 5, 15, 15)).(*image.NRGBA)
	assert.Equal(t, ComputeChecksum(ToNRGBA(sub)), ComputeChecksum(sub))
}
