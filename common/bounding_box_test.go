package common

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenteredBox(t *testing.T) {
	tests := []struct {
		name     string
		center   image.Point
		radius   int
		expected BoundingBox
	}{
		{"1024 source", image.Pt(512, 512), 420, BoundingBox{92, 92, 932, 932}},
		{"840 source", image.Pt(420, 420), 420, BoundingBox{0, 0, 840, 840}},
		{"Origin", image.Pt(0, 0), 10, BoundingBox{-10, -10, 10, 10}},
		{"Zero radius", image.Pt(5, 7), 0, BoundingBox{5, 7, 5, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := CenteredBox(tt.center, tt.radius)
			assert.Equal(t, tt.expected, box)
			assert.Equal(t, image.Pt(2*tt.radius, 2*tt.radius), box.Size())
		})
	}
}

func TestBoundingBoxClip(t *testing.T) {
	tests := []struct {
		name        string
		box         BoundingBox
		bounds      image.Rectangle
		expected    BoundingBox
		wantClipped bool
	}{
		{
			name:     "Inside",
			box:      BoundingBox{92, 92, 932, 932},
			bounds:   image.Rect(0, 0, 1024, 1024),
			expected: BoundingBox{92, 92, 932, 932},
		},
		{
			name:     "Exact fit",
			box:      BoundingBox{0, 0, 840, 840},
			bounds:   image.Rect(0, 0, 840, 840),
			expected: BoundingBox{0, 0, 840, 840},
		},
		{
			name:        "Source smaller than box",
			box:         BoundingBox{-170, -170, 670, 670},
			bounds:      image.Rect(0, 0, 500, 500),
			expected:    BoundingBox{0, 0, 500, 500},
			wantClipped: true,
		},
		{
			name:        "Clipped on one axis",
			box:         BoundingBox{80, -120, 920, 720},
			bounds:      image.Rect(0, 0, 1000, 600),
			expected:    BoundingBox{80, 0, 920, 600},
			wantClipped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clipped := tt.box.Clip(tt.bounds)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.wantClipped, clipped)
			assert.False(t, got.Empty())
		})
	}
}

func TestBoundingBoxClipNoOverlap(t *testing.T) {
	got, clipped := BoundingBox{100, 100, 200, 200}.Clip(image.Rect(0, 0, 50, 50))
	assert.True(t, clipped)
	assert.True(t, got.Empty())
}

func TestBoundingBoxString(t *testing.T) {
	assert.Equal(t, "(92, 92)-(932, 932)", BoundingBox{92, 92, 932, 932}.String())
}
