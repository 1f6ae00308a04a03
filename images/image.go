// Package images - decoding, cropping, masking and encoding of RGBA pixel grids.
package images

import (
	"bytes"
	"image"
	"image/png"

	// Registered decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
)

var (
	// ErrEmptyImage is returned when there is nothing to decode or encode.
	ErrEmptyImage = errors.New("image is empty")
	// ErrUnknownFormat is returned when the data matches no registered decoder.
	ErrUnknownFormat = errors.New("unknown image format")
)

// Image represents an encoded image with its format and dimensions.
type Image struct {
	// The format of the image.
	Format ImageFormat `json:"format" yaml:"format"`
	// The data of the image.
	Data []byte `json:"data" yaml:"data"`
	// The width of the image.
	Width int `json:"width" yaml:"width"`
	// The height of the image.
	Height int `json:"height" yaml:"height"`
}

// Decode decodes an encoded image of any supported format.
//
// Arguments:
// - data: The raw bytes of a PNG, JPEG, GIF, BMP or WebP image.
//
// Returns:
// - image.Image: The decoded image in whatever color model the codec produced.
// - ImageFormat: The format that was decoded.
// - error: ErrEmptyImage, ErrUnknownFormat or a wrapped codec error.
func Decode(data []byte) (image.Image, ImageFormat, error) {
	if len(data) == 0 {
		return nil, FormatUnknown, ErrEmptyImage
	}

	if DetectFormat(data) == FormatWebP {
		img, err := webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, FormatWebP, errors.Wrap(err, "failed to decode webp")
		}
		return img, FormatWebP, nil
	}

	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, FormatUnknown, ErrUnknownFormat
		}
		return nil, ImageFormat(name), errors.Wrapf(err, "failed to decode %s", name)
	}
	return img, ImageFormat(name), nil
}

// ToNRGBA converts img to a non-premultiplied RGBA grid whose bounds start at
// the origin. The result never aliases img.
//
// NRGBA sources are copied byte for byte, so transparent pixels keep their
// color channels.
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// EncodePNG encodes img as a PNG.
//
// Arguments:
// - img: The image to encode.
//
// Returns:
// - *Image: The encoded PNG with its dimensions.
// - error: ErrEmptyImage for a zero-sized image, or the encoder error.
func EncodePNG(img image.Image) (*Image, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "failed to encode png")
	}

	return &Image{
		Format: FormatPNG,
		Data:   buf.Bytes(),
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}
