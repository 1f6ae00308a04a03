// Package circlecrop crops a square image to the disc around its center and
// makes everything outside the disc transparent.
package circlecrop

import (
	"image"

	"github.com/nvr-ai/go-circlecrop/common"
	"github.com/nvr-ai/go-circlecrop/images"
	"github.com/nvr-ai/go-circlecrop/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// Radius of the kept disc in pixels. Measured by eye on the 1024x1024
	// globe artwork, it excludes the outer glow.
	Radius = 420
	// SourceSize is the side of the artwork the radius was measured on.
	SourceSize = 1024
	// OutputSize is the side of the output for any source at least this large.
	OutputSize = 2 * Radius
)

// Options configures a Cropper.
type Options struct {
	// Logger receives stage diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Cropper applies the circular crop.
type Cropper struct {
	logger *zap.Logger
}

// New creates a Cropper.
//
// Arguments:
// - opts: The cropper options. The zero value is valid.
//
// Returns:
// - A ready to use Cropper.
func New(opts Options) *Cropper {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cropper{logger: logger}
}

// Transform crops img to the 2*Radius square around its center and clears
// every pixel farther than Radius from the center of that square.
//
// Sources smaller than the square are clipped, never padded, so the output
// is then smaller than OutputSize. The input is not modified.
//
// Arguments:
// - img: The decoded source image, in any color model.
//
// Returns:
// - *image.NRGBA: The masked crop, anchored at (0, 0).
func (c *Cropper) Transform(img image.Image) *image.NRGBA {
	src := images.ToNRGBA(img)
	bounds := src.Bounds()

	center := image.Pt(bounds.Dx()/2, bounds.Dy()/2)
	box := common.CenteredBox(center, Radius)
	if clipped, ok := box.Clip(bounds); ok {
		c.logger.Warn("source smaller than crop box, clipping",
			zap.Stringer("box", box),
			zap.Stringer("clipped", clipped),
			zap.Int("width", bounds.Dx()),
			zap.Int("height", bounds.Dy()),
		)
	}

	cropped := images.Crop(src, box)
	masked := images.ApplyCircleMask(cropped, images.CenteredCircle(cropped.Bounds(), Radius))

	c.logger.Debug("masked",
		zap.Stringer("box", box),
		zap.Int("width", cropped.Bounds().Dx()),
		zap.Int("height", cropped.Bounds().Dy()),
		zap.Int("transparent", masked),
	)
	return cropped
}

// Process reads inputPath, transforms it and writes the result to outputPath
// as a PNG.
//
// The output is encoded in memory before outputPath is touched, so any read,
// decode or encode failure leaves no output file behind.
//
// Arguments:
// - inputPath: Path to a PNG, JPEG, GIF, BMP or WebP image.
// - outputPath: Destination for the PNG.
//
// Returns:
// - error: The first failure, wrapped with the stage it happened in.
func (c *Cropper) Process(inputPath, outputPath string) error {
	file, err := util.ReadImageFile(inputPath)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	img, format, err := images.Decode(file.Data)
	if err != nil {
		return errors.Wrapf(err, "decode %s", inputPath)
	}
	c.logger.Debug("decoded",
		zap.String("path", inputPath),
		zap.Stringer("format", format),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)

	encoded, err := images.EncodePNG(c.Transform(img))
	if err != nil {
		return errors.Wrap(err, "encode output")
	}

	if err := util.WriteFile(outputPath, encoded.Data); err != nil {
		return errors.Wrap(err, "write output")
	}
	c.logger.Debug("written",
		zap.String("path", outputPath),
		zap.Int("bytes", len(encoded.Data)),
	)
	return nil
}

// Process runs a Cropper built from opts. See Cropper.Process.
func Process(inputPath, outputPath string, opts Options) error {
	return New(opts).Process(inputPath, outputPath)
}
