package images

import (
	"crypto/md5"
	"fmt"
	"image"
)

// ComputeChecksum generates a deterministic checksum of an NRGBA grid, used
// to verify that the transform is idempotent.
//
// Arguments:
// - img: The grid to compute the checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string over the dimensions and pixel bytes.
//
// Example:
//
// ```go
//
//	checksum := ComputeChecksum(out)
//	fmt.Printf("Output checksum: %s\n", checksum)
//
// ```
func ComputeChecksum(img *image.NRGBA) string {
	b := img.Bounds()
	if b.Empty() {
		return "empty"
	}

	hash := md5.New()
	fmt.Fprintf(hash, "%dx%d:", b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		hash.Write(img.Pix[i : i+b.Dx()*4])
	}
	return fmt.Sprintf("%x", hash.Sum(nil))
}
