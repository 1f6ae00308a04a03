package util

import (
	"os"

	"github.com/pkg/errors"
)

// ErrEmptyFile is returned when an input file has no content.
var ErrEmptyFile = errors.New("file is empty")

// ImageFile represents an image file.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Data is the raw bytes of the image file.
	Data []byte
}

// ReadImageFile reads one image file from disk.
//
// Arguments:
// - path: Path to the image file.
//
// Returns:
// - *ImageFile: The path and raw bytes of the file.
// - error: Error if the path is a directory, unreadable or empty.
func ReadImageFile(path string) (*ImageFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, errors.Errorf("%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.Wrap(ErrEmptyFile, path)
	}

	return &ImageFile{Path: path, Data: data}, nil
}

// WriteFile writes data to path, creating or truncating it.
//
// If the write fails after the file was created, the partial file is removed
// so a failed run leaves no output behind.
//
// Arguments:
// - path: Destination path.
// - data: Bytes to write.
//
// Returns:
// - error: Error if the file cannot be created or written.
func WriteFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
