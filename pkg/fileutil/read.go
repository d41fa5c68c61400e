package fileutil

import (
	"io"
	"os"

	"github.com/availgen/availgen/internal/errors"
)

// MaxFileSize caps how many bytes ReadFileWithLimit will load (1 MiB).
// Declaration files and configs are small; anything larger is a mistake.
const MaxFileSize = 1 << 20

// ErrFileTooLarge reports an input past the MaxFileSize cap.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads a file whole, refusing files larger than
// MaxFileSize.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast when the size is already known to be over the limit.
	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
