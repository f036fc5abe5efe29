package domain

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat reports a file extension the extractor has no
// handler for.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// FileAccessError wraps a failure to open, read, or decode an input file.
// It is returned only while loading file contents; the transformation
// functions themselves never produce it.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("access %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }
