package autofill

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for uploads that are neither PDF nor
// DOCX, before any parsing is attempted.
var ErrUnsupportedFormat = errors.New("unsupported document format (expected .pdf or .docx)")

// ReadError represents a failure to open or extract text from a document.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read document %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
