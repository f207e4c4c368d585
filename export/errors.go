package export

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSlides is returned when exporting a deck that has no slides.
	ErrNoSlides = errors.New("deck has no slides")
	// ErrSlideMissing is returned when a slide part is absent from the package.
	ErrSlideMissing = errors.New("slide part missing")
	// ErrShapeMismatch is returned when a slide holds a different number of
	// shapes than were drawn on it.
	ErrShapeMismatch = errors.New("shape count mismatch")
)

// ExportError carries the output format and step that failed.
type ExportError struct {
	Format    string // pptx, png, pdf, xlsx, docx
	Operation string
	Err       error
}

// Error returns "[format.operation] error message"
func (e *ExportError) Error() string {
	return fmt.Sprintf("[%s.%s] %v", e.Format, e.Operation, e.Err)
}

// Unwrap supports errors.Is/errors.As
func (e *ExportError) Unwrap() error {
	return e.Err
}

func wrapExport(format, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &ExportError{Format: format, Operation: operation, Err: err}
}
