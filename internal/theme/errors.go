package theme

import "fmt"

// DecodeError indicates a descriptor that is not valid TOML.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid theme descriptor %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates a file the theme convention requires is missing:
// the descriptor itself, the images directory, or a preview image.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ValidationError indicates a descriptor that decoded cleanly but violates
// a metadata or image constraint. Loading stops at the first violation, so
// a ValidationError always describes exactly one problem.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func notFoundf(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
