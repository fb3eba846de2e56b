package fsutil

import "fmt"

// Op names the filesystem operation that failed.
type Op string

const (
	OpWrite  Op = "write"
	OpMkdir  Op = "mkdir"
	OpRemove Op = "remove"
	OpCopy   Op = "copy"
)

// Error represents a failed filesystem operation.
type Error struct {
	// Op is the failed operation.
	Op Op
	// Path is the file path related to the error.
	Path string
	// Message is the error message.
	Message string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (file: %s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s (file: %s)", e.Message, e.Path)
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(op Op, path, message string, cause error) *Error {
	return &Error{
		Op:      op,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}
