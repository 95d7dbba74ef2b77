package textfile

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters is wrapped by every error raised because a generator
// was configured with a blank or malformed required value.
var ErrInvalidParameters = errors.New("invalid parameters")

// TextFileErrorType categorizes text file errors.
type TextFileErrorType int

const (
	// LocationUndefined indicates no absolute target path could be produced.
	LocationUndefined TextFileErrorType = iota
	// WriteFailed indicates a directory creation or file write failed.
	WriteFailed
	// InvalidParameters indicates a model was configured with unusable values.
	InvalidParameters
)

// String returns a short name for the error type.
func (t TextFileErrorType) String() string {
	switch t {
	case LocationUndefined:
		return "location undefined"
	case WriteFailed:
		return "write failed"
	case InvalidParameters:
		return "invalid parameters"
	default:
		return fmt.Sprintf("TextFileErrorType(%d)", int(t))
	}
}

// TextFileError represents a failure while preparing or writing a file.
type TextFileError struct {
	// Type categorizes the error.
	Type TextFileErrorType
	// Message is the error message.
	Message string
	// File is the file path related to the error (if applicable).
	File string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *TextFileError) Error() string {
	if e.File != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (file: %s): %v", e.Message, e.File, e.Cause)
		}
		return fmt.Sprintf("%s (file: %s)", e.Message, e.File)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *TextFileError) Unwrap() error {
	return e.Cause
}

// Is makes InvalidParameters errors match ErrInvalidParameters.
func (e *TextFileError) Is(target error) bool {
	return target == ErrInvalidParameters && e.Type == InvalidParameters
}

func newTextFileError(typ TextFileErrorType, message, file string, cause error) *TextFileError {
	return &TextFileError{
		Type:    typ,
		Message: message,
		File:    file,
		Cause:   cause,
	}
}

// InvalidParametersError reports a blank or malformed required value of a
// generator. field names the offending parameter.
func InvalidParametersError(field, message string) error {
	return &TextFileError{
		Type:    InvalidParameters,
		Message: fmt.Sprintf("%s: %s", field, message),
	}
}

// IsLocationUndefined reports whether err is a LocationUndefined error.
func IsLocationUndefined(err error) bool {
	var tfErr *TextFileError
	return errors.As(err, &tfErr) && tfErr.Type == LocationUndefined
}
