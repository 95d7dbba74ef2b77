package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ConfigLoadFailed indicates the configuration could not be read.
	ConfigLoadFailed AppErrorType = iota
	// ValidationFailed indicates validation failed.
	ValidationFailed
	// UnknownFile indicates a file name that no generator produces.
	UnknownFile
	// GenerateFailed indicates a file could not be built or written.
	GenerateFailed
	// InitFailed indicates configuration initialization failed.
	InitFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewUnknownFileError creates an unknown file error for name.
func NewUnknownFileError(name string) *AppError {
	return NewAppError(UnknownFile, fmt.Sprintf("unknown file %q (see 'repogen list')", name), nil)
}

// NewGenerateError creates a generation error for the named file.
func NewGenerateError(name string, cause error) *AppError {
	return NewAppError(GenerateFailed, "failed to generate "+name, cause)
}

// NewInitError creates an init error.
func NewInitError(message string, cause error) *AppError {
	return NewAppError(InitFailed, message, cause)
}
