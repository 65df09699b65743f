package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// SitecheckError is a structured error type with context.
type SitecheckError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Path    string
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *SitecheckError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Path != "" {
		parts = append(parts, e.Path)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *SitecheckError) Unwrap() error {
	return e.Cause
}

// Is matches another SitecheckError with the same type and code.
func (e *SitecheckError) Is(target error) bool {
	var t *SitecheckError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *SitecheckError) WithContext(key string, value interface{}) *SitecheckError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithPath records the file the error refers to.
func (e *SitecheckError) WithPath(path string) *SitecheckError {
	e.Path = path

	return e
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *SitecheckError {
	return &SitecheckError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// IsType reports whether err is a SitecheckError of the given type.
func IsType(err error, errType ErrorType) bool {
	var se *SitecheckError
	if errors.As(err, &se) {
		return se.Type == errType
	}

	return false
}

// VerificationFailedError signals that a run completed but recorded errors.
// The report has already been printed, so callers only need the exit status.
type VerificationFailedError struct {
	Errors   int
	Warnings int
}

func (e *VerificationFailedError) Error() string {
	return fmt.Sprintf("verification failed with %d error(s) and %d warning(s)", e.Errors, e.Warnings)
}

// IsVerificationFailed reports whether err carries a failed verification.
func IsVerificationFailed(err error) bool {
	var vf *VerificationFailedError
	return errors.As(err, &vf)
}
