package errors

import (
	"errors"
)

// Wrap wraps an error with additional context, creating a SitecheckError if the input is not already one
func Wrap(err error, errType ErrorType, code, message string) *SitecheckError {
	if err == nil {
		return nil
	}

	// Keep the path and context of an existing SitecheckError
	var se *SitecheckError
	if errors.As(err, &se) {
		return &SitecheckError{
			Type:    errType,
			Code:    code,
			Message: message,
			Cause:   se,
			Path:    se.Path,
			Context: se.Context,
		}
	}

	return &SitecheckError{
		Type:    errType,
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// WrapIO wraps an error as an I/O error on path
func WrapIO(err error, code, message, path string) *SitecheckError {
	se := Wrap(err, ErrorTypeIO, code, message)
	if se != nil {
		se.Path = path
	}
	return se
}

// WrapConfig wraps an error as a configuration error
func WrapConfig(err error, code, message string) *SitecheckError {
	return Wrap(err, ErrorTypeConfig, code, message)
}

// WrapInternal wraps an error as an internal error
func WrapInternal(err error, code, message string) *SitecheckError {
	return Wrap(err, ErrorTypeInternal, code, message)
}

// GetErrorContext extracts context information from an error chain
func GetErrorContext(err error) map[string]interface{} {
	var se *SitecheckError
	if errors.As(err, &se) && se.Context != nil {
		return se.Context
	}
	return nil
}
