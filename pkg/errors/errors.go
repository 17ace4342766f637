// Package errors defines dotin's structured error type.
//
// Every error that crosses a package boundary carries a stable ErrorCode so
// callers (the CLI, tests) can branch on the kind of failure without parsing
// messages. The import operation maps its failure kinds onto the codes below.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Group errors
	ErrGroupInvalid ErrorCode = "GROUP_INVALID"

	// Import planning errors
	ErrResolutionFailed  ErrorCode = "RESOLUTION_FAILED"
	ErrOutOfScope        ErrorCode = "OUT_OF_SCOPE"
	ErrDestinationExists ErrorCode = "DESTINATION_EXISTS"
	ErrObstructedDir     ErrorCode = "OBSTRUCTED_DIRECTORY"
	ErrCrossFilesystem   ErrorCode = "CROSS_FILESYSTEM"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrMoveFailed ErrorCode = "MOVE_FAILED"
)

// DotinError represents a structured error with code and details
type DotinError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotinError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotinError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a DotinError with the same code.
func (e *DotinError) Is(target error) bool {
	var targetErr *DotinError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotinError with the given code and message
func New(code ErrorCode, message string) *DotinError {
	return &DotinError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotinError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotinError {
	return &DotinError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotinError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *DotinError {
	if err == nil {
		return nil
	}
	return &DotinError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotinError {
	if err == nil {
		return nil
	}
	return &DotinError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotinError) WithDetail(key string, value interface{}) *DotinError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dotinErr *DotinError
	if errors.As(err, &dotinErr) {
		return dotinErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotinError
func GetErrorCode(err error) ErrorCode {
	var dotinErr *DotinError
	if errors.As(err, &dotinErr) {
		return dotinErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotinError
func GetErrorDetails(err error) map[string]interface{} {
	var dotinErr *DotinError
	if errors.As(err, &dotinErr) {
		return dotinErr.Details
	}
	return nil
}
