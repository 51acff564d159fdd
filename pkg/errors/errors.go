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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Dispatch errors
	ErrUnmatched ErrorCode = "UNMATCHED"

	// Hierarchy errors
	ErrTypeUnknown  ErrorCode = "TYPE_UNKNOWN"
	ErrTypeConflict ErrorCode = "TYPE_CONFLICT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// CatcherError represents a structured error with code and details
type CatcherError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CatcherError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CatcherError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CatcherError) Is(target error) bool {
	var targetErr *CatcherError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CatcherError with the given code and message
func New(code ErrorCode, message string) *CatcherError {
	return &CatcherError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CatcherError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CatcherError {
	return &CatcherError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CatcherError
func Wrap(err error, code ErrorCode, message string) *CatcherError {
	if err == nil {
		return nil
	}
	return &CatcherError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CatcherError {
	if err == nil {
		return nil
	}
	return &CatcherError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CatcherError) WithDetail(key string, value interface{}) *CatcherError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var catcherErr *CatcherError
	if errors.As(err, &catcherErr) {
		return catcherErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CatcherError
func GetErrorCode(err error) ErrorCode {
	var catcherErr *CatcherError
	if errors.As(err, &catcherErr) {
		return catcherErr.Code
	}
	return ErrUnknown
}
