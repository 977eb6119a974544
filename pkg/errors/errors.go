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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Archive errors
	ErrArchiveOpen ErrorCode = "ARCHIVE_OPEN"
	ErrArchiveRead ErrorCode = "ARCHIVE_READ"

	// FileSystem errors
	ErrFileAccess  ErrorCode = "FILE_ACCESS"
	ErrFileCreate  ErrorCode = "FILE_CREATE"
	ErrFileWrite   ErrorCode = "FILE_WRITE"
	ErrFileDelete  ErrorCode = "FILE_DELETE"
	ErrDirCreate   ErrorCode = "DIR_CREATE"
	ErrDirDelete   ErrorCode = "DIR_DELETE"
	ErrStateDelete ErrorCode = "STATE_DELETE"

	// Registry errors
	ErrRegistryLoad ErrorCode = "REGISTRY_LOAD"
	ErrRegistrySave ErrorCode = "REGISTRY_SAVE"
)

// HearthError represents a structured error with code and details
type HearthError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HearthError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HearthError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HearthError) Is(target error) bool {
	var targetErr *HearthError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HearthError with the given code and message
func New(code ErrorCode, message string) *HearthError {
	return &HearthError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HearthError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HearthError {
	return &HearthError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HearthError
func Wrap(err error, code ErrorCode, message string) *HearthError {
	if err == nil {
		return nil
	}
	return &HearthError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HearthError {
	if err == nil {
		return nil
	}
	return &HearthError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HearthError) WithDetail(key string, value interface{}) *HearthError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var hearthErr *HearthError
	if errors.As(err, &hearthErr) {
		return hearthErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HearthError
func GetErrorCode(err error) ErrorCode {
	var hearthErr *HearthError
	if errors.As(err, &hearthErr) {
		return hearthErr.Code
	}
	return ErrUnknown
}
