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
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Validation errors, raised before a relocation is accepted
	ErrNotADirectory  ErrorCode = "NOT_A_DIRECTORY"
	ErrSamePath       ErrorCode = "SAME_PATH"
	ErrTargetNotEmpty ErrorCode = "TARGET_NOT_EMPTY"
	ErrIO             ErrorCode = "IO_ERROR"
	ErrRelocationBusy ErrorCode = "RELOCATION_BUSY"

	// Execution errors, raised by the worker's step sequence
	ErrClearTarget  ErrorCode = "CLEAR_TARGET"
	ErrMoveContents ErrorCode = "MOVE_CONTENTS"
	ErrCreateLink   ErrorCode = "CREATE_LINK"
)

// JunctError represents a structured error with code and details
type JunctError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *JunctError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *JunctError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *JunctError) Is(target error) bool {
	var targetErr *JunctError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new JunctError with the given code and message
func New(code ErrorCode, message string) *JunctError {
	return &JunctError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new JunctError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *JunctError {
	return &JunctError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a JunctError
func Wrap(err error, code ErrorCode, message string) *JunctError {
	if err == nil {
		return nil
	}
	return &JunctError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *JunctError {
	if err == nil {
		return nil
	}
	return &JunctError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *JunctError) WithDetail(key string, value interface{}) *JunctError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *JunctError) WithDetails(details map[string]interface{}) *JunctError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsCode reports whether err carries the given error code
func IsCode(err error, code ErrorCode) bool {
	var je *JunctError
	if errors.As(err, &je) {
		return je.Code == code
	}
	return false
}

// CodeOf returns the error code carried by err, or ErrUnknown
func CodeOf(err error) ErrorCode {
	var je *JunctError
	if errors.As(err, &je) {
		return je.Code
	}
	return ErrUnknown
}
