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

	// Markup errors
	ErrUnknownAttribute    ErrorCode = "UNKNOWN_ATTRIBUTE"
	ErrUnmatchedOpenBrace  ErrorCode = "UNMATCHED_OPEN_BRACE"
	ErrUnmatchedCloseBrace ErrorCode = "UNMATCHED_CLOSE_BRACE"
	ErrEmptyStyleList      ErrorCode = "EMPTY_STYLE_LIST"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Theme errors
	ErrThemeLoad    ErrorCode = "THEME_LOAD"
	ErrThemeInvalid ErrorCode = "THEME_INVALID"

	// Output errors
	ErrWrite ErrorCode = "WRITE"
)

// Detail keys shared by markup errors
const (
	DetailSegment = "segment"
	DetailOffset  = "offset"
	DetailName    = "name"
)

// TinctError represents a structured error with code and details
type TinctError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TinctError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TinctError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TinctError) Is(target error) bool {
	var targetErr *TinctError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TinctError with the given code and message
func New(code ErrorCode, message string) *TinctError {
	return &TinctError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TinctError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TinctError {
	return &TinctError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TinctError
func Wrap(err error, code ErrorCode, message string) *TinctError {
	if err == nil {
		return nil
	}
	return &TinctError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TinctError {
	if err == nil {
		return nil
	}
	return &TinctError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TinctError) WithDetail(key string, value interface{}) *TinctError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TinctError) WithDetails(details map[string]interface{}) *TinctError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tinctErr *TinctError
	if errors.As(err, &tinctErr) {
		return tinctErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TinctError
func GetErrorCode(err error) ErrorCode {
	var tinctErr *TinctError
	if errors.As(err, &tinctErr) {
		return tinctErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TinctError
func GetErrorDetails(err error) map[string]interface{} {
	var tinctErr *TinctError
	if errors.As(err, &tinctErr) {
		return tinctErr.Details
	}
	return nil
}

// IsMarkupError reports whether err was raised while parsing markup
func IsMarkupError(err error) bool {
	switch GetErrorCode(err) {
	case ErrUnknownAttribute, ErrUnmatchedOpenBrace, ErrUnmatchedCloseBrace, ErrEmptyStyleList:
		return true
	}
	return false
}
