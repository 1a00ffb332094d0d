// Package errors provides structured error types for the mysportsfeeds client.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every failure of a feed request maps to exactly one code:
//   - AUTH_REQUIRED: no credentials were set before the request
//   - UNKNOWN_FEED / UNSUPPORTED_FORMAT: request validation failures
//   - REQUEST_FAILED: the API answered with a status other than 200 or 304
//   - CACHE_MISS: a 304 arrived but no stored copy could be read
//   - DECODE_ERROR: the body did not parse as the requested format
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownFeed, "unknown feed %q", name)
//	if errors.Is(err, errors.ErrCodeUnknownFeed) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeDecode, origErr, "decode %s response", format)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeUnknownFeed       Code = "UNKNOWN_FEED"
	ErrCodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"

	// Authentication errors
	ErrCodeAuthRequired Code = "AUTH_REQUIRED"

	// Transport errors
	ErrCodeNetwork       Code = "NETWORK_ERROR"
	ErrCodeRequestFailed Code = "REQUEST_FAILED"

	// Storage and decoding errors
	ErrCodeCacheMiss Code = "CACHE_MISS"
	ErrCodeDecode    Code = "DECODE_ERROR"
	ErrCodeStorage   Code = "STORAGE_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// StatusError carries the HTTP status code of a failed API call.
type StatusError struct {
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d", e.StatusCode)
}

// RequestFailed returns a REQUEST_FAILED error for the given HTTP status.
func RequestFailed(status int) *Error {
	return Wrap(ErrCodeRequestFailed, &StatusError{StatusCode: status},
		"API call failed with response code: %d", status)
}

// StatusCode returns the HTTP status carried by err, or 0 if there is none.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
