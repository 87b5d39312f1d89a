package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// NetworkError indicates an HTTP call to a playground backend failed
	NetworkError ErrorCode = "NETWORK_ERROR"
	// DecodeError indicates a backend response did not match the expected schema
	DecodeError ErrorCode = "DECODE_ERROR"
	// BadResponse indicates a backend answered with a non-success HTTP status
	BadResponse ErrorCode = "BAD_RESPONSE"
	// LocalToolUnavailable indicates the local formatter could not be executed at all
	LocalToolUnavailable ErrorCode = "LOCAL_TOOL_UNAVAILABLE"
	// FormatFailed indicates the formatter ran but rejected the code
	FormatFailed ErrorCode = "FORMAT_FAILED"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// BotError represents a pipeline error with a stable code and message
type BotError struct {
	Code    ErrorCode
	Message string
	cause   error // Underlying error (not exported)
}

// New creates a BotError without an underlying cause
func New(code ErrorCode, message string) *BotError {
	return &BotError{Code: code, Message: message}
}

// Wrap creates a BotError wrapping an underlying cause
func Wrap(code ErrorCode, message string, cause error) *BotError {
	return &BotError{Code: code, Message: message, cause: cause}
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.cause
}

// IsCode reports whether err is (or wraps) a BotError with the given code
func IsCode(err error, code ErrorCode) bool {
	var be *BotError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsHard reports whether err should abort the invocation with no partial reply.
// Network, decode and bad-response errors are hard; everything else degrades.
func IsHard(err error) bool {
	return IsCode(err, NetworkError) || IsCode(err, DecodeError) || IsCode(err, BadResponse)
}
