package token

import (
	"fmt"
)

// Error codes for token decoding failures
const (
	// ErrTokenMalformed means the string is not a three-segment token
	// or a segment could not be decoded.
	ErrTokenMalformed = "TOKEN_MALFORMED"

	// ErrTokenInvalid means the token decoded but its claims are unusable.
	ErrTokenInvalid = "TOKEN_INVALID"

	// ErrClaimMissing means a required claim (the subject) is absent.
	ErrClaimMissing = "TOKEN_CLAIM_MISSING"
)

// TokenError represents a token decoding error with code and cause.
type TokenError struct {
	// Code is the error code (e.g., TOKEN_MALFORMED)
	Code string

	// Message is a human-readable error message
	Message string

	// Cause is the underlying error that caused this error
	Cause error
}

// Error implements the error interface.
func (e *TokenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *TokenError) Unwrap() error {
	return e.Cause
}

// NewError creates a new TokenError.
func NewError(code, message string) *TokenError {
	return &TokenError{Code: code, Message: message}
}

// WrapError wraps an existing error with a TokenError.
func WrapError(code, message string, cause error) *TokenError {
	return &TokenError{Code: code, Message: message, Cause: cause}
}

// IsTokenError checks if an error is a TokenError with the given code.
func IsTokenError(err error, code string) bool {
	if tokErr, ok := err.(*TokenError); ok {
		return tokErr.Code == code
	}
	return false
}
