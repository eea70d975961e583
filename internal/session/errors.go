package session

import "fmt"

// Error codes for session failures
const (
	// ErrNotAuthenticated means an operation required a live session
	// and there is none.
	ErrNotAuthenticated = "SESSION_NOT_AUTHENTICATED"

	// ErrTokenRejected means the backend returned a token the client
	// cannot use (undecodable, or already expired).
	ErrTokenRejected = "SESSION_TOKEN_REJECTED"

	// ErrPersistFailed means the token could not be written to the
	// store; the session state was left unchanged.
	ErrPersistFailed = "SESSION_PERSIST_FAILED"
)

// SessionError represents a session lifecycle error with code and cause.
type SessionError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SessionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *SessionError) Unwrap() error {
	return e.Cause
}

// NewError creates a new SessionError.
func NewError(code, message string) *SessionError {
	return &SessionError{Code: code, Message: message}
}

// WrapError wraps an existing error with a SessionError.
func WrapError(code, message string, cause error) *SessionError {
	return &SessionError{Code: code, Message: message, Cause: cause}
}

// IsSessionError checks if an error is a SessionError with the given code.
func IsSessionError(err error, code string) bool {
	if sessErr, ok := err.(*SessionError); ok {
		return sessErr.Code == code
	}
	return false
}
