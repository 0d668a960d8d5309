package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed domain error surfaced to the portal user.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors by code so sentinel comparisons survive Clone and Wrap.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e != nil && t != nil && e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Predefined errors for every recoverable portal condition.
var (
	ErrAccountNotFound    = New("ACCOUNT_NOT_FOUND", "no account found for this user ID and role")
	ErrCredentialMismatch = New("CREDENTIAL_MISMATCH", "incorrect password")
	ErrValidation         = New("VALIDATION_ERROR", "validation failed")
	ErrDuplicateAccount   = New("DUPLICATE_ACCOUNT", "an account with this user ID and role already exists, please login")
	ErrNotAuthenticated   = New("NOT_AUTHENTICATED", "not logged in")
	ErrInvalidTransition  = New("INVALID_TRANSITION", "operation not valid in the current state")
	ErrInternal           = New("INTERNAL_ERROR", "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
