package web

import (
	"errors"
	"net/http"
)

// HTTPError carries what an error page needs.
type HTTPError struct {
	// Err is logged, never shown.
	Err     error
	Message string
	Title   string
	Code    int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// StatusText returns Title or the standard status text.
func (e *HTTPError) StatusText() string {
	if e.Title != "" {
		return e.Title
	}
	return http.StatusText(e.Code)
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// WithCause attaches the underlying error.
func (e *HTTPError) WithCause(err error) *HTTPError {
	e.Err = err
	return e
}

func ErrBadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

func ErrForbidden(message string) *HTTPError {
	return NewHTTPError(http.StatusForbidden, message)
}

func ErrNotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

func ErrMethodNotAllowed(message string) *HTTPError {
	return NewHTTPError(http.StatusMethodNotAllowed, message)
}

func ErrInternal(message string) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message)
}

// AsHTTPError unwraps err to an HTTPError. Anything else becomes a 500
// with a generic message and err as the cause.
func AsHTTPError(err error) *HTTPError {
	var he *HTTPError
	if errors.As(err, &he) {
		return he
	}
	return ErrInternal("Something went wrong. Please try again later.").WithCause(err)
}
