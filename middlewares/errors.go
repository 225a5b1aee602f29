package middlewares

import (
	"errors"
	"fmt"
)

// ErrNoAdminSession is returned when the admin session cookie cannot be issued.
var ErrNoAdminSession = errors.New("middlewares: admin session unavailable")

// PanicError represents a recovered panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// AsPanicError extracts the PanicError from err if present.
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
