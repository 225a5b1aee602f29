package options

import "errors"

// Sentinel errors for option storage.
var (
	// ErrNotFound is returned by Store.Load when the option was never saved.
	ErrNotFound = errors.New("options: not found")

	// ErrEmptyKey is returned when an option name is empty.
	ErrEmptyKey = errors.New("options: empty key")

	// ErrMarshal is returned when a value cannot be encoded.
	ErrMarshal = errors.New("options: failed to marshal value")

	// ErrUnmarshal is returned when a stored value cannot be decoded.
	ErrUnmarshal = errors.New("options: failed to unmarshal value")

	// ErrInvalid wraps errors returned by a Validator.
	ErrInvalid = errors.New("options: invalid value")
)
