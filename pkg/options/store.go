package options

import (
	"context"
	"encoding/json"
	"errors"
)

// Store persists raw option documents.
type Store interface {
	// Load returns the stored document or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the stored document.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes the option. Deleting a missing option is not an error.
	Delete(ctx context.Context, key string) error
}

// Validator cleans a value before it is written.
// Returning an error aborts the write.
type Validator[V any] func(V) (V, error)

// Get loads the option stored under key, or def if it was never saved.
func Get[V any](ctx context.Context, s Store, key string, def V) (V, error) {
	if key == "" {
		return def, ErrEmptyKey
	}

	data, err := s.Load(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return def, nil
		}
		return def, err
	}
	if len(data) == 0 || string(data) == "null" {
		return def, nil
	}

	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return def, errors.Join(ErrUnmarshal, err)
	}
	return v, nil
}

// Set validates value (when validate is non-nil) and stores the result.
func Set[V any](ctx context.Context, s Store, key string, value V, validate Validator[V]) error {
	if key == "" {
		return ErrEmptyKey
	}

	if validate != nil {
		clean, err := validate(value)
		if err != nil {
			return errors.Join(ErrInvalid, err)
		}
		value = clean
	}

	data, err := json.Marshal(value)
	if err != nil {
		return errors.Join(ErrMarshal, err)
	}
	return s.Save(ctx, key, data)
}
