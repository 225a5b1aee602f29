package options_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gdpr/pkg/options"
)

type entry struct {
	Email string `json:"email"`
	Type  string `json:"type"`
}

func TestGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns default for missing option", func(t *testing.T) {
		t.Parallel()

		store := options.NewMemory()
		got, err := options.Get(ctx, store, "gdpr_requests", []entry{})
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("returns default for null document", func(t *testing.T) {
		t.Parallel()

		store := options.NewMemory()
		require.NoError(t, store.Save(ctx, "banner", []byte("null")))

		got, err := options.Get(ctx, store, "banner", "fallback")
		require.NoError(t, err)
		assert.Equal(t, "fallback", got)
	})

	t.Run("decodes stored value", func(t *testing.T) {
		t.Parallel()

		store := options.NewMemory()
		require.NoError(t, store.Save(ctx, "gdpr_requests", []byte(`[{"email":"a@x.com","type":"delete"}]`)))

		got, err := options.Get(ctx, store, "gdpr_requests", []entry{})
		require.NoError(t, err)
		assert.Equal(t, []entry{{Email: "a@x.com", Type: "delete"}}, got)
	})

	t.Run("reports corrupt documents", func(t *testing.T) {
		t.Parallel()

		store := options.NewMemory()
		require.NoError(t, store.Save(ctx, "gdpr_requests", []byte(`{not json`)))

		got, err := options.Get(ctx, store, "gdpr_requests", []entry{})
		require.ErrorIs(t, err, options.ErrUnmarshal)
		assert.Empty(t, got)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()

		_, err := options.Get(ctx, options.NewMemory(), "", "")
		require.ErrorIs(t, err, options.ErrEmptyKey)
	})
}

func TestSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("stores validated value", func(t *testing.T) {
		t.Parallel()

		store := options.NewMemory()
		upper := func(s string) (string, error) { return strings.ToUpper(s), nil }

		require.NoError(t, options.Set(ctx, store, "banner", "we use cookies", upper))

		got, err := options.Get(ctx, store, "banner", "")
		require.NoError(t, err)
		assert.Equal(t, "WE USE COOKIES", got)
	})

	t.Run("validator error aborts write", func(t *testing.T) {
		t.Parallel()

		store := options.NewMemory()
		reject := func(string) (string, error) { return "", errors.New("nope") }

		err := options.Set(ctx, store, "banner", "x", reject)
		require.ErrorIs(t, err, options.ErrInvalid)

		_, err = store.Load(ctx, "banner")
		require.ErrorIs(t, err, options.ErrNotFound)
	})

	t.Run("replaces whole value", func(t *testing.T) {
		t.Parallel()

		store := options.NewMemory()
		require.NoError(t, options.Set(ctx, store, "list", []entry{{Email: "a@x.com"}, {Email: "b@x.com"}}, nil))
		require.NoError(t, options.Set(ctx, store, "list", []entry{{Email: "c@x.com"}}, nil))

		got, err := options.Get(ctx, store, "list", []entry(nil))
		require.NoError(t, err)
		assert.Equal(t, []entry{{Email: "c@x.com"}}, got)
	})
}

func TestMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("load returns copy", func(t *testing.T) {
		t.Parallel()

		store := options.NewMemory()
		require.NoError(t, store.Save(ctx, "k", []byte(`"v"`)))

		data, err := store.Load(ctx, "k")
		require.NoError(t, err)
		data[1] = 'x'

		again, err := store.Load(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, `"v"`, string(again))
	})

	t.Run("delete missing key is fine", func(t *testing.T) {
		t.Parallel()

		store := options.NewMemory()
		require.NoError(t, store.Delete(ctx, "missing"))
	})

	t.Run("delete removes key", func(t *testing.T) {
		t.Parallel()

		store := options.NewMemory()
		require.NoError(t, store.Save(ctx, "k", []byte(`1`)))
		require.NoError(t, store.Delete(ctx, "k"))

		_, err := store.Load(ctx, "k")
		require.ErrorIs(t, err, options.ErrNotFound)
	})
}
