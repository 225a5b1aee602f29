//go:build integration

package options_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gdpr/pkg/db"
	"github.com/dmitrymomot/gdpr/pkg/options"
)

func TestPostgresStore(t *testing.T) {
	url := os.Getenv("DATABASE_CONN_URL")
	if url == "" {
		t.Skip("DATABASE_CONN_URL not set")
	}

	ctx := context.Background()
	pool, err := db.Open(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS options (
		name TEXT PRIMARY KEY,
		value JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	require.NoError(t, err)

	store := options.NewPostgres(pool)
	t.Cleanup(func() {
		_ = store.Delete(ctx, "test_banner")
	})

	_, err = store.Load(ctx, "test_banner")
	require.ErrorIs(t, err, options.ErrNotFound)

	require.NoError(t, options.Set(ctx, store, "test_banner", "first", nil))
	require.NoError(t, options.Set(ctx, store, "test_banner", "second", nil))

	got, err := options.Get(ctx, store, "test_banner", "")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}
