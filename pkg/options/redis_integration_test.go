//go:build integration

package options_test

import (
	"context"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gdpr/pkg/options"
	"github.com/dmitrymomot/gdpr/pkg/redis"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	ctx := context.Background()
	client, err := redis.Open(ctx, url)
	require.NoError(t, err, "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	client := newTestRedisClient(t)
	store := options.NewRedis(client, options.WithPrefix("test-options"))

	t.Cleanup(func() {
		_ = store.Delete(ctx, "gdpr_requests")
	})

	_, err := store.Load(ctx, "gdpr_requests")
	require.ErrorIs(t, err, options.ErrNotFound)

	require.NoError(t, options.Set(ctx, store, "gdpr_requests", []entry{{Email: "a@x.com", Type: "delete"}}, nil))

	got, err := options.Get(ctx, store, "gdpr_requests", []entry{})
	require.NoError(t, err)
	assert.Equal(t, []entry{{Email: "a@x.com", Type: "delete"}}, got)

	raw, err := client.Get(ctx, "test-options:gdpr_requests").Result()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"email":"a@x.com","type":"delete"}]`, raw)
}
