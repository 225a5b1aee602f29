package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gdpr/pkg/logger"
)

type ctxKey struct{}

func extractTag(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return slog.String("tag", v), true
	}
	return slog.Attr{}, false
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	t.Run("adds extracted attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, extractTag)

		ctx := context.WithValue(context.Background(), ctxKey{}, "abc")
		log.InfoContext(ctx, "deletion request added")

		rec := decode(t, &buf)
		assert.Equal(t, "deletion request added", rec["msg"])
		assert.Equal(t, "abc", rec["tag"])
	})

	t.Run("skips extractor without value", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, extractTag, nil)
		log.Info("plain")

		rec := decode(t, &buf)
		_, ok := rec["tag"]
		assert.False(t, ok)
	})

	t.Run("keeps extractors after With", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, extractTag).With("component", "requests")

		ctx := context.WithValue(context.Background(), ctxKey{}, "xyz")
		log.InfoContext(ctx, "hello")

		rec := decode(t, &buf)
		assert.Equal(t, "requests", rec["component"])
		assert.Equal(t, "xyz", rec["tag"])
	})

	t.Run("respects level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelWarn)
		log.Info("dropped")
		assert.Zero(t, buf.Len())
	})
}

func TestNewWithSentryWithoutDSN(t *testing.T) {
	t.Parallel()

	log := logger.NewWithSentry(logger.SentryConfig{})
	require.NotNil(t, log)
}

func TestFlushSentryWithoutClient(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NoError(t, logger.FlushSentry()(ctx))
}
