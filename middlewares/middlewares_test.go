package middlewares_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/gdpr/internal/locale"
	"github.com/dmitrymomot/gdpr/internal/web"
	"github.com/dmitrymomot/gdpr/middlewares"
	"github.com/dmitrymomot/gdpr/pkg/cookie"
	"github.com/dmitrymomot/gdpr/pkg/logger"
)

const testSecret = "this-is-a-32-byte-or-longer-key!"

type routes map[string]web.HandlerFunc

func (rs routes) Routes(r web.Router) {
	for path, h := range rs {
		r.GET(path, h)
	}
}

func serve(t *testing.T, app *web.App, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestRecover(t *testing.T) {
	t.Parallel()

	var got error
	app := web.New(
		web.WithMiddleware(middlewares.Recover(middlewares.DefaultStackSize)),
		web.WithHandlers(routes{"/panic": func(web.Context) error { panic("kaboom") }}),
		web.WithErrorHandler(func(c web.Context, err error) error {
			got = err
			c.Response().WriteHeader(http.StatusInternalServerError)
			return nil
		}),
	)

	rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	pe, ok := middlewares.AsPanicError(got)
	require.True(t, ok)
	assert.Equal(t, "kaboom", pe.Value)
	assert.NotEmpty(t, pe.Stack)
	assert.Equal(t, "panic: kaboom", pe.Error())
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, slog.LevelInfo, middlewares.RequestIDExtractor())

	app := web.New(
		web.WithLogger(log),
		web.WithMiddleware(middlewares.RequestID()),
		web.WithHandlers(routes{"/": func(c web.Context) error {
			c.LogInfo("handled")
			_, err := io.WriteString(c.Response(), middlewares.GetRequestID(c.Context()))
			return err
		}}),
	)

	t.Run("generates", func(t *testing.T) {
		rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get(middlewares.RequestIDHeader)
		require.NoError(t, uuid.Validate(id))
		assert.Equal(t, id, rec.Body.String())

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, id, line["request_id"])
		buf.Reset()
	})

	t.Run("propagates upstream id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middlewares.RequestIDHeader, "upstream-1")
		rec := serve(t, app, req)
		assert.Equal(t, "upstream-1", rec.Body.String())
		buf.Reset()
	})
}

func TestAdminSession(t *testing.T) {
	t.Parallel()

	cookies := cookie.New(cookie.WithSecret(testSecret))
	app := web.New(
		web.WithCookieManager(cookies),
		web.WithMiddleware(middlewares.AdminSession()),
		web.WithHandlers(routes{"/": func(c web.Context) error {
			_, err := io.WriteString(c.Response(), middlewares.AdminSessionID(c.Context()))
			return err
		}}),
	)

	first := serve(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	sid := first.Body.String()
	require.NoError(t, uuid.Validate(sid))
	set := first.Result().Cookies()
	require.Len(t, set, 1)
	assert.Equal(t, middlewares.AdminSessionCookie, set[0].Name)

	t.Run("reuses signed cookie", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(set[0])
		rec := serve(t, app, req)
		assert.Equal(t, sid, rec.Body.String())
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("replaces forged cookie", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middlewares.AdminSessionCookie, Value: "forged.value"})
		rec := serve(t, app, req)
		assert.NotEqual(t, sid, rec.Body.String())
		assert.Len(t, rec.Result().Cookies(), 1)
	})

	t.Run("fails without secret", func(t *testing.T) {
		t.Parallel()

		bare := web.New(
			web.WithMiddleware(middlewares.AdminSession()),
			web.WithHandlers(routes{"/": func(web.Context) error { return nil }}),
		)
		rec := serve(t, bare, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLocale(t *testing.T) {
	t.Parallel()

	bundle, err := locale.LoadEmbedded(language.English)
	require.NoError(t, err)

	app := web.New(
		web.WithMiddleware(middlewares.Locale(bundle)),
		web.WithHandlers(routes{"/": func(c web.Context) error {
			_, err := io.WriteString(c.Response(), locale.T(c.Context(), "User not found."))
			return err
		}}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-CA,fr;q=0.9")
	rec := serve(t, app, req)
	assert.Equal(t, "Utilisateur introuvable.", rec.Body.String())
	assert.Equal(t, "fr", rec.Header().Get("Content-Language"))

	rec = serve(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "User not found.", rec.Body.String())
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	app := web.New(
		web.WithLogger(logger.NewWithWriter(&buf, slog.LevelInfo)),
		web.WithMiddleware(middlewares.Logging()),
		web.WithHandlers(routes{"/ok": func(web.Context) error { return nil }}),
	)

	serve(t, app, httptest.NewRequest(http.MethodGet, "/ok", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request completed", line["msg"])
	assert.Equal(t, http.MethodGet, line["method"])
	assert.Equal(t, "/ok", line["path"])
	assert.NotEmpty(t, line["duration"])
}
