package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/gdpr/pkg/cookie"
	"github.com/dmitrymomot/gdpr/pkg/htmx"
)

// Context is the per-request handle passed to handlers and middleware.
type Context interface {
	Request() *http.Request
	Response() http.ResponseWriter
	Context() context.Context

	Param(name string) string
	Query(name string) string
	Form(name string) string
	Header(name string) string
	SetHeader(name, value string)
	IsHTMX() bool

	// Set stores a value in the request context; Get reads it back.
	Set(key, value any)
	Get(key any) any

	Render(code int, component templ.Component) error
	Redirect(code int, url string) error
	Written() bool

	Logger() *slog.Logger
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	Cookies() *cookie.Manager
	Flash(key string, dest any) error
	SetFlash(key string, value any, maxAge int) error
}

type requestContext struct {
	request  *http.Request
	response *responseWriter
	logger   *slog.Logger
	cookies  *cookie.Manager
}

func newContext(w http.ResponseWriter, r *http.Request, logger *slog.Logger, cookies *cookie.Manager) *requestContext {
	return &requestContext{
		request:  r,
		response: newResponseWriter(w),
		logger:   logger,
		cookies:  cookies,
	}
}

func (c *requestContext) Request() *http.Request        { return c.request }
func (c *requestContext) Response() http.ResponseWriter { return c.response }
func (c *requestContext) Context() context.Context      { return c.request.Context() }

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

// Form returns a POST body value; query parameters are not consulted.
func (c *requestContext) Form(name string) string {
	return c.request.PostFormValue(name)
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.response.Header().Set(name, value)
}

func (c *requestContext) IsHTMX() bool {
	return htmx.IsHTMX(c.request)
}

func (c *requestContext) Set(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}

// Render writes an HTML component with the given status.
func (c *requestContext) Render(code int, component templ.Component) error {
	c.response.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.response.WriteHeader(code)
	return component.Render(c.request.Context(), c.response)
}

func (c *requestContext) Redirect(code int, url string) error {
	htmx.RedirectWithStatus(c.response, c.request, url, code)
	return nil
}

func (c *requestContext) Written() bool {
	return c.response.written
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Cookies() *cookie.Manager {
	return c.cookies
}

func (c *requestContext) Flash(key string, dest any) error {
	return c.cookies.Flash(c.response, c.request, key, dest)
}

func (c *requestContext) SetFlash(key string, value any, maxAge int) error {
	return c.cookies.SetFlash(c.response, key, value, maxAge)
}
