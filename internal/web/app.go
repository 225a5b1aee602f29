package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/gdpr/pkg/cookie"
	"github.com/dmitrymomot/gdpr/pkg/health"
	"github.com/dmitrymomot/gdpr/pkg/logger"
)

// Default health endpoint paths.
const (
	LivenessPath  = "/health/live"
	ReadinessPath = "/health/ready"
)

// App wires middleware, handlers and health endpoints onto a chi router.
// It is immutable after New.
type App struct {
	router       chi.Router
	logger       *slog.Logger
	cookies      *cookie.Manager
	errorHandler ErrorHandler
	middlewares  []Middleware
	handlers     []Handler
	checks       health.Checks
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithCookieManager sets the cookie manager exposed through Context.
func WithCookieManager(m *cookie.Manager) Option {
	return func(a *App) {
		if m != nil {
			a.cookies = m
		}
	}
}

// WithMiddleware appends global middleware, run in the given order.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers route handlers.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithErrorHandler sets the handler for errors returned by routes.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithReadinessCheck adds a named check to the readiness endpoint.
func WithReadinessCheck(name string, fn health.CheckFunc) Option {
	return func(a *App) {
		if a.checks == nil {
			a.checks = make(health.Checks)
		}
		a.checks[name] = fn
	}
}

// New creates an App.
func New(opts ...Option) *App {
	a := &App{
		router:  chi.NewRouter(),
		logger:  logger.NewNope(),
		cookies: cookie.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.setupRoutes()
	return a
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

func (a *App) setupRoutes() {
	// Health probes bypass app middleware.
	a.router.Get(LivenessPath, health.LivenessHandler())
	a.router.Get(ReadinessPath, health.ReadinessHandler(a.checks, health.WithLogger(a.logger)))

	a.router.Group(func(r chi.Router) {
		for _, mw := range a.middlewares {
			r.Use(a.adaptMiddleware(mw))
		}
		r.NotFound(a.adaptHandler(func(Context) error {
			return ErrNotFound("The page you are looking for does not exist.")
		}))
		r.MethodNotAllowed(a.adaptHandler(func(Context) error {
			return ErrMethodNotAllowed("Method not allowed.")
		}))

		adapter := &routerAdapter{router: r, app: a}
		for _, h := range a.handlers {
			h.Routes(adapter)
		}
	})
}

func (a *App) handleError(c Context, err error) {
	if c.Written() {
		a.logger.ErrorContext(c.Context(), "error after response was written", slog.Any("error", err))
		return
	}
	if a.errorHandler != nil {
		herr := a.errorHandler(c, err)
		if herr == nil {
			return
		}
		a.logger.ErrorContext(c.Context(), "error handler failed", slog.Any("error", herr))
		if c.Written() {
			return
		}
	}
	he := AsHTTPError(err)
	http.Error(c.Response(), he.Message, he.Code)
}
