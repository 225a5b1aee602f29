package middlewares

import (
	"github.com/dmitrymomot/gdpr/internal/locale"
	"github.com/dmitrymomot/gdpr/internal/web"
)

// Locale stores a printer for the negotiated language in the request context.
func Locale(bundle *locale.Bundle) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			tag := bundle.Match(c.Header("Accept-Language"))
			c.Set(locale.ContextKey, bundle.Printer(tag))
			c.SetHeader("Content-Language", tag.String())
			return next(c)
		}
	}
}
