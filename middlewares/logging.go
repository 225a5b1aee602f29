package middlewares

import (
	"time"

	"github.com/dmitrymomot/gdpr/internal/web"
)

// Logging logs method, path and duration of every request once it completes.
func Logging() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			start := time.Now()
			err := next(c)
			c.LogInfo("request completed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"duration", time.Since(start).String(),
			)
			return err
		}
	}
}
