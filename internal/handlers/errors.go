package handlers

import (
	"github.com/dmitrymomot/gdpr/internal/locale"
	"github.com/dmitrymomot/gdpr/internal/views"
	"github.com/dmitrymomot/gdpr/internal/web"
)

// ErrorHandler renders failed requests as a terminal error page. Server
// errors are logged with their cause; client errors at warn level.
func ErrorHandler() web.ErrorHandler {
	return func(c web.Context, err error) error {
		he := web.AsHTTPError(err)
		if he.Code >= 500 {
			c.LogError("request failed", "status", he.Code, "error", err)
		} else {
			c.LogWarn("request rejected", "status", he.Code, "error", err)
		}
		title := locale.T(c.Context(), he.StatusText())
		return c.Render(he.Code, views.ErrorPage(he.Code, title, he.Message))
	}
}
