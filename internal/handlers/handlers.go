package handlers

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/gdpr/internal/gdpr"
	"github.com/dmitrymomot/gdpr/internal/locale"
	"github.com/dmitrymomot/gdpr/internal/views"
	"github.com/dmitrymomot/gdpr/internal/web"
	"github.com/dmitrymomot/gdpr/middlewares"
	"github.com/dmitrymomot/gdpr/pkg/cookie"
	"github.com/dmitrymomot/gdpr/pkg/htmx"
	"github.com/dmitrymomot/gdpr/pkg/nonce"
)

// Routes.
const (
	SettingsPath        = "/settings"
	SettingsOptionsPath = "/settings/options"
	RequestsPath        = "/requests"
	RequestsAddPath     = "/requests/add"
	RequestsRemovePath  = "/requests/remove"
	RequestsDeletePath  = "/requests/delete"
)

// Nonce actions.
const (
	ActionOptions     = "gdpr-options"
	ActionEmailLookup = "gdpr-request-email-lookup"
	ActionDeleteUser  = "gdpr-request-delete-user"
)

const (
	noticesFlashKey = "notices"
	// noticeMaxAge keeps notices just long enough to survive the redirect.
	noticeMaxAge = 30

	updatedParam = "settings-updated"
	deleteAnchor = "delete"
)

func nav(current string) views.Nav {
	return views.Nav{SettingsURL: SettingsPath, RequestsURL: RequestsPath, Current: current}
}

// createNonce issues a token for action bound to the admin session.
func createNonce(c web.Context, issuer *nonce.Issuer, action string) (string, error) {
	return issuer.Create(action, middlewares.AdminSessionID(c.Context()))
}

// verifyNonce checks the token posted in field. A missing session or an
// invalid token yields a 403.
func verifyNonce(c web.Context, issuer *nonce.Issuer, field, action, message string) error {
	sid := middlewares.AdminSessionID(c.Context())
	token := c.Form(field)
	if sid == "" || token == "" {
		return web.ErrForbidden(locale.T(c.Context(), message))
	}
	if err := issuer.Verify(token, action, sid); err != nil {
		c.LogWarn("nonce rejected", "action", action, "error", err)
		return web.ErrForbidden(locale.T(c.Context(), message)).WithCause(err)
	}
	return nil
}

// flashNotices stores notices for the next page load.
func flashNotices(c web.Context, notices ...gdpr.Notice) error {
	if len(notices) == 0 {
		return nil
	}
	return c.SetFlash(noticesFlashKey, notices, noticeMaxAge)
}

// popNotices reads and clears pending notices.
func popNotices(c web.Context) []gdpr.Notice {
	var notices []gdpr.Notice
	if err := c.Flash(noticesFlashKey, &notices); err != nil {
		if !errors.Is(err, cookie.ErrNotFound) {
			c.LogWarn("failed to read notices", "error", err)
		}
		return nil
	}
	return notices
}

// back redirects to the referring admin page, or fallback.
func back(c web.Context, fallback string, opts ...htmx.BackOption) error {
	opts = append([]htmx.BackOption{htmx.WithQuery(updatedParam, "true")}, opts...)
	return c.Redirect(http.StatusSeeOther, htmx.Back(c.Request(), fallback, opts...))
}
