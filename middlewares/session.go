package middlewares

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrymomot/gdpr/internal/web"
	"github.com/dmitrymomot/gdpr/pkg/cookie"
)

// AdminSessionCookie holds the signed admin session id.
const AdminSessionCookie = "gdpr_admin_sid"

type adminSessionKey struct{}

// AdminSession makes sure the browser carries a signed session id and
// stores it in the request context. The cookie lives for the browser session.
func AdminSession() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			sid, err := c.Cookies().GetSigned(c.Request(), AdminSessionCookie)
			if err != nil || uuid.Validate(sid) != nil {
				if err != nil && !errors.Is(err, cookie.ErrNotFound) {
					c.LogWarn("admin session cookie rejected", "error", err)
				}
				sid = uuid.NewString()
				if err := c.Cookies().SetSigned(c.Response(), AdminSessionCookie, sid, 0); err != nil {
					return errors.Join(ErrNoAdminSession, err)
				}
			}
			c.Set(adminSessionKey{}, sid)
			return next(c)
		}
	}
}

// AdminSessionID returns the admin session id stored in ctx.
func AdminSessionID(ctx context.Context) string {
	sid, _ := ctx.Value(adminSessionKey{}).(string)
	return sid
}
