package handlers

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/gdpr/internal/gdpr"
	"github.com/dmitrymomot/gdpr/internal/locale"
	"github.com/dmitrymomot/gdpr/internal/views"
	"github.com/dmitrymomot/gdpr/internal/web"
	"github.com/dmitrymomot/gdpr/pkg/htmx"
	"github.com/dmitrymomot/gdpr/pkg/nonce"
	"github.com/dmitrymomot/gdpr/pkg/sanitizer"
)

// MsgVerifyFailed is shown when a deletion form fails validation.
const MsgVerifyFailed = "We could not verify the user email or the security token. Please try again."

// RequestsHandler serves the requests page and the deletion queue forms.
type RequestsHandler struct {
	svc    *gdpr.Service
	nonces *nonce.Issuer
}

// NewRequestsHandler creates a requests handler.
func NewRequestsHandler(svc *gdpr.Service, nonces *nonce.Issuer) *RequestsHandler {
	return &RequestsHandler{svc: svc, nonces: nonces}
}

// Routes implements web.Handler.
func (h *RequestsHandler) Routes(r web.Router) {
	r.GET("/", func(c web.Context) error {
		return c.Redirect(http.StatusFound, RequestsPath)
	})
	r.GET(RequestsPath, h.show)
	r.POST(RequestsAddPath, h.add)
	r.POST(RequestsRemovePath, h.remove)
	r.POST(RequestsDeletePath, h.delete)
}

func (h *RequestsHandler) show(c web.Context) error {
	ctx := c.Context()

	active := gdpr.RequestType(sanitizer.Key(c.Query("tab")))
	if !active.Valid() {
		active = gdpr.RequestTypes[0]
	}

	board, err := h.svc.Board(ctx)
	if err != nil {
		return err
	}
	lookup, err := createNonce(c, h.nonces, ActionEmailLookup)
	if err != nil {
		return err
	}
	del, err := createNonce(c, h.nonces, ActionDeleteUser)
	if err != nil {
		return err
	}

	body := views.RequestsPage(views.RequestsPageData{
		Board:       board,
		ActiveTab:   active,
		TabURL:      RequestsPath,
		AddURL:      RequestsAddPath,
		RemoveURL:   RequestsRemovePath,
		DeleteURL:   RequestsDeletePath,
		LookupNonce: lookup,
		DeleteNonce: del,
	})
	return c.Render(http.StatusOK, views.Layout(locale.T(ctx, "GDPR Requests"), nav(gdpr.RequestsPage), popNotices(c), body))
}

func (h *RequestsHandler) add(c web.Context) error {
	return h.process(c, views.FieldLookupNonce, ActionEmailLookup, single(h.svc.AddDeletionRequest))
}

func (h *RequestsHandler) remove(c web.Context) error {
	return h.process(c, views.FieldRemoveNonce, ActionDeleteUser, single(h.svc.RemoveDeletionRequest))
}

func (h *RequestsHandler) delete(c web.Context) error {
	return h.process(c, views.FieldDeleteNonce, ActionDeleteUser, h.svc.ExecuteDeletion)
}

type requestAction func(context.Context, string) ([]gdpr.Notice, error)

func single(op func(context.Context, string) (gdpr.Notice, error)) requestAction {
	return func(ctx context.Context, email string) ([]gdpr.Notice, error) {
		n, err := op(ctx, email)
		return []gdpr.Notice{n}, err
	}
}

// process verifies the form, runs op on the posted email and redirects back
// to the erasure tab with the resulting notices. Business failures become
// error notices; anything else goes to the error handler. Only a missing
// email field is rejected here, an empty one is left to the service.
func (h *RequestsHandler) process(c web.Context, nonceField, action string, op requestAction) error {
	if err := c.Request().ParseForm(); err != nil {
		return web.ErrBadRequest(err.Error())
	}
	if _, ok := c.Request().PostForm[views.FieldUserEmail]; !ok {
		return web.ErrForbidden(locale.T(c.Context(), MsgVerifyFailed))
	}
	if err := verifyNonce(c, h.nonces, nonceField, action, MsgVerifyFailed); err != nil {
		return err
	}

	notices, err := op(c.Context(), c.Form(views.FieldUserEmail))
	if err != nil && !gdpr.IsRecoverable(err) {
		return err
	}
	if err != nil {
		c.LogInfo("request action rejected", "action", action, "error", err)
	}
	if err := flashNotices(c, notices...); err != nil {
		return err
	}
	return back(c, RequestsPath+"?tab="+string(gdpr.RequestDelete), htmx.WithFragment(deleteAnchor))
}
