package handlers

import (
	"net/http"

	"github.com/dmitrymomot/gdpr/internal/gdpr"
	"github.com/dmitrymomot/gdpr/internal/locale"
	"github.com/dmitrymomot/gdpr/internal/views"
	"github.com/dmitrymomot/gdpr/internal/web"
	"github.com/dmitrymomot/gdpr/pkg/formtree"
	"github.com/dmitrymomot/gdpr/pkg/nonce"
	"github.com/dmitrymomot/gdpr/pkg/sanitizer"
)

const defaultSettingsTab = "cookies"

// SettingsHandler serves the cookie settings page.
type SettingsHandler struct {
	svc    *gdpr.Service
	nonces *nonce.Issuer
}

// NewSettingsHandler creates a settings handler.
func NewSettingsHandler(svc *gdpr.Service, nonces *nonce.Issuer) *SettingsHandler {
	return &SettingsHandler{svc: svc, nonces: nonces}
}

// Routes implements web.Handler.
func (h *SettingsHandler) Routes(r web.Router) {
	r.GET(SettingsPath, h.show)
	r.POST(SettingsOptionsPath, h.save)
}

func (h *SettingsHandler) show(c web.Context) error {
	ctx := c.Context()

	tabs := h.svc.SettingsTabs(ctx)
	active := sanitizer.Key(c.Query("tab"))
	if active == "" {
		active = defaultSettingsTab
	}
	page := ""
	for _, tab := range tabs {
		if tab.Key == active {
			page = tab.Page
			break
		}
	}

	registry := h.svc.Registry()
	var sections []views.SectionView
	for _, s := range registry.Sections(page) {
		sections = append(sections, views.SectionView{Section: s, Fields: registry.Fields(page, s.ID)})
	}

	values, err := h.svc.Settings(ctx)
	if err != nil {
		return err
	}
	token, err := createNonce(c, h.nonces, ActionOptions)
	if err != nil {
		return err
	}

	body := views.SettingsPage(views.SettingsPageData{
		Tabs:       tabs,
		ActiveTab:  active,
		TabURL:     SettingsPath,
		FormAction: SettingsOptionsPath,
		Group:      gdpr.SettingsGroup,
		Nonce:      token,
		Sections:   sections,
		Values:     values,
	})
	return c.Render(http.StatusOK, views.Layout(locale.T(ctx, "GDPR Settings"), nav(gdpr.SettingsPage), popNotices(c), body))
}

func (h *SettingsHandler) save(c web.Context) error {
	ctx := c.Context()

	if err := verifyNonce(c, h.nonces, views.FieldNonce, ActionOptions, "The link you followed has expired."); err != nil {
		return err
	}
	group := c.Form(views.FieldOptionPage)
	if group != gdpr.SettingsGroup {
		return web.ErrForbidden(locale.T(ctx, "Options page not found."))
	}

	tree := formtree.Parse(c.Request().PostForm)
	notices, err := h.svc.SaveSettings(ctx, group, tree)
	if err != nil {
		return err
	}
	if err := flashNotices(c, notices...); err != nil {
		return err
	}
	return back(c, SettingsPath)
}
