package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/gdpr/internal/gdpr"
)

// Settings form field names.
const (
	FieldOptionPage = "option_page"
	FieldNonce      = "_wpnonce"
)

// SectionView is a settings section with its fields.
type SectionView struct {
	gdpr.Section
	Fields []gdpr.Field
}

// SettingsPageData is everything the settings page needs.
type SettingsPageData struct {
	Tabs      []gdpr.SettingsTab
	ActiveTab string
	// TabURL is the page URL; the tab key is appended as ?tab=.
	TabURL     string
	FormAction string
	Group      string
	Nonce      string
	Sections   []SectionView
	Values     gdpr.SettingsValues
}

// SettingsPage renders the tab bar and the options form.
func SettingsPage(d SettingsPageData) templ.Component {
	return component(func(w *writer) {
		w.raw(`<h2 class="nav-tab-wrapper">`)
		for _, tab := range d.Tabs {
			w.raw(`<a`)
			w.attr("href", withQuery(d.TabURL, "tab", tab.Key))
			if tab.Key == d.ActiveTab {
				w.raw(` class="nav-tab nav-tab-active"`)
			} else {
				w.raw(` class="nav-tab"`)
			}
			w.raw(`>`)
			w.t(tab.Name)
			w.raw(`</a>`)
		}
		w.raw(`</h2>`)

		w.raw(`<form method="post"`)
		w.attr("action", d.FormAction)
		w.raw(`>`)
		hidden(w, FieldOptionPage, d.Group)
		hidden(w, FieldNonce, d.Nonce)

		for _, s := range d.Sections {
			w.raw(`<h2>`)
			w.t(s.Title)
			w.raw(`</h2><table class="form-table" role="presentation"><tbody>`)
			for _, f := range s.Fields {
				w.raw(`<tr><th scope="row"><label`)
				w.attr("for", f.LabelFor)
				w.raw(`>`)
				w.t(f.Title)
				w.raw(`</label></th><td>`)
				renderField(w, f, d.Values)
				if f.Description != "" {
					w.raw(`<p class="description">`)
					w.t(f.Description)
					w.raw(`</p>`)
				}
				w.raw(`</td></tr>`)
			}
			w.raw(`</tbody></table>`)
		}

		w.raw(`<p class="submit"><button type="submit" class="button-primary">`)
		w.t("Save Changes")
		w.raw(`</button></p></form>`)
	})
}

func renderField(w *writer, f gdpr.Field, v gdpr.SettingsValues) {
	switch f.Kind {
	case gdpr.FieldCookieCategories:
		w.render(CookieCategoriesEditor(f.LabelFor, v.PopupContent))
	default:
		w.raw(`<textarea rows="5"`)
		w.attr("id", f.LabelFor)
		w.attr("name", f.LabelFor)
		w.raw(`>`)
		w.stored(v.Text(f.LabelFor))
		w.raw(`</textarea>`)
	}
}

// CookieCategoriesEditor renders the repeating category editor. Each saved
// category and host gets a remove toggle; a blank block keyed
// gdpr.NewEntryKey adds a new category, and each category has one for a
// new host.
func CookieCategoriesEditor(root string, content gdpr.PopupContent) templ.Component {
	return component(func(w *writer) {
		w.raw(`<div class="cookie-categories">`)
		for _, key := range content.Keys() {
			cat := content[key]
			w.raw(`<div class="postbox"><h3>`)
			w.stored(cat.Name)
			w.raw(` <label class="remove">`)
			checkbox(w, fieldName(root, key, "remove"), false)
			w.t("Remove")
			w.raw(`</label></h3>`)
			hidden(w, fieldName(root, key, "name"), storedValue(cat.Name))
			categoryFields(w, root, key, cat)

			w.raw(`<h4>`)
			w.t("Hosts")
			w.raw(`</h4>`)
			for _, hostKey := range cat.HostKeys() {
				host := cat.Hosts[hostKey]
				w.raw(`<div class="host"><h5>`)
				w.stored(host.Name)
				w.raw(` <label class="remove">`)
				checkbox(w, fieldName(root, key, "hosts", hostKey, "remove"), false)
				w.t("Remove")
				w.raw(`</label></h5>`)
				hidden(w, fieldName(root, key, "hosts", hostKey, "name"), storedValue(host.Name))
				hostFields(w, root, key, hostKey, host)
				w.raw(`</div>`)
			}

			w.raw(`<div class="host host-new"><h5>`)
			w.t("Add host")
			w.raw(`</h5>`)
			input(w, "Name", fieldName(root, key, "hosts", gdpr.NewEntryKey, "name"), "")
			hostFields(w, root, key, gdpr.NewEntryKey, gdpr.CookieHost{})
			w.raw(`</div></div>`)
		}

		w.raw(`<div class="postbox category-new"><h3>`)
		w.t("Add category")
		w.raw(`</h3>`)
		input(w, "Name", fieldName(root, gdpr.NewEntryKey, "name"), "")
		categoryFields(w, root, gdpr.NewEntryKey, gdpr.CookieCategory{})
		w.raw(`</div></div>`)
	})
}

func categoryFields(w *writer, root, key string, cat gdpr.CookieCategory) {
	w.raw(`<p><label>`)
	checkbox(w, fieldName(root, key, "always_active"), cat.IsAlwaysActive())
	w.t("Always active")
	w.raw(`</label></p><p><label>`)
	w.t("How we use")
	w.raw(`<textarea rows="3"`)
	w.attr("name", fieldName(root, key, "how_we_use"))
	w.raw(`>`)
	w.text(cat.HowWeUse)
	w.raw(`</textarea></label></p>`)
	input(w, "Cookies used", fieldName(root, key, "cookies_used"), storedValue(cat.CookiesUsed))
}

func hostFields(w *writer, root, key, hostKey string, host gdpr.CookieHost) {
	input(w, "Cookies used", fieldName(root, key, "hosts", hostKey, "cookies_used"), storedValue(host.CookiesUsed))
	input(w, "Opt-out URL", fieldName(root, key, "hosts", hostKey, "optout"), host.OptOut)
}

func input(w *writer, label, name, value string) {
	w.raw(`<p><label>`)
	w.t(label)
	w.raw(` <input type="text" class="regular-text"`)
	w.attr("name", name)
	w.attr("value", value)
	w.raw(`></label></p>`)
}

func hidden(w *writer, name, value string) {
	w.raw(`<input type="hidden"`)
	w.attr("name", name)
	w.attr("value", value)
	w.raw(`>`)
}

func checkbox(w *writer, name string, checked bool) {
	w.raw(`<input type="checkbox" value="on"`)
	w.attr("name", name)
	if checked {
		w.raw(` checked`)
	}
	w.raw(`>`)
}
