package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/gdpr/internal/gdpr"
)

// Nav links shown in the page header.
type Nav struct {
	SettingsURL string
	RequestsURL string
	Current     string
}

// Layout wraps body in the admin page chrome and renders notices above it.
func Layout(title string, nav Nav, notices []gdpr.Notice, body templ.Component) templ.Component {
	return component(func(w *writer) {
		w.raw(`<!DOCTYPE html><html><head><meta charset="utf-8">`)
		w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.raw(`<title>`)
		w.text(title)
		w.raw(`</title><style>`, styles, `</style></head><body><div class="wrap">`)

		w.raw(`<nav class="admin-menu">`)
		navLink(w, nav.SettingsURL, "GDPR Settings", nav.Current == gdpr.SettingsPage)
		navLink(w, nav.RequestsURL, "GDPR Requests", nav.Current == gdpr.RequestsPage)
		w.raw(`</nav>`)

		w.raw(`<h1>`)
		w.text(title)
		w.raw(`</h1>`)
		w.render(Notices(notices))
		w.render(body)
		w.raw(`</div></body></html>`)
	})
}

func navLink(w *writer, href, label string, current bool) {
	if href == "" {
		return
	}
	w.raw(`<a`)
	w.attr("href", href)
	if current {
		w.raw(` class="current" aria-current="page"`)
	}
	w.raw(`>`)
	w.t(label)
	w.raw(`</a>`)
}

// Notices renders one dismissible box per notice.
func Notices(notices []gdpr.Notice) templ.Component {
	return component(func(w *writer) {
		for _, n := range notices {
			w.raw(`<div`)
			w.attr("id", "setting-error-"+n.Code)
			w.attr("class", "notice notice-"+string(n.Type)+" settings-error is-dismissible")
			w.raw(`><p><strong>`)
			w.text(n.Message)
			w.raw(`</strong></p></div>`)
		}
	})
}

const styles = `body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,sans-serif;background:#f1f1f1;color:#1d2327;margin:0}
.wrap{max-width:1100px;margin:0 auto;padding:20px}
.admin-menu a{margin-right:12px;color:#2271b1}.admin-menu a.current{font-weight:600}
.notice{background:#fff;border-left:4px solid #72aee6;padding:1px 12px;margin:5px 0 15px}
.notice-error{border-left-color:#d63638}.notice-updated{border-left-color:#00a32a}.notice-warning{border-left-color:#dba617}
.nav-tab-wrapper{border-bottom:1px solid #c3c4c7;margin-bottom:16px}
.nav-tab{display:inline-block;padding:5px 10px;border:1px solid #c3c4c7;border-bottom:none;background:#dcdcde;color:#50575e;text-decoration:none;margin-right:4px}
.nav-tab-active{background:#f1f1f1;color:#000}
table.widefat{width:100%;border-collapse:collapse;background:#fff}table.widefat td,table.widefat th{padding:8px;border-bottom:1px solid #f0f0f1;text-align:left}
.postbox{background:#fff;border:1px solid #c3c4c7;margin-bottom:12px;padding:0 12px 12px}
textarea{width:100%}.button-primary{background:#2271b1;color:#fff;border:none;padding:6px 12px}
.has-content{color:#d63638}`
