package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/gdpr/internal/gdpr"
)

// Requests form field names. The nonce field names double as the action
// selector of each form.
const (
	FieldUserEmail   = "user_email"
	FieldLookupNonce = "gdpr_delete_email_lookup"
	FieldRemoveNonce = "gdpr_delete_remove_user"
	FieldDeleteNonce = "gdpr_delete_user"
)

// RequestsPageData is everything the requests page needs.
type RequestsPageData struct {
	Board     gdpr.Board
	ActiveTab gdpr.RequestType
	TabURL    string

	AddURL    string
	RemoveURL string
	DeleteURL string

	LookupNonce string
	// DeleteNonce protects both the remove and the delete row forms.
	DeleteNonce string
}

// RequestsPage renders one tab per request type with counts and the table
// of the active tab. An empty bucket renders no table. The erasure tab also
// carries the email lookup form.
func RequestsPage(d RequestsPageData) templ.Component {
	return component(func(w *writer) {
		w.raw(`<h2 class="nav-tab-wrapper">`)
		for _, b := range d.Board.Buckets {
			w.raw(`<a`)
			w.attr("href", withQuery(d.TabURL, "tab", string(b.Type))+"#"+string(b.Type))
			if b.Type == d.ActiveTab {
				w.raw(` class="nav-tab nav-tab-active"`)
			} else {
				w.raw(` class="nav-tab"`)
			}
			w.raw(`>`)
			w.t(b.Label())
			w.raw(` <span class="count">(`, itoa(b.Count()), `)</span></a>`)
		}
		w.raw(`</h2>`)

		bucket := d.Board.Bucket(d.ActiveTab)
		w.raw(`<div class="tab"`)
		w.attr("id", string(bucket.Type))
		w.raw(`>`)
		if bucket.Type == gdpr.RequestDelete {
			lookupForm(w, d)
		}
		requestsTable(w, d, bucket)
		w.raw(`</div>`)
	})
}

func lookupForm(w *writer, d RequestsPageData) {
	w.raw(`<form method="post" class="email-lookup"`)
	w.attr("action", d.AddURL)
	w.raw(`>`)
	hidden(w, FieldLookupNonce, d.LookupNonce)
	w.raw(`<input type="email" required`)
	w.attr("name", FieldUserEmail)
	w.attr("placeholder", "email@domain.com")
	w.raw(`> <button type="submit" class="button-primary">`)
	w.t("Add to deletion requests")
	w.raw(`</button></form>`)
}

func requestsTable(w *writer, d RequestsPageData, b gdpr.Bucket) {
	if b.Count() == 0 {
		w.raw(`<p class="no-requests">`)
		w.t("No requests.")
		w.raw(`</p>`)
		return
	}

	isDelete := b.Type == gdpr.RequestDelete
	w.raw(`<table class="widefat striped"><thead><tr><th>`)
	w.t("Email")
	w.raw(`</th><th>`)
	w.t("Date")
	w.raw(`</th>`)
	if b.Type.HasData() {
		w.raw(`<th>`)
		w.t("Data")
		w.raw(`</th>`)
	}
	if isDelete {
		w.raw(`<th>`)
		w.t("Actions")
		w.raw(`</th>`)
	}
	w.raw(`</tr></thead><tbody>`)

	for _, row := range b.Rows {
		w.raw(`<tr><td>`)
		w.text(row.Email)
		if isDelete && row.HasContent {
			w.raw(` <span class="has-content">`)
			w.t("Has content")
			w.raw(`</span>`)
		}
		w.raw(`</td><td>`)
		w.text(row.Date)
		w.raw(`</td>`)
		if b.Type.HasData() {
			w.raw(`<td>`)
			w.text(row.Data)
			w.raw(`</td>`)
		}
		if isDelete {
			w.raw(`<td>`)
			rowForm(w, d.RemoveURL, FieldRemoveNonce, d.DeleteNonce, row.Email, "Remove from queue")
			rowForm(w, d.DeleteURL, FieldDeleteNonce, d.DeleteNonce, row.Email, "Delete user")
			w.raw(`</td>`)
		}
		w.raw(`</tr>`)
	}
	w.raw(`</tbody></table>`)
}

func rowForm(w *writer, action, nonceField, nonce, email, label string) {
	w.raw(`<form method="post" class="row-action"`)
	w.attr("action", action)
	w.raw(`>`)
	hidden(w, nonceField, nonce)
	hidden(w, FieldUserEmail, email)
	w.raw(`<button type="submit" class="button">`)
	w.t(label)
	w.raw(`</button></form>`)
}
