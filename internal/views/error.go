package views

import (
	"github.com/a-h/templ"
)

// ErrorPage is the terminal page shown for failed requests.
func ErrorPage(code int, title, message string) templ.Component {
	return component(func(w *writer) {
		w.raw(`<!DOCTYPE html><html><head><meta charset="utf-8"><title>`)
		w.text(title)
		w.raw(`</title><style>`, styles, `</style></head><body><div class="wrap"><h1>`)
		w.text(title)
		w.raw(` <small>`, itoa(code), `</small></h1><p>`)
		w.text(message)
		w.raw(`</p></div></body></html>`)
	})
}
