package views

import (
	"context"
	"html"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/gdpr/internal/locale"
)

// writer accumulates the first write error so markup can be emitted
// without checking every call.
type writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *writer {
	return &writer{ctx: ctx, w: w}
}

// raw writes trusted markup.
func (w *writer) raw(parts ...string) {
	for _, p := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.w, p)
	}
}

// text writes s escaped.
func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

// stored writes a value that was escaped before it was saved. It is
// unescaped first so it is not escaped twice.
func (w *writer) stored(s string) {
	w.text(html.UnescapeString(s))
}

// t writes a translated page string.
func (w *writer) t(key string, args ...any) {
	w.text(locale.T(w.ctx, key, args...))
}

// attr writes name="value" with value escaped.
func (w *writer) attr(name, value string) {
	w.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (w *writer) render(c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(w.ctx, w.w)
}

func component(fn func(w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		fn(w)
		return w.err
	})
}

// fieldName builds a bracketed form name: fieldName("a", "b", "c") is "a[b][c]".
func fieldName(root string, path ...string) string {
	name := root
	for _, p := range path {
		name += "[" + p + "]"
	}
	return name
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func withQuery(path, key, value string) string {
	return path + "?" + url.Values{key: {value}}.Encode()
}

// storedValue prepares an escaped stored value for an attribute, which is
// escaped again on output.
func storedValue(s string) string {
	return html.UnescapeString(s)
}
