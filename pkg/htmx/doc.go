// Package htmx makes redirects work for both plain form posts and
// htmx-driven requests.
//
// A plain request gets an HTTP redirect. An htmx request gets 200 with an
// HX-Redirect header, because htmx swallows 3xx responses.
//
// [Back] resolves the page a form was submitted from using the Referer
// header, accepting only same-host targets, and lets callers attach query
// parameters and a fragment to it.
package htmx
