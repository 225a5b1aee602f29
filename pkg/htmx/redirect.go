package htmx

import (
	"net/http"
	"net/url"
)

// RedirectWithStatus redirects a regular request with status or sets
// HX-Redirect for an htmx request.
func RedirectWithStatus(w http.ResponseWriter, r *http.Request, targetURL string, status int) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXRedirect, targetURL)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, targetURL, status)
}

// BackOption adjusts the URL computed by Back.
type BackOption func(u *url.URL)

// WithQuery sets a query parameter on the target, replacing existing values.
func WithQuery(key, value string) BackOption {
	return func(u *url.URL) {
		q := u.Query()
		q.Set(key, value)
		u.RawQuery = q.Encode()
	}
}

// WithFragment replaces the fragment of the target.
func WithFragment(fragment string) BackOption {
	return func(u *url.URL) {
		u.Fragment = fragment
	}
}

// Back returns the referring page when it lives on the request host,
// otherwise fallback, with opts applied.
func Back(r *http.Request, fallback string, opts ...BackOption) string {
	target := sameHostReferer(r)
	if target == nil {
		u, err := url.Parse(fallback)
		if err != nil {
			u = &url.URL{Path: "/"}
		}
		target = u
	}
	for _, opt := range opts {
		opt(target)
	}
	return target.String()
}

// sameHostReferer returns the Referer as a host-relative URL, or nil.
func sameHostReferer(r *http.Request) *url.URL {
	ref := r.Referer()
	if ref == "" {
		return nil
	}
	u, err := url.Parse(ref)
	if err != nil {
		return nil
	}
	if u.Host != "" && u.Host != r.Host {
		return nil
	}
	if u.Host == "" && u.Scheme != "" {
		return nil
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return &url.URL{Path: u.Path, RawQuery: u.RawQuery, Fragment: u.Fragment}
}
