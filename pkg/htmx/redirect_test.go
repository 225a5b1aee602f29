package htmx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/gdpr/pkg/htmx"
)

func TestRedirectWithStatus(t *testing.T) {
	t.Parallel()

	t.Run("htmx request sets HX-Redirect and 200", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/requests/delete", nil)
		req.Header.Set("HX-Request", "true")

		htmx.RedirectWithStatus(rec, req, "/requests", http.StatusSeeOther)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/requests", rec.Header().Get("HX-Redirect"))
		assert.Empty(t, rec.Header().Get("Location"))
	})

	t.Run("plain request uses status", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/requests/delete", nil)

		htmx.RedirectWithStatus(rec, req, "/requests", http.StatusSeeOther)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/requests", rec.Header().Get("Location"))
	})
}

func TestBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		referer string
		opts    []htmx.BackOption
		want    string
	}{
		{
			name: "no referer uses fallback",
			want: "/requests",
		},
		{
			name:    "same host referer keeps path and query",
			referer: "http://admin.example.com/requests?tab=delete",
			want:    "/requests?tab=delete",
		},
		{
			name:    "foreign host falls back",
			referer: "http://evil.example.net/phish",
			want:    "/requests",
		},
		{
			name:    "adds query and fragment",
			referer: "http://admin.example.com/requests?tab=delete",
			opts:    []htmx.BackOption{htmx.WithQuery("settings-updated", "true"), htmx.WithFragment("delete")},
			want:    "/requests?settings-updated=true&tab=delete#delete",
		},
		{
			name:    "replaces existing query value",
			referer: "http://admin.example.com/settings?settings-updated=false",
			opts:    []htmx.BackOption{htmx.WithQuery("settings-updated", "true")},
			want:    "/settings?settings-updated=true",
		},
		{
			name:    "relative referer",
			referer: "/settings?tab=cookies",
			want:    "/settings?tab=cookies",
		},
		{
			name:    "scheme without host falls back",
			referer: "javascript:alert(1)",
			want:    "/requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "http://admin.example.com/requests/delete", nil)
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			assert.Equal(t, tt.want, htmx.Back(req, "/requests", tt.opts...))
		})
	}
}

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, htmx.IsHTMX(req))
	req.Header.Set("HX-Request", "true")
	assert.True(t, htmx.IsHTMX(req))
}
