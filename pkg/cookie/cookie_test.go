package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gdpr/pkg/cookie"
)

const testSecret = "this-is-a-32-byte-or-longer-key!"

// roundTrip copies cookies set on w into a fresh request.
func roundTrip(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestPlain(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithPath("/wp-admin"), cookie.WithSecure(true))

	w := httptest.NewRecorder()
	m.Set(w, "tab", "cookies", 60)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "/wp-admin", cookies[0].Path)
	assert.True(t, cookies[0].Secure)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 60, cookies[0].MaxAge)

	v, err := m.Get(roundTrip(t, w), "tab")
	require.NoError(t, err)
	assert.Equal(t, "cookies", v)

	_, err = m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "tab")
	assert.ErrorIs(t, err, cookie.ErrNotFound)
}

func TestSigned(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecret(testSecret))

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "sid", "session-1", 0))

		v, err := m.GetSigned(roundTrip(t, w), "sid")
		require.NoError(t, err)
		assert.Equal(t, "session-1", v)
	})

	t.Run("tampered value", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "sid", "session-1", 0))
		c := w.Result().Cookies()[0]
		_, sig, _ := strings.Cut(c.Value, ".")

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: "c2Vzc2lvbi0y." + sig})
		_, err := m.GetSigned(r, "sid")
		assert.ErrorIs(t, err, cookie.ErrBadSig)
	})

	t.Run("value moved to another cookie", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "sid", "session-1", 0))
		c := w.Result().Cookies()[0]

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "other", Value: c.Value})
		_, err := m.GetSigned(r, "other")
		assert.ErrorIs(t, err, cookie.ErrBadSig)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: "nodot"})
		_, err := m.GetSigned(r, "sid")
		assert.ErrorIs(t, err, cookie.ErrMalformed)
	})

	t.Run("no secret", func(t *testing.T) {
		t.Parallel()

		plain := cookie.New(cookie.WithSecret("short"))
		err := plain.SetSigned(httptest.NewRecorder(), "sid", "x", 0)
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})
}

func TestFlash(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecret(testSecret))

	type notice struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	t.Run("read once", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		in := []notice{{Code: "gdpr-user-added", Message: "User a@b.co was added to the deletion table."}}
		require.NoError(t, m.SetFlash(w, "notices", in, 30))

		set := w.Result().Cookies()
		require.Len(t, set, 1)
		assert.Equal(t, "flash_notices", set[0].Name)
		assert.Equal(t, 30, set[0].MaxAge)
		assert.NotContains(t, set[0].Value, "a@b.co")

		out := httptest.NewRecorder()
		var got []notice
		require.NoError(t, m.Flash(out, roundTrip(t, w), "notices", &got))
		assert.Equal(t, in, got)

		expired := out.Result().Cookies()
		require.Len(t, expired, 1)
		assert.Equal(t, -1, expired[0].MaxAge)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		var got []notice
		err := m.Flash(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), "notices", &got)
		assert.ErrorIs(t, err, cookie.ErrNotFound)
	})

	t.Run("garbage is expired", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "flash_notices", Value: "garbage"})
		w := httptest.NewRecorder()

		var got []notice
		err := m.Flash(w, r, "notices", &got)
		assert.ErrorIs(t, err, cookie.ErrDecrypt)
		require.Len(t, w.Result().Cookies(), 1)
	})

	t.Run("different secret", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, m.SetFlash(w, "notices", []notice{{Code: "x"}}, 30))

		other := cookie.New(cookie.WithSecret(strings.Repeat("z", 40)))
		var got []notice
		err := other.Flash(httptest.NewRecorder(), roundTrip(t, w), "notices", &got)
		assert.ErrorIs(t, err, cookie.ErrDecrypt)
	})
}
