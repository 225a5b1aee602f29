package cookie

import (
	"crypto/sha256"
	"errors"
	"net/http"
)

// MinSecretLength is the shortest secret WithSecret accepts.
const MinSecretLength = 32

// Manager reads and writes cookies with shared attributes.
type Manager struct {
	signKey  []byte
	encKey   []byte
	path     string
	secure   bool
	sameSite http.SameSite
}

// Option configures the Manager.
type Option func(*Manager)

// New creates a cookie Manager. Cookies are always HttpOnly.
func New(opts ...Option) *Manager {
	m := &Manager{
		path:     "/",
		sameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithSecret derives separate signing and encryption keys from secret.
// Secrets shorter than MinSecretLength are ignored.
func WithSecret(secret string) Option {
	return func(m *Manager) {
		if len(secret) < MinSecretLength {
			return
		}
		sign := sha256.Sum256([]byte("sign:" + secret))
		enc := sha256.Sum256([]byte("enc:" + secret))
		m.signKey = sign[:]
		m.encKey = enc[:]
	}
}

// WithPath sets the cookie path.
func WithPath(path string) Option {
	return func(m *Manager) {
		if path != "" {
			m.path = path
		}
	}
}

// WithSecure sets the Secure flag.
func WithSecure(secure bool) Option {
	return func(m *Manager) {
		m.secure = secure
	}
}

// WithSameSite sets the SameSite attribute.
func WithSameSite(ss http.SameSite) Option {
	return func(m *Manager) {
		m.sameSite = ss
	}
}

// Get returns a plain cookie value.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Set writes a plain cookie. maxAge 0 makes it a session cookie.
func (m *Manager) Set(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, m.cookie(name, value, maxAge))
}

// Delete expires a cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, m.cookie(name, "", -1))
}

func (m *Manager) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     m.path,
		MaxAge:   maxAge,
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: m.sameSite,
	}
}
