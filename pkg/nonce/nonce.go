package nonce

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLifetime matches the validity window of admin form nonces.
const DefaultLifetime = 24 * time.Hour

type claims struct {
	Action string `json:"act"`
	jwt.RegisteredClaims
}

// Issuer creates and verifies nonces with a shared secret.
type Issuer struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// Option configures an Issuer.
type Option func(*Issuer)

// WithLifetime sets how long a token stays valid.
func WithLifetime(d time.Duration) Option {
	return func(i *Issuer) {
		if d > 0 {
			i.lifetime = d
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		if now != nil {
			i.now = now
		}
	}
}

// New creates an Issuer.
func New(secret string, opts ...Option) (*Issuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	i := &Issuer{
		secret:   []byte(secret),
		lifetime: DefaultLifetime,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Create returns a token bound to action and subject.
func (i *Issuer) Create(action, subject string) (string, error) {
	if action == "" {
		return "", ErrEmptyAction
	}
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Action: action,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
		},
	})
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}
	return signed, nil
}

// Verify checks that token is valid for action and subject.
func (i *Issuer) Verify(token, action, subject string) error {
	if token == "" {
		return ErrInvalidToken
	}
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return errors.Join(ErrInvalidToken, err)
	}
	if c.Action != action || c.Subject != subject {
		return ErrMismatch
	}
	return nil
}

// Valid is Verify reduced to a boolean.
func (i *Issuer) Valid(token, action, subject string) bool {
	return i.Verify(token, action, subject) == nil
}
