package nonce

import "errors"

var (
	ErrEmptySecret  = errors.New("nonce: secret is empty")
	ErrEmptyAction  = errors.New("nonce: action is empty")
	ErrInvalidToken = errors.New("nonce: invalid token")
	ErrExpiredToken = errors.New("nonce: token expired")
	ErrMismatch     = errors.New("nonce: token issued for another action or subject")
)
