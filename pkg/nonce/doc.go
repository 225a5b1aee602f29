// Package nonce issues and verifies action-scoped CSRF tokens.
//
// A token is an HS256 JWT carrying the action name and the subject it was
// issued for (the admin session id). Verification fails when the token is
// expired, signed with another key, or was issued for a different action or
// subject.
package nonce
