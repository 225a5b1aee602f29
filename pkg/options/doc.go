// Package options persists named configuration values.
//
// A [Store] holds raw JSON documents keyed by option name. Every write
// replaces the whole document; there is no partial update and no
// optimistic locking, so concurrent writers follow last-write-wins.
//
// Typed access goes through [Get] and [Set]:
//
//	requests, err := options.Get(ctx, store, "gdpr_requests", []Request{})
//	err = options.Set(ctx, store, "gdpr_cookie_banner_content", text, sanitizeText)
//
// Backends:
//   - [Memory]: process-local map, for tests and single-node development
//   - [Redis]: one string key per option under an optional prefix
//   - [Postgres]: one row per option in the "options" table (jsonb)
package options
