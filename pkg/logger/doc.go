// Package logger builds slog loggers for the admin service.
//
// Every logger can be decorated with [ContextExtractor] functions that copy
// request-scoped values (request id, admin session) from the context into
// each record. [NewWithSentry] additionally forwards warnings and errors to
// Sentry and falls back to stdout only when no DSN is configured.
package logger
