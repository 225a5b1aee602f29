// Package middlewares holds the web.Middleware set of the admin service.
//
//   - Recover turns panics into a PanicError for the error handler.
//   - RequestID propagates or generates a request id and exposes it to logs
//     through RequestIDExtractor.
//   - Logging writes one line per completed request.
//   - AdminSession pins a random id to the browser in a signed cookie. Form
//     nonces are bound to it.
//   - Locale negotiates the UI language from Accept-Language.
package middlewares
