// Package handlers serves the GDPR admin pages: the cookie settings page
// and the data requests page with its deletion queue forms.
//
// Every state-changing form carries a nonce bound to an action and to the
// admin session id (see middlewares.AdminSession). Outcomes are reported as
// notices stored in a short-lived flash cookie and shown after the
// redirect back to the page the form was posted from.
package handlers
