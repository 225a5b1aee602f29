// Package gdpr implements the admin side of the GDPR tooling: cookie banner
// settings, the data-subject request board and the deletion workflow.
//
// Persisted state lives in an options.Store under fixed keys:
//
//	gdpr_requests                 []DataRequest, insertion order
//	gdpr_cookie_banner_content    string
//	gdpr_cookie_privacy_excerpt   string
//	gdpr_cookie_popup_content     PopupContent
//
// Every write replaces the whole value. Concurrent writers from different
// processes race and the last write wins.
//
// Business failures (unknown user, duplicate request, missing queue entry)
// are returned as sentinel errors together with a Notice that the HTTP layer
// shows on the next page load. Anything else is an infrastructure error.
package gdpr
