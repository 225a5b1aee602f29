// Package cookie manages admin cookies: plain values, HMAC-signed values
// (the admin session id) and AES-GCM encrypted values (flash notices).
//
// Signed and encrypted values bind the cookie name into the MAC or the
// additional authenticated data, so a value cannot be moved between cookies.
//
//	m := cookie.New(cookie.WithSecret(secret), cookie.WithSecure(true))
//	_ = m.SetFlash(w, "notices", notices, 30)
//	...
//	var notices []gdpr.Notice
//	err := m.Flash(w, r, "notices", &notices)
package cookie
