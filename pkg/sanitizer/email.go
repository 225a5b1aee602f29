package sanitizer

import (
	"net/mail"
	"strings"
)

// Email returns the normalized address or an empty string when s is not a
// single bare address (display names and lists are rejected).
func Email(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 254 {
		return ""
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return ""
	}
	at := strings.LastIndexByte(s, '@')
	if at < 1 {
		return ""
	}
	domain := s[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return ""
	}
	return s
}

// IsEmail reports whether s is a valid bare email address.
func IsEmail(s string) bool {
	return s != "" && Email(s) == strings.TrimSpace(s)
}
