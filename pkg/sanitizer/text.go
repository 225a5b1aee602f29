package sanitizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	whitespaceRun = regexp.MustCompile(`[\r\n\t ]+`)
	encodedOctet  = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
)

// TextField turns untrusted single-line input into safe plain text.
// Invalid UTF-8 yields an empty string. Tags are stripped, the remaining
// text is HTML-escaped, percent-encoded octets are removed and whitespace
// runs (including line breaks and tabs) collapse to a single space.
func TextField(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	s = StripHTML(s)
	s = encodedOctet.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Key lowercases s and keeps only [a-z0-9_-].
// Used for tab identifiers and other slugs taken from the query string.
func Key(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
