package sanitizer

import (
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// AllowedProtocols lists the URL schemes URLRaw keeps.
var AllowedProtocols = []string{
	"http", "https", "ftp", "ftps", "mailto", "news", "irc", "irc6", "ircs",
	"gopher", "nntp", "feed", "telnet", "mms", "rtsp", "sms", "svn", "tel",
	"fax", "xmpp", "webcal", "urn",
}

var urlDisallowed = regexp.MustCompile(`[^a-zA-Z0-9\-~+_.?#=!&;,/:%@$|*'()\[\]\\\x80-\xff]`)

// URLRaw cleans a URL for storage. It removes whitespace and characters
// that never appear in URLs, prefixes bare hosts with http:// and drops
// URLs whose scheme is not in AllowedProtocols. The URL is not fetched.
func URLRaw(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, " ", "%20")
	s = urlDisallowed.ReplaceAllString(s, "")
	if s == "" {
		return ""
	}

	if !strings.Contains(s, ":") && !isRelative(s) {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	if u.Scheme != "" && !slices.Contains(AllowedProtocols, strings.ToLower(u.Scheme)) {
		return ""
	}
	return s
}

func isRelative(s string) bool {
	switch s[0] {
	case '/', '#', '?':
		return true
	}
	return false
}
