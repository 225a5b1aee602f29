package gdpr

import (
	"html"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/gdpr/pkg/sanitizer"
)

// DropFunc is told the path ("marketing" or "marketing.hosts.example.com")
// of every record the sanitizer discards for missing required fields.
type DropFunc func(path string)

// SanitizeFunc cleans a submitted setting value before it is stored.
type SanitizeFunc func(raw any, drop DropFunc) (any, error)

// removeFlag marks an entry the operator deleted in the editor.
const removeFlag = "remove"

// NewEntryKey is the form key of the blank "add" block in the editor. An
// entry submitted under it is keyed by its slugged name; a block left
// completely blank is ignored.
const NewEntryKey = "_new"

// SanitizeText is the SanitizeFunc for plain text settings.
func SanitizeText(raw any, _ DropFunc) (any, error) {
	return sanitizer.TextField(stringOf(raw)), nil
}

// SanitizePopup is the SanitizeFunc for gdpr_cookie_popup_content.
func SanitizePopup(raw any, drop DropFunc) (any, error) {
	m, _ := raw.(map[string]any)
	return SanitizePopupContent(m, drop), nil
}

// SanitizePopupContent turns a submitted category tree into PopupContent.
//
// A category without name, how_we_use or cookies_used is dropped, and so is
// a host without name or cookies_used. Entries flagged "remove" are dropped
// without being reported. Plain fields are reduced to escaped text,
// how_we_use keeps a small HTML subset and optout gets URL cleanup only.
// Submitted keys are kept; a key already taken gets a numeric suffix.
// drop may be nil.
func SanitizePopupContent(raw map[string]any, drop DropFunc) PopupContent {
	if drop == nil {
		drop = func(string) {}
	}

	out := make(PopupContent, len(raw))
	for _, rawKey := range entryOrder(raw) {
		props, _ := raw[rawKey].(map[string]any)
		if isRemoved(props) {
			continue
		}

		if rawKey == NewEntryKey && untouched(props, "name", "how_we_use", "cookies_used") {
			continue
		}

		cat, ok := sanitizeCategory(props)
		if !ok {
			drop(rawKey)
			continue
		}

		hosts, _ := props["hosts"].(map[string]any)
		for _, rawHostKey := range entryOrder(hosts) {
			hprops, _ := hosts[rawHostKey].(map[string]any)
			if isRemoved(hprops) {
				continue
			}
			if rawHostKey == NewEntryKey && untouched(hprops, "name", "cookies_used", "optout") {
				continue
			}
			host, ok := sanitizeHost(hprops)
			if !ok {
				drop(rawKey + ".hosts." + rawHostKey)
				continue
			}
			if cat.Hosts == nil {
				cat.Hosts = make(map[string]CookieHost)
			}
			hostKey := freeKey(resolveKey(rawHostKey, hprops, "host"), func(k string) bool {
				_, taken := cat.Hosts[k]
				return taken
			})
			cat.Hosts[hostKey] = host
		}

		key := freeKey(resolveKey(rawKey, props, "category"), func(k string) bool {
			_, taken := out[k]
			return taken
		})
		out[key] = cat
	}
	return out
}

func sanitizeCategory(props map[string]any) (CookieCategory, bool) {
	name := stringOf(props["name"])
	howWeUse := stringOf(props["how_we_use"])
	cookiesUsed := stringOf(props["cookies_used"])
	if blank(name) || blank(howWeUse) || blank(cookiesUsed) {
		return CookieCategory{}, false
	}

	cat := CookieCategory{
		Name:         sanitizer.TextField(name),
		AlwaysActive: sanitizer.TextField(stringOf(props["always_active"])),
		HowWeUse:     strings.TrimSpace(sanitizer.PostHTML(howWeUse)),
		CookiesUsed:  sanitizer.TextField(cookiesUsed),
	}
	// Markup-only input survives the raw check but not sanitization.
	if cat.Name == "" || cat.HowWeUse == "" || cat.CookiesUsed == "" {
		return CookieCategory{}, false
	}
	return cat, true
}

func sanitizeHost(props map[string]any) (CookieHost, bool) {
	name := stringOf(props["name"])
	cookiesUsed := stringOf(props["cookies_used"])
	if blank(name) || blank(cookiesUsed) {
		return CookieHost{}, false
	}

	host := CookieHost{
		Name:        sanitizer.TextField(name),
		CookiesUsed: sanitizer.TextField(cookiesUsed),
		OptOut:      sanitizer.URLRaw(stringOf(props["optout"])),
	}
	if host.Name == "" || host.CookiesUsed == "" {
		return CookieHost{}, false
	}
	return host, true
}

func isRemoved(props map[string]any) bool {
	return stringOf(props[removeFlag]) == "on"
}

// resolveKey returns the key an entry is stored under. Submitted keys are
// kept as they are; new and keyless entries take a slug of their name, or
// fallback when the name has nothing to slug.
func resolveKey(rawKey string, props map[string]any, fallback string) string {
	if key := strings.TrimSpace(rawKey); key != "" && key != NewEntryKey {
		return key
	}
	name := html.UnescapeString(sanitizer.TextField(stringOf(props["name"])))
	if key := slugKey(name); key != "" {
		return key
	}
	return fallback
}

// freeKey returns key, or key with the first numeric suffix not taken.
func freeKey(key string, taken func(string) bool) string {
	if !taken(key) {
		return key
	}
	for i := 2; ; i++ {
		if k := key + "-" + strconv.Itoa(i); !taken(k) {
			return k
		}
	}
}

// entryOrder sorts keys with derived-key entries last, so a slugged name
// never takes the key of an entry that was submitted with one.
func entryOrder(m map[string]any) []string {
	keys := sortedKeys(m)
	sort.SliceStable(keys, func(i, j int) bool {
		return !derivesKey(keys[i]) && derivesKey(keys[j])
	})
	return keys
}

func derivesKey(k string) bool {
	k = strings.TrimSpace(k)
	return k == "" || k == NewEntryKey
}

func untouched(props map[string]any, fields ...string) bool {
	for _, f := range fields {
		if !blank(stringOf(props[f])) {
			return false
		}
	}
	return true
}

// slugKey lowercases s and joins its letter and digit runs with "-".
// Letters of any script are kept.
func slugKey(s string) string {
	s = cases.Lower(language.Und).String(norm.NFC.String(s))
	var b strings.Builder
	b.Grow(len(s))
	sep := false
	for _, r := range s {
		switch {
		case unicode.In(r, unicode.L, unicode.M, unicode.N), r == '_', r == '.':
			if sep && b.Len() > 0 {
				b.WriteByte('-')
			}
			sep = false
			b.WriteRune(r)
		default:
			sep = true
		}
	}
	return b.String()
}

// stringOf returns v when it is a string; any other type counts as empty.
func stringOf(v any) string {
	s, _ := v.(string)
	return s
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
