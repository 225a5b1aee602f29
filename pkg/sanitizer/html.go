package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	postPolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML and escapes what is left.
		strictPolicy = bluemonday.StrictPolicy()

		// postPolicy is the markup an editor may put into post-like content:
		// inline formatting, lists, headings, quotes and links.
		postPolicy = bluemonday.NewPolicy()
		postPolicy.AllowStandardURLs()
		postPolicy.AllowElements(
			"p", "br", "span",
			"strong", "b", "em", "i", "u", "s", "del", "sub", "sup", "abbr",
			"ul", "ol", "li",
			"h2", "h3", "h4", "h5", "h6",
			"code", "pre", "blockquote",
		)
		postPolicy.AllowAttrs("href", "title").OnElements("a")
		postPolicy.AllowAttrs("title").OnElements("abbr")
		postPolicy.RequireNoFollowOnLinks(true)
	})
}

// StripHTML removes every tag and returns HTML-escaped plain text.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// PostHTML keeps the constrained subset of markup allowed in rich-text
// settings (paragraphs, inline formatting, lists, headings, links).
// Scripts, event handlers, styles and javascript: URLs are removed.
func PostHTML(s string) string {
	initPolicies()
	return postPolicy.Sanitize(s)
}

// HTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func HTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
