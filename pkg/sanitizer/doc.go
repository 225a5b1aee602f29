// Package sanitizer normalizes untrusted form input before it is persisted
// or echoed back into admin pages.
//
// HTML handling is backed by bluemonday: [StripHTML] removes all markup,
// [PostHTML] keeps a constrained formatting subset. [TextField], [URLRaw]
// and [Email] implement the single-value cleanups used by settings forms.
package sanitizer
