// Package locale translates admin UI strings.
//
// Message ids are the English strings themselves. Catalogs for other
// languages are YAML files under locales/, loaded into an x/text catalog.
// The request printer is negotiated from Accept-Language and stored in the
// context; [T] formats a message with it and falls back to English.
package locale
