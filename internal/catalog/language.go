// Package catalog implements the pure view logic of the pokedex: name
// resolution, roster filtering, and render-entry composition. Everything in
// this package is a pure function of its inputs so it can be recomputed
// idempotently whenever a record arrives.
package catalog

import "strings"

// DefaultLanguage is the hard-coded fallback language.
const DefaultLanguage = "en"

// Languages is the fixed set of supported language codes, in display order.
var Languages = []string{"en", "fr", "de", "es", "ja"}

// NormalizeLanguage normalizes a language code for lookup against upstream
// name sets, which use hyphenated region separators.
func NormalizeLanguage(code string) string {
	return strings.ReplaceAll(code, "_", "-")
}

// IsValidLanguage reports whether code is one of the supported languages.
// Unrecognized codes never fail resolution; callers degrade to the default.
func IsValidLanguage(code string) bool {
	for _, l := range Languages {
		if code == l {
			return true
		}
	}
	return false
}
