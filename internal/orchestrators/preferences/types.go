package preferences

import (
	"github.com/pokeview/pokedex-api/internal/entities/pokedex"
)

// ResolveInput defines the request for resolving effective preferences.
// Nil pointers mean the address carried no explicit value for that
// preference.
type ResolveInput struct {
	Search   *string
	Language *string
}

// ResolveOutput defines the response for resolving effective preferences
type ResolveOutput struct {
	Preferences pokedex.Preferences
	// CanonicalQuery is the root-view query string reflecting the resolved
	// state, for an address-bar replace.
	CanonicalQuery string
}

// UpdateSearchInput defines the request for changing the search text
type UpdateSearchInput struct {
	Search string
}

// UpdateSearchOutput defines the response for changing the search text
type UpdateSearchOutput struct {
	Preferences    pokedex.Preferences
	CanonicalQuery string
}

// UpdateLanguageInput defines the request for changing the language
type UpdateLanguageInput struct {
	Language string
}

// UpdateLanguageOutput defines the response for changing the language
type UpdateLanguageOutput struct {
	Preferences    pokedex.Preferences
	CanonicalQuery string
}
