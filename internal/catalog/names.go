package catalog

import (
	"github.com/pokeview/pokedex-api/internal/entities/pokedex"
)

// ResolveName resolves the best display name for the requested language.
// It searches the name set for an exact match on the normalized code, then
// for the default language, and finally returns fallback (typically the
// canonical roster label).
func ResolveName(ns *pokedex.NameSet, language, fallback string) string {
	if ns == nil || len(ns.Names) == 0 {
		return fallback
	}

	lang := NormalizeLanguage(language)
	for _, n := range ns.Names {
		if n.Language == lang && n.Name != "" {
			return n.Name
		}
	}
	for _, n := range ns.Names {
		if n.Language == DefaultLanguage && n.Name != "" {
			return n.Name
		}
	}
	return fallback
}

// AllNames returns every localized name in the set, all languages, with
// empty entries dropped. Used by the text filter to match against any
// translation.
func AllNames(ns *pokedex.NameSet) []string {
	if ns == nil || len(ns.Names) == 0 {
		return nil
	}

	names := make([]string, 0, len(ns.Names))
	for _, n := range ns.Names {
		if n.Name != "" {
			names = append(names, n.Name)
		}
	}
	return names
}
