// Package pokedex defines the domain entities shared across the service.
package pokedex

// RosterEntry is one item of the fixed catalog page. The Name is the
// canonical (English) label from the roster listing.
type RosterEntry struct {
	ID   int
	Name string
}

// RosterPage is the fixed, ordered page of catalog items fetched once per
// staleness window. The roster is immutable once fetched.
type RosterPage struct {
	Count   int
	Entries []RosterEntry
}

// LocalizedName is a single (language, name) pair from a name set.
type LocalizedName struct {
	Language string
	Name     string
}

// NameSet holds the localized display names for one catalog item,
// in upstream order.
type NameSet struct {
	ID    int
	Names []LocalizedName
}

// Detail holds the full attributes of one catalog item, fetched lazily
// and keyed by ID.
type Detail struct {
	ID     int
	Name   string
	Height int // decimeters
	Weight int // hectograms
	Types  []string
	Moves  []string
	// ImageURL is the upstream sprite reference; empty when the upstream
	// record carries none.
	ImageURL string
}

// Preferences are the user's two adjustable view settings.
type Preferences struct {
	Search   string
	Language string
}
