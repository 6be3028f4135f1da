package catalog

import (
	catalogview "github.com/pokeview/pokedex-api/internal/catalog"
)

// ListEntriesInput defines the request for the filtered catalog view
type ListEntriesInput struct {
	// Query is the free-text search; empty disables the text filter.
	Query string
	// Tags are the selected category tags; empty disables the tag filter.
	Tags []string
	// Language selects the display language for names and type labels.
	Language string
	// Limit and Offset select the roster page (defaults: 151, 0).
	Limit  int
	Offset int
	// Window overrides the visible-window size when positive.
	Window int
}

// ListEntriesOutput defines the response for the filtered catalog view
type ListEntriesOutput struct {
	// Cards are the render-entries for the visible window, in roster order.
	// Entries whose detail record could not be fetched are withheld.
	Cards []*catalogview.Card
	// TotalMatches is the filtered count before window truncation, for the
	// "N results" indicator and the empty-state message.
	TotalMatches int
	// Pending is how many visible slots had no detail record available.
	// A client shows a full-page spinner only when Cards is empty and
	// Pending is not.
	Pending int
	// Window is the effective visible-window size.
	Window int
}

// GetEntryInput defines the request for one catalog entry's detail view
type GetEntryInput struct {
	ID       int
	Language string
	// MovesPage and MovesPageSize page through the entry's move list.
	// Zero-based page; a zero size returns the whole list.
	MovesPage     int
	MovesPageSize int
}

// GetEntryOutput defines the response for one catalog entry's detail view
type GetEntryOutput struct {
	Entry *EntryView
}

// EntryView is the fully composed detail view for one catalog entry.
type EntryView struct {
	ID          int                     `json:"id"`
	DisplayName string                  `json:"display_name"`
	Number      string                  `json:"number"`
	Height      string                  `json:"height"`
	Weight      string                  `json:"weight"`
	Types       []catalogview.TypeBadge `json:"types"`
	ImageURL    string                  `json:"image_url"`
	Moves       []string                `json:"moves"`
	MovesTotal  int                     `json:"moves_total"`
	MovesPage   int                     `json:"moves_page"`
	MoveLabels  catalogview.MoveLabels  `json:"move_labels"`
}

// ListTypesInput defines the request for the category tag descriptors
type ListTypesInput struct {
	Language string
}

// ListTypesOutput defines the response for the category tag descriptors
type ListTypesOutput struct {
	Types []catalogview.TypeBadge
}
