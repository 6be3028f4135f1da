package catalog

import (
	"strconv"
	"strings"

	"github.com/pokeview/pokedex-api/internal/entities/pokedex"
)

const (
	// RosterLimit is the size of the fixed catalog page.
	RosterLimit = 151

	// VisibleWindow caps how many filtered results are rendered at once.
	// The full match count is still reported for the results indicator.
	VisibleWindow = 48
)

// FilterInput carries the current state the filter recomputes from. Detail
// and name-set maps may be partial; ids whose records have not arrived are
// handled per stage rather than dropped up front.
type FilterInput struct {
	// AllIDs is the roster order; filtering is stable and never re-sorts.
	AllIDs []int

	Query        string
	SelectedTags []string

	DetailByID  map[int]*pokedex.Detail
	NameSetByID map[int]*pokedex.NameSet

	// CanonicalNameByID maps an id to its roster label, the text-filter
	// fallback while no name set is loaded for that id.
	CanonicalNameByID map[int]string

	// Window overrides VisibleWindow when positive.
	Window int
}

// FilterResult is the ordered visible subset plus the pre-truncation count.
type FilterResult struct {
	VisibleIDs   []int
	TotalMatches int
}

// ComputeVisible applies the tag filter then the text filter to the roster
// order and truncates to the visible window. Each stage is a no-op when its
// input is empty.
func ComputeVisible(in FilterInput) FilterResult {
	ids := in.AllIDs

	if len(in.SelectedTags) > 0 {
		kept := make([]int, 0, len(ids))
		for _, id := range ids {
			detail := in.DetailByID[id]
			if detail == nil || len(detail.Types) == 0 {
				// Cannot be conclusively matched until the detail arrives.
				continue
			}
			if intersects(detail.Types, in.SelectedTags) {
				kept = append(kept, id)
			}
		}
		ids = kept
	}

	if q := strings.ToLower(strings.TrimSpace(in.Query)); q != "" {
		kept := make([]int, 0, len(ids))
		for _, id := range ids {
			if matchesQuery(in, id, q) {
				kept = append(kept, id)
			}
		}
		ids = kept
	}

	window := in.Window
	if window <= 0 {
		window = VisibleWindow
	}

	visible := ids
	if len(visible) > window {
		visible = visible[:window]
	}

	return FilterResult{
		VisibleIDs:   visible,
		TotalMatches: len(ids),
	}
}

// matchesQuery keeps an id when its decimal form equals the query, when any
// localized name contains it, or, while no name set is loaded, when the
// canonical roster label contains it. The canonical fallback means an entry
// can stop matching once its names arrive; that mirrors how results settle
// as data loads.
func matchesQuery(in FilterInput, id int, q string) bool {
	if strconv.Itoa(id) == q {
		return true
	}

	if names := AllNames(in.NameSetByID[id]); len(names) > 0 {
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), q) {
				return true
			}
		}
		return false
	}

	return strings.Contains(strings.ToLower(in.CanonicalNameByID[id]), q)
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
