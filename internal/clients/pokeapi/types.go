package pokeapi

import (
	"regexp"
	"strconv"

	"github.com/pokeview/pokedex-api/internal/entities/pokedex"
)

// Wire types mirroring the upstream JSON payloads. Only the fields the
// service consumes are decoded.

type listResponse struct {
	Count    int          `json:"count"`
	Next     *string      `json:"next"`
	Previous *string      `json:"previous"`
	Results  []listResult `json:"results"`
}

type listResult struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type typeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type moveEntry struct {
	Move namedResource `json:"move"`
}

type spriteSet struct {
	FrontDefault *string `json:"front_default"`
}

type pokemonResponse struct {
	ID      int         `json:"id"`
	Name    string      `json:"name"`
	Height  int         `json:"height"`
	Weight  int         `json:"weight"`
	Types   []typeSlot  `json:"types"`
	Moves   []moveEntry `json:"moves"`
	Sprites spriteSet   `json:"sprites"`
}

type speciesName struct {
	Language namedResource `json:"language"`
	Name     string        `json:"name"`
}

type speciesResponse struct {
	ID    int           `json:"id"`
	Names []speciesName `json:"names"`
}

// rosterURLPattern extracts the numeric identifier from a roster entry's
// resource URL; the listing itself carries no id field.
var rosterURLPattern = regexp.MustCompile(`/pokemon/(\d+)/`)

func idFromURL(url string) (int, bool) {
	m := rosterURLPattern.FindStringSubmatch(url)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

func convertList(resp *listResponse) *pokedex.RosterPage {
	page := &pokedex.RosterPage{
		Count:   resp.Count,
		Entries: make([]pokedex.RosterEntry, 0, len(resp.Results)),
	}
	for _, r := range resp.Results {
		id, ok := idFromURL(r.URL)
		if !ok {
			// Entries without a parseable id cannot be addressed later;
			// skip them rather than poison the roster.
			continue
		}
		page.Entries = append(page.Entries, pokedex.RosterEntry{ID: id, Name: r.Name})
	}
	return page
}

func convertPokemon(resp *pokemonResponse) *pokedex.Detail {
	detail := &pokedex.Detail{
		ID:     resp.ID,
		Name:   resp.Name,
		Height: resp.Height,
		Weight: resp.Weight,
		Types:  make([]string, 0, len(resp.Types)),
		Moves:  make([]string, 0, len(resp.Moves)),
	}
	for _, t := range resp.Types {
		detail.Types = append(detail.Types, t.Type.Name)
	}
	for _, m := range resp.Moves {
		detail.Moves = append(detail.Moves, m.Move.Name)
	}
	if resp.Sprites.FrontDefault != nil {
		detail.ImageURL = *resp.Sprites.FrontDefault
	}
	return detail
}

func convertSpecies(resp *speciesResponse) *pokedex.NameSet {
	ns := &pokedex.NameSet{
		ID:    resp.ID,
		Names: make([]pokedex.LocalizedName, 0, len(resp.Names)),
	}
	for _, n := range resp.Names {
		ns.Names = append(ns.Names, pokedex.LocalizedName{
			Language: n.Language.Name,
			Name:     n.Name,
		})
	}
	return ns
}
