package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeview/pokedex-api/internal/catalog"
	"github.com/pokeview/pokedex-api/internal/entities/pokedex"
)

func rosterIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

func nameSet(id int, pairs ...string) *pokedex.NameSet {
	ns := &pokedex.NameSet{ID: id}
	for i := 0; i+1 < len(pairs); i += 2 {
		ns.Names = append(ns.Names, pokedex.LocalizedName{Language: pairs[i], Name: pairs[i+1]})
	}
	return ns
}

func TestComputeVisible_NoFilters(t *testing.T) {
	// Full roster order, truncated to the visible window.
	result := catalog.ComputeVisible(catalog.FilterInput{
		AllIDs: rosterIDs(151),
	})

	require.Len(t, result.VisibleIDs, catalog.VisibleWindow)
	assert.Equal(t, 151, result.TotalMatches)
	assert.Equal(t, 1, result.VisibleIDs[0])
	assert.Equal(t, 48, result.VisibleIDs[47])
}

func TestComputeVisible_Idempotent(t *testing.T) {
	in := catalog.FilterInput{
		AllIDs: rosterIDs(151),
		Query:  "saur",
		CanonicalNameByID: map[int]string{
			1: "bulbasaur", 2: "ivysaur", 3: "venusaur", 4: "charmander",
		},
	}

	first := catalog.ComputeVisible(in)
	second := catalog.ComputeVisible(in)

	assert.Equal(t, first, second)
	assert.Equal(t, []int{1, 2, 3}, first.VisibleIDs)
}

func TestComputeVisible_NumericQueryMatchesID(t *testing.T) {
	// Identifier 25 matches the query "25" even before any name data loads.
	result := catalog.ComputeVisible(catalog.FilterInput{
		AllIDs: rosterIDs(151),
		Query:  "25",
	})

	assert.Equal(t, []int{25}, result.VisibleIDs)
	assert.Equal(t, 1, result.TotalMatches)
}

func TestComputeVisible_TagFilter(t *testing.T) {
	details := map[int]*pokedex.Detail{
		7:  {ID: 7, Types: []string{"water"}},
		25: {ID: 25, Types: []string{"electric"}},
		81: {ID: 81, Types: []string{"electric", "steel"}},
	}

	result := catalog.ComputeVisible(catalog.FilterInput{
		AllIDs:       rosterIDs(151),
		SelectedTags: []string{"electric"},
		DetailByID:   details,
	})

	assert.Equal(t, []int{25, 81}, result.VisibleIDs)
}

func TestComputeVisible_TagFilterExcludesUnloadedDetails(t *testing.T) {
	// An id whose detail has not arrived cannot be conclusively matched
	// while the tag filter is active.
	result := catalog.ComputeVisible(catalog.FilterInput{
		AllIDs:       []int{1, 25},
		SelectedTags: []string{"electric"},
		DetailByID: map[int]*pokedex.Detail{
			25: {ID: 25, Types: []string{"electric"}},
		},
	})

	assert.Equal(t, []int{25}, result.VisibleIDs)
}

func TestComputeVisible_EmptyTagsIsNoOp(t *testing.T) {
	// With no tags selected, ids without loaded details stay in.
	result := catalog.ComputeVisible(catalog.FilterInput{
		AllIDs: []int{1, 2, 3},
	})

	assert.Equal(t, []int{1, 2, 3}, result.VisibleIDs)
}

func TestComputeVisible_TextMatchesLocalizedNames(t *testing.T) {
	result := catalog.ComputeVisible(catalog.FilterInput{
		AllIDs: []int{25, 26},
		Query:  "PIKA",
		NameSetByID: map[int]*pokedex.NameSet{
			25: nameSet(25, "en", "Pikachu", "fr", "Pikachu", "ja", "ピカチュウ"),
			26: nameSet(26, "en", "Raichu"),
		},
	})

	assert.Equal(t, []int{25}, result.VisibleIDs)
}

func TestComputeVisible_CanonicalFallbackWhileNamesUnloaded(t *testing.T) {
	in := catalog.FilterInput{
		AllIDs:            []int{4},
		Query:             "char",
		CanonicalNameByID: map[int]string{4: "charmander"},
	}

	// Matches by canonical label while the name set is absent.
	result := catalog.ComputeVisible(in)
	assert.Equal(t, []int{4}, result.VisibleIDs)

	// Once names arrive they take over; the canonical label no longer
	// participates, so the match can change.
	in.NameSetByID = map[int]*pokedex.NameSet{
		4: nameSet(4, "fr", "Salamèche"),
	}
	result = catalog.ComputeVisible(in)
	assert.Empty(t, result.VisibleIDs)
}

func TestComputeVisible_QueryTrimAndCase(t *testing.T) {
	result := catalog.ComputeVisible(catalog.FilterInput{
		AllIDs: []int{25},
		Query:  "  PiKa  ",
		NameSetByID: map[int]*pokedex.NameSet{
			25: nameSet(25, "en", "Pikachu"),
		},
	})

	assert.Equal(t, []int{25}, result.VisibleIDs)
}

func TestComputeVisible_StagesCombine(t *testing.T) {
	result := catalog.ComputeVisible(catalog.FilterInput{
		AllIDs:       []int{7, 25, 81},
		Query:        "chu",
		SelectedTags: []string{"electric"},
		DetailByID: map[int]*pokedex.Detail{
			7:  {ID: 7, Types: []string{"water"}},
			25: {ID: 25, Types: []string{"electric"}},
			81: {ID: 81, Types: []string{"electric", "steel"}},
		},
		NameSetByID: map[int]*pokedex.NameSet{
			7:  nameSet(7, "en", "Squirtle"),
			25: nameSet(25, "en", "Pikachu"),
			81: nameSet(81, "en", "Magnemite"),
		},
	})

	assert.Equal(t, []int{25}, result.VisibleIDs)
	assert.Equal(t, 1, result.TotalMatches)
}

func TestComputeVisible_TotalMatchesSurvivesTruncation(t *testing.T) {
	result := catalog.ComputeVisible(catalog.FilterInput{
		AllIDs: rosterIDs(151),
		Window: 10,
	})

	assert.Len(t, result.VisibleIDs, 10)
	assert.Equal(t, 151, result.TotalMatches)
}
