package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	pokeapimock "github.com/pokeview/pokedex-api/internal/clients/pokeapi/mock"
	"github.com/pokeview/pokedex-api/internal/entities/pokedex"
	"github.com/pokeview/pokedex-api/internal/errors"
	"github.com/pokeview/pokedex-api/internal/orchestrators/catalog"
)

func newOrchestrator(t *testing.T) (catalog.Service, *pokeapimock.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockClient := pokeapimock.NewMockClient(ctrl)

	o, err := catalog.NewOrchestrator(&catalog.Config{Client: mockClient})
	require.NoError(t, err)
	return o, mockClient
}

func testRoster() *pokedex.RosterPage {
	return &pokedex.RosterPage{
		Count: 3,
		Entries: []pokedex.RosterEntry{
			{ID: 7, Name: "squirtle"},
			{ID: 25, Name: "pikachu"},
			{ID: 26, Name: "raichu"},
		},
	}
}

func expectHydration(mockClient *pokeapimock.MockClient) {
	details := map[int]*pokedex.Detail{
		7:  {ID: 7, Name: "squirtle", Height: 5, Weight: 90, Types: []string{"water"}},
		25: {ID: 25, Name: "pikachu", Height: 4, Weight: 60, Types: []string{"electric"}},
		26: {ID: 26, Name: "raichu", Height: 8, Weight: 300, Types: []string{"electric"}},
	}
	nameSets := map[int]*pokedex.NameSet{
		7: {ID: 7, Names: []pokedex.LocalizedName{
			{Language: "en", Name: "Squirtle"}, {Language: "fr", Name: "Carapuce"},
		}},
		25: {ID: 25, Names: []pokedex.LocalizedName{
			{Language: "en", Name: "Pikachu"}, {Language: "fr", Name: "Pikachu"},
		}},
		26: {ID: 26, Names: []pokedex.LocalizedName{
			{Language: "en", Name: "Raichu"}, {Language: "fr", Name: "Raichu"},
		}},
	}

	for id := range details {
		mockClient.EXPECT().
			GetDetail(gomock.Any(), id).
			Return(details[id], nil).
			AnyTimes()
		mockClient.EXPECT().
			GetNameSet(gomock.Any(), id).
			Return(nameSets[id], nil).
			AnyTimes()
	}
}

func TestListEntries_FullRoster(t *testing.T) {
	o, mockClient := newOrchestrator(t)
	ctx := context.Background()

	mockClient.EXPECT().
		GetRoster(ctx, 151, 0).
		Return(testRoster(), nil)
	expectHydration(mockClient)

	output, err := o.ListEntries(ctx, &catalog.ListEntriesInput{Language: "fr"})
	require.NoError(t, err)

	require.Len(t, output.Cards, 3)
	assert.Equal(t, 3, output.TotalMatches)
	assert.Equal(t, 0, output.Pending)

	// Roster order preserved, names resolved for the requested language.
	assert.Equal(t, 7, output.Cards[0].ID)
	assert.Equal(t, "Carapuce", output.Cards[0].DisplayName)
	assert.Equal(t, "#007", output.Cards[0].Number)
}

func TestListEntries_TagFilter(t *testing.T) {
	o, mockClient := newOrchestrator(t)
	ctx := context.Background()

	mockClient.EXPECT().
		GetRoster(ctx, 151, 0).
		Return(testRoster(), nil)
	expectHydration(mockClient)

	output, err := o.ListEntries(ctx, &catalog.ListEntriesInput{
		Tags:     []string{"electric"},
		Language: "en",
	})
	require.NoError(t, err)

	require.Len(t, output.Cards, 2)
	assert.Equal(t, 25, output.Cards[0].ID)
	assert.Equal(t, 26, output.Cards[1].ID)
}

func TestListEntries_NumericQuery(t *testing.T) {
	o, mockClient := newOrchestrator(t)
	ctx := context.Background()

	mockClient.EXPECT().
		GetRoster(ctx, 151, 0).
		Return(testRoster(), nil)
	expectHydration(mockClient)

	output, err := o.ListEntries(ctx, &catalog.ListEntriesInput{Query: "25"})
	require.NoError(t, err)

	require.Len(t, output.Cards, 1)
	assert.Equal(t, 25, output.Cards[0].ID)
	assert.Equal(t, 1, output.TotalMatches)
}

func TestListEntries_PartialAvailability(t *testing.T) {
	o, mockClient := newOrchestrator(t)
	ctx := context.Background()

	mockClient.EXPECT().
		GetRoster(ctx, 151, 0).
		Return(testRoster(), nil)

	// One entry's records fail; its siblings still render and the failed
	// slot is reported as pending rather than silently dropped.
	mockClient.EXPECT().
		GetDetail(gomock.Any(), 7).
		Return(nil, errors.Unavailable("upstream returned status 503")).
		AnyTimes()
	mockClient.EXPECT().
		GetNameSet(gomock.Any(), 7).
		Return(nil, errors.Unavailable("upstream returned status 503")).
		AnyTimes()
	for _, id := range []int{25, 26} {
		mockClient.EXPECT().
			GetDetail(gomock.Any(), id).
			Return(&pokedex.Detail{ID: id, Name: "x", Types: []string{"electric"}}, nil).
			AnyTimes()
		mockClient.EXPECT().
			GetNameSet(gomock.Any(), id).
			Return(&pokedex.NameSet{ID: id}, nil).
			AnyTimes()
	}

	output, err := o.ListEntries(ctx, &catalog.ListEntriesInput{})
	require.NoError(t, err)

	assert.Len(t, output.Cards, 2)
	assert.Equal(t, 1, output.Pending)
	assert.Equal(t, 3, output.TotalMatches)
}

func TestListEntries_RosterFailure(t *testing.T) {
	o, mockClient := newOrchestrator(t)
	ctx := context.Background()

	mockClient.EXPECT().
		GetRoster(ctx, 151, 0).
		Return(nil, errors.Unavailable("upstream returned status 503"))

	_, err := o.ListEntries(ctx, &catalog.ListEntriesInput{})
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestGetEntry(t *testing.T) {
	o, mockClient := newOrchestrator(t)
	ctx := context.Background()

	mockClient.EXPECT().
		GetDetail(ctx, 25).
		Return(&pokedex.Detail{
			ID:     25,
			Name:   "pikachu",
			Height: 4,
			Weight: 60,
			Types:  []string{"electric"},
			Moves:  []string{"thunder-shock", "quick-attack", "iron-tail"},
		}, nil)
	mockClient.EXPECT().
		GetNameSet(ctx, 25).
		Return(&pokedex.NameSet{ID: 25, Names: []pokedex.LocalizedName{
			{Language: "en", Name: "Pikachu"},
			{Language: "ja-Hrkt", Name: "ピカチュウ"},
		}}, nil)

	output, err := o.GetEntry(ctx, &catalog.GetEntryInput{
		ID:            25,
		Language:      "de",
		MovesPage:     0,
		MovesPageSize: 2,
	})
	require.NoError(t, err)

	entry := output.Entry
	// No "de" entry: resolution falls back to "en".
	assert.Equal(t, "Pikachu", entry.DisplayName)
	assert.Equal(t, "#025", entry.Number)
	assert.Equal(t, "40 cm", entry.Height)
	assert.Equal(t, "6 kg", entry.Weight)
	assert.Equal(t, []string{"thunder shock", "quick attack"}, entry.Moves)
	assert.Equal(t, 3, entry.MovesTotal)
	assert.Equal(t, "Attacken anzeigen", entry.MoveLabels.Button)
	require.Len(t, entry.Types, 1)
	assert.Equal(t, "Elektro", entry.Types[0].Label)
}

func TestGetEntry_NotFound(t *testing.T) {
	o, mockClient := newOrchestrator(t)
	ctx := context.Background()

	mockClient.EXPECT().
		GetDetail(ctx, 9999).
		Return(nil, errors.NotFound("upstream has no record"))

	_, err := o.GetEntry(ctx, &catalog.GetEntryInput{ID: 9999})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestGetEntry_NameSetFailureFallsBack(t *testing.T) {
	o, mockClient := newOrchestrator(t)
	ctx := context.Background()

	mockClient.EXPECT().
		GetDetail(ctx, 25).
		Return(&pokedex.Detail{ID: 25, Name: "pikachu"}, nil)
	mockClient.EXPECT().
		GetNameSet(ctx, 25).
		Return(nil, errors.Unavailable("upstream returned status 503"))

	output, err := o.GetEntry(ctx, &catalog.GetEntryInput{ID: 25, Language: "fr"})
	require.NoError(t, err)
	assert.Equal(t, "pikachu", output.Entry.DisplayName)
}

func TestGetEntry_InvalidID(t *testing.T) {
	o, _ := newOrchestrator(t)

	_, err := o.GetEntry(context.Background(), &catalog.GetEntryInput{ID: 0})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestListTypes(t *testing.T) {
	o, _ := newOrchestrator(t)

	output, err := o.ListTypes(context.Background(), &catalog.ListTypesInput{Language: "fr"})
	require.NoError(t, err)

	require.Len(t, output.Types, 17)
	assert.Equal(t, "normal", output.Types[0].Key)

	byKey := map[string]string{}
	for _, tb := range output.Types {
		byKey[tb.Key] = tb.Label
	}
	assert.Equal(t, "Électrik", byKey["electric"])
	assert.Equal(t, "Eau", byKey["water"])
}

func TestNewOrchestrator_RequiresClient(t *testing.T) {
	_, err := catalog.NewOrchestrator(&catalog.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
