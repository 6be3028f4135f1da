package preferences_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pokeview/pokedex-api/internal/errors"
	"github.com/pokeview/pokedex-api/internal/orchestrators/preferences"
	prefsrepo "github.com/pokeview/pokedex-api/internal/repositories/preferences"
	preferencesmock "github.com/pokeview/pokedex-api/internal/repositories/preferences/mock"
)

func newOrchestrator(t *testing.T) (preferences.Service, *preferencesmock.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := preferencesmock.NewMockRepository(ctrl)

	o, err := preferences.NewOrchestrator(&preferences.Config{Repository: mockRepo})
	require.NoError(t, err)
	return o, mockRepo
}

func strPtr(s string) *string { return &s }

func TestResolve_Defaults(t *testing.T) {
	o, mockRepo := newOrchestrator(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		Get(ctx, prefsrepo.GetInput{}).
		Return(&prefsrepo.GetOutput{}, nil)

	output, err := o.Resolve(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, "", output.Preferences.Search)
	assert.Equal(t, "en", output.Preferences.Language)
	assert.Equal(t, "lang=en", output.CanonicalQuery)
}

func TestResolve_ParamBeatsStore(t *testing.T) {
	o, mockRepo := newOrchestrator(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		Get(ctx, prefsrepo.GetInput{}).
		Return(&prefsrepo.GetOutput{Search: "bulba", Language: "de"}, nil)

	output, err := o.Resolve(ctx, &preferences.ResolveInput{
		Search:   strPtr("pika"),
		Language: strPtr("fr"),
	})
	require.NoError(t, err)

	assert.Equal(t, "pika", output.Preferences.Search)
	assert.Equal(t, "fr", output.Preferences.Language)
	assert.Equal(t, "lang=fr&q=pika", output.CanonicalQuery)
}

func TestResolve_StoreBeatsDefault(t *testing.T) {
	o, mockRepo := newOrchestrator(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		Get(ctx, prefsrepo.GetInput{}).
		Return(&prefsrepo.GetOutput{Search: "char", Language: "ja"}, nil)

	output, err := o.Resolve(ctx, &preferences.ResolveInput{})
	require.NoError(t, err)

	assert.Equal(t, "char", output.Preferences.Search)
	assert.Equal(t, "ja", output.Preferences.Language)
}

func TestResolve_InvalidStoredLanguage(t *testing.T) {
	o, mockRepo := newOrchestrator(t)
	ctx := context.Background()

	// A corrupt stored code is treated as absent, not an error.
	mockRepo.EXPECT().
		Get(ctx, prefsrepo.GetInput{}).
		Return(&prefsrepo.GetOutput{Language: "xx"}, nil)

	output, err := o.Resolve(ctx, &preferences.ResolveInput{})
	require.NoError(t, err)
	assert.Equal(t, "en", output.Preferences.Language)
}

func TestResolve_InvalidParamFallsToStore(t *testing.T) {
	o, mockRepo := newOrchestrator(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		Get(ctx, prefsrepo.GetInput{}).
		Return(&prefsrepo.GetOutput{Language: "es"}, nil)

	output, err := o.Resolve(ctx, &preferences.ResolveInput{Language: strPtr("zz")})
	require.NoError(t, err)
	assert.Equal(t, "es", output.Preferences.Language)
}

func TestResolve_EmptySearchParamIsExplicit(t *testing.T) {
	o, mockRepo := newOrchestrator(t)
	ctx := context.Background()

	// An explicit empty q clears the stored search rather than restoring it.
	mockRepo.EXPECT().
		Get(ctx, prefsrepo.GetInput{}).
		Return(&prefsrepo.GetOutput{Search: "stored"}, nil)

	output, err := o.Resolve(ctx, &preferences.ResolveInput{Search: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "", output.Preferences.Search)
	assert.Equal(t, "lang=en", output.CanonicalQuery)
}

func TestResolve_StoreFailureDegradesToDefaults(t *testing.T) {
	o, mockRepo := newOrchestrator(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		Get(ctx, prefsrepo.GetInput{}).
		Return(nil, errors.Internal("redis connection refused"))

	output, err := o.Resolve(ctx, &preferences.ResolveInput{})
	require.NoError(t, err)
	assert.Equal(t, "", output.Preferences.Search)
	assert.Equal(t, "en", output.Preferences.Language)
}

func TestUpdateSearch(t *testing.T) {
	o, mockRepo := newOrchestrator(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		SetSearch(ctx, prefsrepo.SetSearchInput{Search: "mew"}).
		Return(&prefsrepo.SetSearchOutput{}, nil)
	mockRepo.EXPECT().
		Get(ctx, prefsrepo.GetInput{}).
		Return(&prefsrepo.GetOutput{Search: "mew", Language: "fr"}, nil)

	output, err := o.UpdateSearch(ctx, &preferences.UpdateSearchInput{Search: "mew"})
	require.NoError(t, err)

	assert.Equal(t, "mew", output.Preferences.Search)
	assert.Equal(t, "fr", output.Preferences.Language)
	assert.Equal(t, "lang=fr&q=mew", output.CanonicalQuery)
}

func TestUpdateSearch_PersistFailure(t *testing.T) {
	o, mockRepo := newOrchestrator(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		SetSearch(ctx, prefsrepo.SetSearchInput{Search: "mew"}).
		Return(nil, errors.Internal("redis connection refused"))

	_, err := o.UpdateSearch(ctx, &preferences.UpdateSearchInput{Search: "mew"})
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))
}

func TestUpdateLanguage(t *testing.T) {
	o, mockRepo := newOrchestrator(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		SetLanguage(ctx, prefsrepo.SetLanguageInput{Language: "ja"}).
		Return(&prefsrepo.SetLanguageOutput{}, nil)
	mockRepo.EXPECT().
		Get(ctx, prefsrepo.GetInput{}).
		Return(&prefsrepo.GetOutput{Search: "pika", Language: "ja"}, nil)

	output, err := o.UpdateLanguage(ctx, &preferences.UpdateLanguageInput{Language: "ja"})
	require.NoError(t, err)

	assert.Equal(t, "ja", output.Preferences.Language)
	assert.Equal(t, "lang=ja&q=pika", output.CanonicalQuery)
}

func TestUpdateLanguage_RejectsUnknownCode(t *testing.T) {
	o, _ := newOrchestrator(t)

	_, err := o.UpdateLanguage(context.Background(), &preferences.UpdateLanguageInput{Language: "pt"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestUpdateLanguage_CaseSensitive(t *testing.T) {
	o, _ := newOrchestrator(t)

	// The selection set is exact lowercase codes.
	_, err := o.UpdateLanguage(context.Background(), &preferences.UpdateLanguageInput{Language: "EN"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
