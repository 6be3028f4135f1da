// Package preferences implements the preference synchronization orchestrator.
// It keeps the search text and language selection consistent between the
// request parameters, the persisted store, and the hard-coded defaults, and
// produces the canonical root-view query string a client mirrors into the
// address bar (history replace, never push).
package preferences

//go:generate mockgen -destination=mock/mock_service.go -package=preferencesorcmock github.com/pokeview/pokedex-api/internal/orchestrators/preferences Service

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/pokeview/pokedex-api/internal/catalog"
	"github.com/pokeview/pokedex-api/internal/entities/pokedex"
	"github.com/pokeview/pokedex-api/internal/errors"
	prefsrepo "github.com/pokeview/pokedex-api/internal/repositories/preferences"
)

// DefaultSearch is the hard-coded search default.
const DefaultSearch = ""

// Service defines the interface for preference synchronization
type Service interface {
	// Resolve runs the init logic: explicit request parameter, then the
	// persisted store, then the hard-coded default. A shared link visited
	// mid-session re-runs the same logic, so Resolve also covers external
	// address changes.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// UpdateSearch persists a new search text and returns the updated
	// preferences with their canonical query string.
	UpdateSearch(ctx context.Context, input *UpdateSearchInput) (*UpdateSearchOutput, error)

	// UpdateLanguage persists a new language selection. Codes outside the
	// fixed set are rejected.
	UpdateLanguage(ctx context.Context, input *UpdateLanguageInput) (*UpdateLanguageOutput, error)
}

// Config holds the dependencies for the preferences orchestrator
type Config struct {
	Repository prefsrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}

	return vb.Build()
}

type orchestrator struct {
	repo prefsrepo.Repository
}

// NewOrchestrator creates a new preferences orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo: cfg.Repository,
	}, nil
}

func (o *orchestrator) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		input = &ResolveInput{}
	}

	// A store failure degrades to defaults; preference resolution is never
	// surfaced as an error to the user.
	stored, err := o.repo.Get(ctx, prefsrepo.GetInput{})
	if err != nil {
		slog.Warn("preference store unavailable, using defaults", "error", err)
		stored = &prefsrepo.GetOutput{}
	}

	prefs := pokedex.Preferences{
		Search:   DefaultSearch,
		Language: catalog.DefaultLanguage,
	}

	if input.Search != nil {
		// Search text has no validation; any string is accepted.
		prefs.Search = *input.Search
	} else {
		prefs.Search = stored.Search
	}

	// Invalid language codes are treated as absent and fall through to the
	// next source.
	switch {
	case input.Language != nil && catalog.IsValidLanguage(*input.Language):
		prefs.Language = *input.Language
	case catalog.IsValidLanguage(stored.Language):
		prefs.Language = stored.Language
	}

	return &ResolveOutput{
		Preferences:    prefs,
		CanonicalQuery: canonicalQuery(prefs),
	}, nil
}

func (o *orchestrator) UpdateSearch(ctx context.Context, input *UpdateSearchInput) (*UpdateSearchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.repo.SetSearch(ctx, prefsrepo.SetSearchInput{Search: input.Search}); err != nil {
		return nil, errors.Wrap(err, "failed to persist search preference")
	}

	resolved, err := o.Resolve(ctx, &ResolveInput{Search: &input.Search})
	if err != nil {
		return nil, err
	}

	return &UpdateSearchOutput{
		Preferences:    resolved.Preferences,
		CanonicalQuery: resolved.CanonicalQuery,
	}, nil
}

func (o *orchestrator) UpdateLanguage(ctx context.Context, input *UpdateLanguageInput) (*UpdateLanguageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !catalog.IsValidLanguage(input.Language) {
		return nil, errors.InvalidArgumentf("unsupported language code: %q", input.Language)
	}

	if _, err := o.repo.SetLanguage(ctx, prefsrepo.SetLanguageInput{Language: input.Language}); err != nil {
		return nil, errors.Wrap(err, "failed to persist language preference")
	}

	resolved, err := o.Resolve(ctx, &ResolveInput{Language: &input.Language})
	if err != nil {
		return nil, err
	}

	return &UpdateLanguageOutput{
		Preferences:    resolved.Preferences,
		CanonicalQuery: resolved.CanonicalQuery,
	}, nil
}

// canonicalQuery renders the root-view query parameters for a preference
// state: q only when non-empty, lang always. Detail views never carry these
// parameters.
func canonicalQuery(prefs pokedex.Preferences) string {
	params := url.Values{}
	if prefs.Search != "" {
		params.Set("q", prefs.Search)
	}
	params.Set("lang", prefs.Language)
	return params.Encode()
}
