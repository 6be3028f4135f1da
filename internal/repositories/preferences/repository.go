// Package preferences defines the interface for user preference persistence
package preferences

//go:generate mockgen -destination=mock/mock_repository.go -package=preferencesmock github.com/pokeview/pokedex-api/internal/repositories/preferences Repository

import (
	"context"
)

// Repository persists the two view preferences: search text and language
// code. Values are plain strings, last-write-wins, single session writer.
type Repository interface {
	// Get retrieves the stored preferences. Keys that were never written
	// come back as empty strings, not errors.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// SetSearch overwrites the stored search text. Any string is accepted,
	// including empty.
	SetSearch(ctx context.Context, input SetSearchInput) (*SetSearchOutput, error)

	// SetLanguage overwrites the stored language code. The repository does
	// not validate the code; callers validate before writing.
	SetLanguage(ctx context.Context, input SetLanguageInput) (*SetLanguageOutput, error)
}

// GetInput defines the input for reading preferences
type GetInput struct{}

// GetOutput defines the output for reading preferences
type GetOutput struct {
	Search   string
	Language string
}

// SetSearchInput defines the input for storing the search text
type SetSearchInput struct {
	Search string
}

// SetSearchOutput defines the output for storing the search text
type SetSearchOutput struct{}

// SetLanguageInput defines the input for storing the language code
type SetLanguageInput struct {
	Language string
}

// SetLanguageOutput defines the output for storing the language code
type SetLanguageOutput struct{}
