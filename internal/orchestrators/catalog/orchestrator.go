// Package catalog implements the catalog orchestrator: it combines the
// remote data gateway with the pure view logic to produce filtered,
// language-aware catalog and detail views.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/pokeview/pokedex-api/internal/orchestrators/catalog Service

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	catalogview "github.com/pokeview/pokedex-api/internal/catalog"
	"github.com/pokeview/pokedex-api/internal/clients/pokeapi"
	"github.com/pokeview/pokedex-api/internal/entities/pokedex"
	"github.com/pokeview/pokedex-api/internal/errors"
)

// prefetchConcurrency bounds how many per-entry fetches run at once while
// hydrating the roster.
const prefetchConcurrency = 8

// Service defines the interface for catalog view operations
type Service interface {
	// ListEntries returns the filtered, windowed catalog view
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)

	// GetEntry returns the composed detail view for one entry
	GetEntry(ctx context.Context, input *GetEntryInput) (*GetEntryOutput, error)

	// ListTypes returns the category tag descriptors for a language
	ListTypes(ctx context.Context, input *ListTypesInput) (*ListTypesOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	Client pokeapi.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

type orchestrator struct {
	client pokeapi.Client
}

// NewOrchestrator creates a new catalog orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client: cfg.Client,
	}, nil
}

func (o *orchestrator) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	if input == nil {
		input = &ListEntriesInput{}
	}

	limit := input.Limit
	if limit <= 0 {
		limit = catalogview.RosterLimit
	}

	// The roster must arrive before any per-entry fetches; entry ids are
	// derived from it.
	roster, err := o.client.GetRoster(ctx, limit, input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch roster")
	}

	allIDs := make([]int, 0, len(roster.Entries))
	canonicalByID := make(map[int]string, len(roster.Entries))
	for _, entry := range roster.Entries {
		allIDs = append(allIDs, entry.ID)
		canonicalByID[entry.ID] = entry.Name
	}

	records := o.prefetch(ctx, allIDs)

	result := catalogview.ComputeVisible(catalogview.FilterInput{
		AllIDs:            allIDs,
		Query:             input.Query,
		SelectedTags:      input.Tags,
		DetailByID:        records.details,
		NameSetByID:       records.nameSets,
		CanonicalNameByID: canonicalByID,
		Window:            input.Window,
	})

	window := input.Window
	if window <= 0 {
		window = catalogview.VisibleWindow
	}

	out := &ListEntriesOutput{
		Cards:        make([]*catalogview.Card, 0, len(result.VisibleIDs)),
		TotalMatches: result.TotalMatches,
		Window:       window,
	}
	for _, id := range result.VisibleIDs {
		card := catalogview.NewCard(records.details[id], records.nameSets[id], canonicalByID[id], input.Language)
		if card == nil {
			// Withheld until its detail record arrives; never rendered
			// with missing fields.
			out.Pending++
			continue
		}
		out.Cards = append(out.Cards, card)
	}
	return out, nil
}

func (o *orchestrator) GetEntry(ctx context.Context, input *GetEntryInput) (*GetEntryOutput, error) {
	if input == nil || input.ID <= 0 {
		return nil, errors.InvalidArgument("entry id must be a positive integer")
	}

	detail, err := o.client.GetDetail(ctx, input.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("pokemon %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to fetch pokemon %d", input.ID)
	}

	// The name set is best-effort; resolution degrades to the canonical
	// label when it is unavailable.
	nameSet, err := o.client.GetNameSet(ctx, input.ID)
	if err != nil {
		slog.Warn("name set unavailable, falling back to canonical label",
			"pokemon_id", input.ID,
			"error", err)
		nameSet = nil
	}

	imageURL := detail.ImageURL
	if imageURL == "" {
		imageURL = catalogview.SpriteURL(detail.ID)
	}

	badges := make([]catalogview.TypeBadge, 0, len(detail.Types))
	for _, key := range detail.Types {
		badges = append(badges, catalogview.TypeBadge{
			Key:   key,
			Label: catalogview.TypeLabel(key, input.Language),
			Color: catalogview.TypeColor(key),
		})
	}

	moves, movesTotal := catalogview.PaginateMoves(detail.Moves, input.MovesPage, input.MovesPageSize)

	return &GetEntryOutput{
		Entry: &EntryView{
			ID:          detail.ID,
			DisplayName: catalogview.ResolveName(nameSet, input.Language, detail.Name),
			Number:      catalogview.NumberLabel(detail.ID),
			Height:      catalogview.FormatHeight(detail.Height),
			Weight:      catalogview.FormatWeight(detail.Weight),
			Types:       badges,
			ImageURL:    imageURL,
			Moves:       moves,
			MovesTotal:  movesTotal,
			MovesPage:   input.MovesPage,
			MoveLabels:  catalogview.MoveLabelsFor(input.Language),
		},
	}, nil
}

func (o *orchestrator) ListTypes(_ context.Context, input *ListTypesInput) (*ListTypesOutput, error) {
	language := ""
	if input != nil {
		language = input.Language
	}

	types := make([]catalogview.TypeBadge, 0, len(catalogview.TypeKeys))
	for _, key := range catalogview.TypeKeys {
		types = append(types, catalogview.TypeBadge{
			Key:   key,
			Label: catalogview.TypeLabel(key, language),
			Color: catalogview.TypeColor(key),
		})
	}
	return &ListTypesOutput{Types: types}, nil
}

// hydrated holds whatever per-entry records have been fetched so far; both
// maps may be partial.
type hydrated struct {
	details  map[int]*pokedex.Detail
	nameSets map[int]*pokedex.NameSet
}

// prefetch hydrates detail and name-set records for the roster ids. Per-id
// failures are tolerated: the filter recomputes idempotently from whatever
// subset is available, and a failed record never blocks its siblings.
func (o *orchestrator) prefetch(ctx context.Context, ids []int) hydrated {
	records := hydrated{
		details:  make(map[int]*pokedex.Detail, len(ids)),
		nameSets: make(map[int]*pokedex.NameSet, len(ids)),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetchConcurrency)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			detail, err := o.client.GetDetail(gctx, id)
			if err != nil {
				slog.Debug("detail record unavailable", "pokemon_id", id, "error", err)
				detail = nil
			}
			nameSet, err := o.client.GetNameSet(gctx, id)
			if err != nil {
				slog.Debug("name set unavailable", "pokemon_id", id, "error", err)
				nameSet = nil
			}

			mu.Lock()
			defer mu.Unlock()
			if detail != nil {
				records.details[id] = detail
			}
			if nameSet != nil {
				records.nameSets[id] = nameSet
			}
			return nil
		})
	}

	// Workers never return errors; Wait only fences the goroutines.
	_ = g.Wait()
	return records
}
