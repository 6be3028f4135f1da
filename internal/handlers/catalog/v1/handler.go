// Package v1 exposes the catalog and preference operations over HTTP JSON.
package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pokeview/pokedex-api/internal/errors"
	catalogorc "github.com/pokeview/pokedex-api/internal/orchestrators/catalog"
	prefsorc "github.com/pokeview/pokedex-api/internal/orchestrators/preferences"
)

// Handler serves the v1 catalog API
type Handler struct {
	catalogService catalogorc.Service
	prefsService   prefsorc.Service
}

// Config holds the dependencies for the handler
type Config struct {
	CatalogService     catalogorc.Service
	PreferencesService prefsorc.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogService == nil {
		vb.RequiredField("CatalogService")
	}
	if c.PreferencesService == nil {
		vb.RequiredField("PreferencesService")
	}

	return vb.Build()
}

// NewHandler creates a new v1 handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		catalogService: cfg.CatalogService,
		prefsService:   cfg.PreferencesService,
	}, nil
}

// RegisterRoutes mounts the v1 routes on the given router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/pokemon", h.handleListPokemon)
		r.Get("/pokemon/{id}", h.handleGetPokemon)
		r.Get("/types", h.handleListTypes)
		r.Get("/preferences", h.handleGetPreferences)
		r.Put("/preferences", h.handlePutPreferences)
	})
}

// listResponse is the root catalog view: the visible cards plus everything
// the client needs for the result indicator, the spinner decision, and the
// address-bar replace.
type listResponse struct {
	Pokemon        any    `json:"pokemon"`
	TotalMatches   int    `json:"total_matches"`
	Pending        int    `json:"pending"`
	Window         int    `json:"window"`
	Language       string `json:"language"`
	Search         string `json:"search"`
	CanonicalQuery string `json:"canonical_query"`
}

func (h *Handler) handleListPokemon(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	// Effective search and language come from the preference resolution:
	// explicit parameter, then store, then default.
	resolved, err := h.prefsService.Resolve(r.Context(), &prefsorc.ResolveInput{
		Search:   optionalParam(params, "q"),
		Language: optionalParam(params, "lang"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	input := &catalogorc.ListEntriesInput{
		Query:    resolved.Preferences.Search,
		Language: resolved.Preferences.Language,
	}
	if raw := params.Get("types"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				input.Tags = append(input.Tags, tag)
			}
		}
	}

	input.Limit, err = intParam(params.Get("limit"), "limit")
	if err == nil {
		input.Offset, err = intParam(params.Get("offset"), "offset")
	}
	if err == nil {
		input.Window, err = intParam(params.Get("window"), "window")
	}
	if err != nil {
		respondError(w, err)
		return
	}

	output, err := h.catalogService.ListEntries(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, listResponse{
		Pokemon:        output.Cards,
		TotalMatches:   output.TotalMatches,
		Pending:        output.Pending,
		Window:         output.Window,
		Language:       resolved.Preferences.Language,
		Search:         resolved.Preferences.Search,
		CanonicalQuery: resolved.CanonicalQuery,
	})
}

func (h *Handler) handleGetPokemon(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, errors.InvalidArgumentf("invalid pokemon id: %q", chi.URLParam(r, "id")))
		return
	}

	params := r.URL.Query()
	input := &catalogorc.GetEntryInput{
		ID:       id,
		Language: params.Get("lang"),
	}
	input.MovesPage, err = intParam(params.Get("moves_page"), "moves_page")
	if err == nil {
		input.MovesPageSize, err = intParam(params.Get("moves_page_size"), "moves_page_size")
	}
	if err != nil {
		respondError(w, err)
		return
	}

	output, err := h.catalogService.GetEntry(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Entry)
}

func (h *Handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	output, err := h.catalogService.ListTypes(r.Context(), &catalogorc.ListTypesInput{
		Language: r.URL.Query().Get("lang"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"types": output.Types})
}

// preferencesResponse mirrors a resolved preference state back to the client.
type preferencesResponse struct {
	Search         string `json:"search"`
	Language       string `json:"language"`
	CanonicalQuery string `json:"canonical_query"`
}

func (h *Handler) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	output, err := h.prefsService.Resolve(r.Context(), &prefsorc.ResolveInput{
		Search:   optionalParam(params, "q"),
		Language: optionalParam(params, "lang"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, preferencesResponse{
		Search:         output.Preferences.Search,
		Language:       output.Preferences.Language,
		CanonicalQuery: output.CanonicalQuery,
	})
}

// putPreferencesRequest carries the preference updates. Nil fields are left
// untouched.
type putPreferencesRequest struct {
	Search   *string `json:"search"`
	Language *string `json:"language"`
}

func (h *Handler) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	var req putPreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.InvalidArgument("invalid request body"))
		return
	}
	if req.Search == nil && req.Language == nil {
		respondError(w, errors.InvalidArgument("at least one of search or language is required"))
		return
	}

	// Language first so a rejected code leaves the search untouched too.
	if req.Language != nil {
		if _, err := h.prefsService.UpdateLanguage(r.Context(), &prefsorc.UpdateLanguageInput{
			Language: *req.Language,
		}); err != nil {
			respondError(w, err)
			return
		}
	}
	if req.Search != nil {
		if _, err := h.prefsService.UpdateSearch(r.Context(), &prefsorc.UpdateSearchInput{
			Search: *req.Search,
		}); err != nil {
			respondError(w, err)
			return
		}
	}

	output, err := h.prefsService.Resolve(r.Context(), &prefsorc.ResolveInput{})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, preferencesResponse{
		Search:         output.Preferences.Search,
		Language:       output.Preferences.Language,
		CanonicalQuery: output.CanonicalQuery,
	})
}

func optionalParam(params map[string][]string, key string) *string {
	if vals, ok := params[key]; ok && len(vals) > 0 {
		return &vals[0]
	}
	return nil
}

func intParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.InvalidArgumentf("invalid %s: %q", name, raw)
	}
	return v, nil
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	respondJSON(w, code.HTTPStatus(), map[string]string{
		"code":  string(code),
		"error": errors.GetMessage(err),
	})
}
