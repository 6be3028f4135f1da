// Package pokeapi is the remote data gateway for the upstream PokeAPI.
// It issues cached, deduplicated reads for the three resource kinds the
// service consumes: the roster page, per-entry details, and per-entry
// localized name sets.
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/pokeview/pokedex-api/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/pokeview/pokedex-api/internal/entities/pokedex"
	"github.com/pokeview/pokedex-api/internal/errors"
	"github.com/pokeview/pokedex-api/internal/metrics"
)

// Resource kind labels, also used as cache key prefixes and metric labels.
const (
	resourceRoster  = "roster"
	resourceDetail  = "pokemon"
	resourceNameSet = "species"
)

// Client defines the interface for upstream catalog reads
type Client interface {
	// GetRoster fetches one page of the catalog listing
	GetRoster(ctx context.Context, limit, offset int) (*pokedex.RosterPage, error)

	// GetDetail fetches the full attributes of one catalog item
	GetDetail(ctx context.Context, id int) (*pokedex.Detail, error)

	// GetNameSet fetches the localized names of one catalog item
	GetNameSet(ctx context.Context, id int) (*pokedex.NameSet, error)
}

// Config contains configuration options for the gateway.
type Config struct {
	// BaseURL for the upstream API (optional, defaults to https://pokeapi.co/api/v2)
	BaseURL string
	// HTTPTimeout for upstream requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL is the staleness window (optional, defaults to 1 hour)
	CacheTTL time.Duration
	// CacheSize bounds the number of cached responses (optional, defaults to 2048)
	CacheSize int
	// HTTPClient overrides the transport, mainly for tests
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://pokeapi.co/api/v2"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = time.Hour
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = 2048
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
	cache      *responseCache
}

// New creates a new gateway client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	cache, err := newResponseCache(cfg.CacheSize, cfg.CacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create response cache: %w", err)
	}

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		cache:      cache,
	}, nil
}

func (c *client) GetRoster(ctx context.Context, limit, offset int) (*pokedex.RosterPage, error) {
	key := fmt.Sprintf("%s:%d:%d", resourceRoster, limit, offset)
	value, err := c.cache.get(ctx, resourceRoster, key, func(ctx context.Context) (any, error) {
		url := fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", c.baseURL, limit, offset)
		var resp listResponse
		if err := c.fetchJSON(ctx, resourceRoster, url, &resp); err != nil {
			return nil, err
		}
		return convertList(&resp), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch roster")
	}
	return value.(*pokedex.RosterPage), nil
}

func (c *client) GetDetail(ctx context.Context, id int) (*pokedex.Detail, error) {
	key := resourceDetail + ":" + strconv.Itoa(id)
	value, err := c.cache.get(ctx, resourceDetail, key, func(ctx context.Context) (any, error) {
		url := fmt.Sprintf("%s/pokemon/%d", c.baseURL, id)
		var resp pokemonResponse
		if err := c.fetchJSON(ctx, resourceDetail, url, &resp); err != nil {
			return nil, err
		}
		return convertPokemon(&resp), nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch pokemon %d", id)
	}
	return value.(*pokedex.Detail), nil
}

func (c *client) GetNameSet(ctx context.Context, id int) (*pokedex.NameSet, error) {
	key := resourceNameSet + ":" + strconv.Itoa(id)
	value, err := c.cache.get(ctx, resourceNameSet, key, func(ctx context.Context) (any, error) {
		url := fmt.Sprintf("%s/pokemon-species/%d", c.baseURL, id)
		var resp speciesResponse
		if err := c.fetchJSON(ctx, resourceNameSet, url, &resp); err != nil {
			return nil, err
		}
		return convertSpecies(&resp), nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch species %d", id)
	}
	return value.(*pokedex.NameSet), nil
}

// fetchJSON performs one upstream GET and decodes the body. A 404 maps to
// NotFound; any other non-success status or transport failure maps to
// Unavailable so callers can surface it per-query without crashing siblings.
func (c *client) fetchJSON(ctx context.Context, resource, url string, out any) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, "error").Inc()
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "upstream request failed: %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.UpstreamRequestsTotal.WithLabelValues(resource, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.UpstreamRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.NotFoundf("upstream has no record at %s", url)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return errors.Unavailablef("upstream returned status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read upstream response")
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to decode upstream response")
	}
	return nil
}
