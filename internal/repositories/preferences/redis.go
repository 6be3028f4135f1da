package preferences

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/pokeview/pokedex-api/internal/errors"
	redisclient "github.com/pokeview/pokedex-api/internal/redis"
)

const (
	searchKey   = "pokedex:pref:search"
	languageKey = "pokedex:pref:lang"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig holds the dependencies for the Redis-backed repository
type RedisConfig struct {
	Client redisclient.Client
}

// NewRedis creates a new Redis-backed preference repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	values, err := r.client.MGet(ctx, searchKey, languageKey).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrap(err, "failed to read preferences")
	}

	out := &GetOutput{}
	if len(values) > 0 {
		if s, ok := values[0].(string); ok {
			out.Search = s
		}
	}
	if len(values) > 1 {
		if l, ok := values[1].(string); ok {
			out.Language = l
		}
	}
	return out, nil
}

func (r *redisRepository) SetSearch(ctx context.Context, input SetSearchInput) (*SetSearchOutput, error) {
	if err := r.client.Set(ctx, searchKey, input.Search, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store search preference")
	}
	return &SetSearchOutput{}, nil
}

func (r *redisRepository) SetLanguage(ctx context.Context, input SetLanguageInput) (*SetLanguageOutput, error) {
	if err := r.client.Set(ctx, languageKey, input.Language, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store language preference")
	}
	return &SetLanguageOutput{}, nil
}
