package responses

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokedex-tui/internal/errors"
	redisclient "github.com/KirkDiggler/pokedex-tui/internal/redis"
)

const (
	// Key pattern: pokeapi:{resource}:{key}
	redisKeyPrefix = "pokeapi:"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	// TTL for stored documents, zero keeps them forever
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedis creates a Redis backed document repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.Resource, input.Key); err != nil {
		return nil, err
	}

	body, err := r.client.Get(ctx, r.buildKey(input.Resource, input.Key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("%s %q not stored", input.Resource, input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get %s %q from Redis", input.Resource, input.Key)
	}

	return &GetOutput{Body: body}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validateKey(input.Resource, input.Key); err != nil {
		return nil, err
	}
	if len(input.Body) == 0 {
		return nil, errors.InvalidArgument(errBodyEmpty)
	}

	err := r.client.Set(ctx, r.buildKey(input.Resource, input.Key), input.Body, r.ttl).Err()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store %s %q in Redis", input.Resource, input.Key)
	}

	return &PutOutput{}, nil
}

func (r *redisRepository) buildKey(resource, key string) string {
	return redisKeyPrefix + documentKey(resource, key)
}
