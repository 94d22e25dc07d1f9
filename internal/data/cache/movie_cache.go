package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"moviebooking/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const allMoviesKey = "moviebooking:movies:all"

// MovieCache keeps the full movie listing. Anything that changes a movie
// row calls Invalidate.
type MovieCache interface {
	GetAll(ctx context.Context) ([]*entity.Movie, bool)
	SetAll(ctx context.Context, movies []*entity.Movie)
	Invalidate(ctx context.Context)
}

type redisMovieCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	log    *zap.Logger
}

// NewMovieCache returns a Redis backed cache, or a no-op cache when client
// is nil (Redis not configured or unreachable at startup).
func NewMovieCache(client redis.UniversalClient, ttl time.Duration, log *zap.Logger) MovieCache {
	if client == nil {
		return noopMovieCache{}
	}
	return &redisMovieCache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("cache", "movie")),
	}
}

func (c *redisMovieCache) GetAll(ctx context.Context) ([]*entity.Movie, bool) {
	raw, err := c.client.Get(ctx, allMoviesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.log.Warn("Cache read failed", zap.Error(err))
		return nil, false
	}

	var movies []*entity.Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		c.log.Warn("Cache entry corrupt, dropping", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}

	return movies, true
}

func (c *redisMovieCache) SetAll(ctx context.Context, movies []*entity.Movie) {
	raw, err := json.Marshal(movies)
	if err != nil {
		c.log.Warn("Cache encode failed", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, allMoviesKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn("Cache write failed", zap.Error(err))
	}
}

func (c *redisMovieCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, allMoviesKey).Err(); err != nil {
		c.log.Warn("Cache invalidate failed", zap.Error(err))
	}
}

type noopMovieCache struct{}

func (noopMovieCache) GetAll(context.Context) ([]*entity.Movie, bool) { return nil, false }
func (noopMovieCache) SetAll(context.Context, []*entity.Movie)       {}
func (noopMovieCache) Invalidate(context.Context)                    {}
