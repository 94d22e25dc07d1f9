package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultLockTTL   = 10 * time.Second
	defaultRetryWait = 25 * time.Millisecond
)

// releaseScript deletes the key only if it still holds our token, so an
// expired lock taken over by another instance is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker shares booking locks between service instances using
// SET NX PX with a random token per holder.
type RedisLocker struct {
	client    redis.UniversalClient
	ttl       time.Duration
	retryWait time.Duration
	log       *zap.Logger
}

func NewRedisLocker(client redis.UniversalClient, log *zap.Logger) *RedisLocker {
	return &RedisLocker{
		client:    client,
		ttl:       defaultLockTTL,
		retryWait: defaultRetryWait,
		log:       log.With(zap.String("component", "redis-locker")),
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			if ctx.Err() != nil {
				return nil, errors.Join(ErrLockTimeout, ctx.Err())
			}
			l.log.Error("Failed to acquire lock", zap.Error(err), zap.String("key", key))
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-time.After(l.retryWait):
		case <-ctx.Done():
			return nil, errors.Join(ErrLockTimeout, ctx.Err())
		}
	}

	acquired := time.Now()
	var once sync.Once
	return func() {
		once.Do(func() {
			held := time.Since(acquired)

			// release even if the request context is already cancelled
			relCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			released, err := releaseScript.Run(relCtx, l.client, []string{key}, token).Int()
			if err != nil && !errors.Is(err, redis.Nil) {
				l.log.Warn("Failed to release lock", zap.Error(err), zap.String("key", key))
				return
			}

			// 0 means the key expired (and may belong to someone else now)
			if released == 0 || held > l.ttl {
				l.log.Warn("Lock held past its TTL",
					zap.String("key", key),
					zap.Duration("held", held),
					zap.Duration("ttl", l.ttl),
				)
			}
		})
	}, nil
}
