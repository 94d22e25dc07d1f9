package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRedisLocker(t *testing.T) (*RedisLocker, *miniredis.Miniredis, *observer.ObservedLogs) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	core, logs := observer.New(zapcore.WarnLevel)
	l := NewRedisLocker(client, zap.New(core))
	l.retryWait = 5 * time.Millisecond
	return l, mr, logs
}

func TestRedisLocker_Contention(t *testing.T) {
	l, mr, _ := newTestRedisLocker(t)
	key := Key("Inception", "Cinepolis")

	unlock, err := l.Lock(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, mr.Exists(key))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, key)
	require.ErrorIs(t, err, ErrLockTimeout)

	unlock()
	assert.False(t, mr.Exists(key))

	again, err := l.Lock(context.Background(), key)
	require.NoError(t, err)
	again()
}

func TestRedisLocker_DifferentKeysDoNotBlock(t *testing.T) {
	l, _, _ := newTestRedisLocker(t)

	a, err := l.Lock(context.Background(), Key("Inception", "Cinepolis"))
	require.NoError(t, err)
	defer a()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	b, err := l.Lock(ctx, Key("Inception", "PVR"))
	require.NoError(t, err)
	b()
}

func TestRedisLocker_SetsTTL(t *testing.T) {
	l, mr, _ := newTestRedisLocker(t)
	key := Key("Inception", "Cinepolis")

	unlock, err := l.Lock(context.Background(), key)
	require.NoError(t, err)
	defer unlock()

	assert.Equal(t, defaultLockTTL, mr.TTL(key))
}

func TestRedisLocker_ExpiredHolderCannotReleaseNewOwner(t *testing.T) {
	l, mr, logs := newTestRedisLocker(t)
	key := Key("Inception", "Cinepolis")

	stale, err := l.Lock(context.Background(), key)
	require.NoError(t, err)

	// stale holder overruns the TTL and another instance takes the key
	mr.FastForward(defaultLockTTL + time.Second)
	require.False(t, mr.Exists(key))

	owner, err := l.Lock(context.Background(), key)
	require.NoError(t, err)
	ownerToken, err := mr.Get(key)
	require.NoError(t, err)

	stale()

	current, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, ownerToken, current)
	assert.Equal(t, 1, logs.FilterMessage("Lock held past its TTL").Len())

	owner()
	assert.False(t, mr.Exists(key))
}

func TestRedisLocker_UnlockTwiceIsNoop(t *testing.T) {
	l, mr, logs := newTestRedisLocker(t)
	key := Key("Inception", "Cinepolis")

	unlock, err := l.Lock(context.Background(), key)
	require.NoError(t, err)

	unlock()
	other, err := l.Lock(context.Background(), key)
	require.NoError(t, err)
	defer other()

	unlock()
	assert.True(t, mr.Exists(key))
	assert.Zero(t, logs.Len())
}
