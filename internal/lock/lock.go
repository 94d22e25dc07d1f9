// Package lock serialises work per key. Booking uses one key per
// (movie, theatre) pair so the seat check and the capacity write never
// interleave for the same screening.
package lock

import (
	"context"
	"errors"
	"sync"
)

var ErrLockTimeout = errors.New("lock: could not acquire before deadline")

// Unlock releases a held lock. Calling it more than once is a no-op.
type Unlock func()

type Locker interface {
	Lock(ctx context.Context, key string) (Unlock, error)
}

// Key builds the lock key for a screening.
func Key(movieName, theatreName string) string {
	return "booking:" + movieName + "|" + theatreName
}

type keyedMutex struct {
	mu   chan struct{}
	refs int
}

// LocalLocker is an in-process keyed mutex. Entries are dropped once no
// goroutine holds or waits on them.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*keyedMutex
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*keyedMutex)}
}

func (l *LocalLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	l.mu.Lock()
	km, ok := l.locks[key]
	if !ok {
		km = &keyedMutex{mu: make(chan struct{}, 1)}
		l.locks[key] = km
	}
	km.refs++
	l.mu.Unlock()

	select {
	case km.mu <- struct{}{}:
	case <-ctx.Done():
		l.release(key, km)
		return nil, errors.Join(ErrLockTimeout, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-km.mu
			l.release(key, km)
		})
	}, nil
}

func (l *LocalLocker) release(key string, km *keyedMutex) {
	l.mu.Lock()
	defer l.mu.Unlock()

	km.refs--
	if km.refs == 0 {
		delete(l.locks, key)
	}
}

// size is used by tests
func (l *LocalLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
