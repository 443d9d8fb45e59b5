package runlock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"gondola-rental/internal/domain"
)

const keyPrefix = "gondola:batch-lock:"

// ErrLockHeld is returned when another run of the same job holds the lease.
var ErrLockHeld = errors.New("batch run already in progress")

// ReleaseFunc gives the lease back. It is safe to call after the lease expired.
type ReleaseFunc func(ctx context.Context) error

type Locker interface {
	Acquire(ctx context.Context, job domain.JobName) (ReleaseFunc, error)
}

type lockClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	redis.Scripter
}

// releaseScript deletes the key only while it still holds our token, so an
// expired lease that was re-acquired by another run is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLocker struct {
	client lockClient
	ttl    time.Duration
}

// NewLocker returns a Redis lease locker, or a no-op locker when client is nil.
func NewLocker(client *redis.Client, ttl time.Duration) Locker {
	if client == nil {
		return noopLocker{}
	}
	return newRedisLocker(client, ttl)
}

func newRedisLocker(client lockClient, ttl time.Duration) *redisLocker {
	return &redisLocker{client: client, ttl: ttl}
}

func (l *redisLocker) Acquire(ctx context.Context, job domain.JobName) (ReleaseFunc, error) {
	key := keyPrefix + string(job)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lease for %s: %w", job, err)
	}
	if !ok {
		return nil, ErrLockHeld
	}

	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to release lease for %s: %w", job, err)
		}
		return nil
	}, nil
}

type noopLocker struct{}

func (noopLocker) Acquire(ctx context.Context, job domain.JobName) (ReleaseFunc, error) {
	return func(context.Context) error { return nil }, nil
}
