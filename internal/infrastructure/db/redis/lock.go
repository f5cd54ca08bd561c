package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

const (
	lockTTL       = 10 * time.Second
	lockRetryWait = 50 * time.Millisecond
	lockMaxWait   = 3 * time.Second
)

// releaseScript deletes the lock only when it still holds our token, so an
// expired lock re-acquired by another caller is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// TransitionLock provides per-applicant mutual exclusion backed by Redis.
// Key format: lock:applicant:<applicant_id>
type TransitionLock struct {
	client *redis.Client
}

// NewTransitionLock creates a TransitionLock wrapping the given Redis client.
func NewTransitionLock(client *redis.Client) *TransitionLock {
	return &TransitionLock{client: client}
}

// Acquire blocks until the per-applicant lock is held, ctx is done, or the
// wait budget is exhausted. The returned func releases the lock.
func (l *TransitionLock) Acquire(ctx context.Context, key string) (func(), error) {
	lockKey := "lock:applicant:" + key
	token := uuid.NewString()

	deadline := time.Now().Add(lockMaxWait)
	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, lockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = releaseScript.Run(releaseCtx, l.client, []string{lockKey}, token).Err()
			}, nil
		}

		if time.Now().After(deadline) {
			return nil, domain.ErrLockNotAcquired
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryWait):
		}
	}
}
