// File: utils/lock.go
package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// releaseScript deletes the lock key only if it still belongs to the caller.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// EmployeeLock is a Redis mutex serializing booking admission per employee.
// Two concurrent booking attempts for the same employee contend on the same
// key; the loser waits or gives up.
type EmployeeLock struct {
	client *redis.Client
	key    string
	owner  string
	ttl    time.Duration
}

// NewEmployeeLock builds a lock handle for the given employee.
func NewEmployeeLock(client *redis.Client, employeeID string, ttl time.Duration) *EmployeeLock {
	return &EmployeeLock{
		client: client,
		key:    "booking:lock:" + employeeID,
		owner:  uuid.New().String(),
		ttl:    ttl,
	}
}

// Acquire takes the lock, retrying until the context expires.
func (l *EmployeeLock) Acquire(ctx context.Context) error {
	for {
		ok, err := l.client.SetNX(ctx, l.key, l.owner, l.ttl).Result()
		if err != nil {
			return fmt.Errorf("failed to acquire booking lock %s: %w", l.key, err)
		}
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("timed out waiting for booking lock %s: %w", l.key, ctx.Err())
		case <-time.After(50 * time.Millisecond):
		}
	}
}

// Release frees the lock if this handle still owns it. Expired locks are left
// alone so a later holder is never clobbered.
func (l *EmployeeLock) Release(ctx context.Context) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.key}, l.owner).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("failed to release booking lock %s: %w", l.key, err)
	}
	return nil
}
