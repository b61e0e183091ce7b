package repositories

import (
	"CarePoint/database"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

const (
	lockTTL       = 10 * time.Second
	lockRetries   = 3
	lockRetryWait = 2 * time.Second
)

// withLock runs fn under a Redis SetNX lock, retrying acquisition a few
// times before giving up. The lock narrows concurrent-write windows; it is
// not a substitute for a uniqueness constraint.
func withLock(ctx context.Context, lockKey string, fn func() error) error {
	lockValue := uuid.New().String()

	var locked bool
	var err error
	for i := 0; i < lockRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, lockTTL)
		if err == nil && locked {
			break
		}
		if i < lockRetries-1 {
			time.Sleep(lockRetryWait)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	return fn()
}
