package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LockOptions represents options for distributed locking.
type LockOptions struct {
	// TTL is the lock expiration time
	TTL time.Duration
	// RetryDelay is the delay between retry attempts
	RetryDelay time.Duration
	// MaxRetries is the maximum number of retry attempts
	MaxRetries int
	// RefreshInterval is the interval for refreshing the lock
	RefreshInterval time.Duration
	// LockNamespace is the namespace for organizing locks
	LockNamespace string
}

// NewLockOptions creates lock options with default values.
func NewLockOptions() *LockOptions {
	return &LockOptions{
		TTL:             30 * time.Second,
		RetryDelay:      100 * time.Millisecond,
		MaxRetries:      10,
		RefreshInterval: 10 * time.Second,
		LockNamespace:   "",
	}
}

// WithTTL sets the lock expiration time.
func (lo *LockOptions) WithTTL(ttl time.Duration) *LockOptions {
	if ttl < 0 {
		panic(fmt.Sprintf("invalid TTL: %v, must be non-negative", ttl))
	}
	lo.TTL = ttl
	return lo
}

// WithRetryDelay sets the delay between retry attempts.
func (lo *LockOptions) WithRetryDelay(delay time.Duration) *LockOptions {
	if delay < 0 {
		panic(fmt.Sprintf("invalid retry delay: %v, must be non-negative", delay))
	}
	lo.RetryDelay = delay
	return lo
}

// WithMaxRetries sets the maximum number of retry attempts.
func (lo *LockOptions) WithMaxRetries(maxRetries int) *LockOptions {
	if maxRetries < 0 {
		panic(fmt.Sprintf("invalid max retries: %d, must be non-negative", maxRetries))
	}
	lo.MaxRetries = maxRetries
	return lo
}

// WithRefreshInterval sets the interval for refreshing the lock.
func (lo *LockOptions) WithRefreshInterval(interval time.Duration) *LockOptions {
	if interval < 0 {
		panic(fmt.Sprintf("invalid refresh interval: %v, must be non-negative", interval))
	}
	lo.RefreshInterval = interval
	return lo
}

// WithLockNamespace sets the namespace for organizing locks.
func (lo *LockOptions) WithLockNamespace(namespace string) *LockOptions {
	lo.LockNamespace = namespace
	return lo
}

// Lock represents a distributed lock backed by a single Redis key.
type Lock struct {
	client *Client
	key    string
	value  string
	opts   *LockOptions
}

// NewLock creates a new distributed lock.
func NewLock(client *Client, key string, opts *LockOptions) *Lock {
	if opts == nil {
		opts = NewLockOptions()
	}
	return &Lock{
		client: client,
		key:    key,
		value:  uuid.New().String(),
		opts:   opts,
	}
}

// NewScheduledTaskLock creates a lock tuned for long-lived scheduled tasks: a
// single acquisition attempt and periodic refresh for the lifetime of the task.
func NewScheduledTaskLock(client *Client, key string, ttl time.Duration, refreshInterval time.Duration, namespace string) *Lock {
	opts := NewLockOptions().
		WithTTL(ttl).
		WithRefreshInterval(refreshInterval).
		WithMaxRetries(0).
		WithLockNamespace(namespace)
	return NewLock(client, key, opts)
}

// TryLock attempts to acquire the lock once.
func (l *Lock) TryLock(ctx context.Context) (bool, error) {
	acquired, err := l.client.GetClient().SetNX(ctx, l.buildLockKey(), l.value, l.opts.TTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	return acquired, nil
}

// Lock acquires the lock, retrying up to MaxRetries times.
func (l *Lock) Lock(ctx context.Context) error {
	for attempt := 0; attempt <= l.opts.MaxRetries; attempt++ {
		acquired, err := l.TryLock(ctx)
		if err != nil {
			return err
		}
		if acquired {
			return nil
		}

		if attempt == l.opts.MaxRetries {
			return fmt.Errorf("failed to acquire lock after %d attempts", l.opts.MaxRetries+1)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.opts.RetryDelay):
		}
	}

	return fmt.Errorf("failed to acquire lock")
}

// Unlock releases the lock. A Lua script guarantees only the holder deletes it.
func (l *Lock) Unlock(ctx context.Context) error {
	script := `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("DEL", KEYS[1])
		else
			return 0
		end
	`

	result, err := l.client.GetClient().Eval(ctx, script, []string{l.buildLockKey()}, l.value).Result()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}

	if result.(int64) == 0 {
		return fmt.Errorf("lock was not held by this client")
	}

	return nil
}

// Refresh extends the lock's TTL if this client still holds it.
func (l *Lock) Refresh(ctx context.Context) error {
	script := `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("EXPIRE", KEYS[1], ARGV[2])
		else
			return 0
		end
	`

	result, err := l.client.GetClient().Eval(ctx, script, []string{l.buildLockKey()}, l.value, int(l.opts.TTL.Seconds())).Result()
	if err != nil {
		return fmt.Errorf("failed to refresh lock: %w", err)
	}

	if result.(int64) == 0 {
		return fmt.Errorf("lock was not held by this client")
	}

	return nil
}

// AutoRefresh refreshes the lock every RefreshInterval until the context is
// canceled. The returned channel yields a single value: nil on clean shutdown,
// or the refresh error that broke the loop.
func (l *Lock) AutoRefresh(ctx context.Context) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		defer close(errChan)
		ticker := time.NewTicker(l.opts.RefreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				errChan <- nil
				return
			case <-ticker.C:
				if err := l.Refresh(ctx); err != nil {
					errChan <- err
					return
				}
			}
		}
	}()

	return errChan
}

// buildLockKey prefixes the key with the lock namespace.
func (l *Lock) buildLockKey() string {
	if l.opts.LockNamespace != "" {
		return fmt.Sprintf("lock:%s:%s", l.opts.LockNamespace, l.key)
	}
	return fmt.Sprintf("lock:%s", l.key)
}
