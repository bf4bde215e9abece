package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	redisclient "github.com/marketsync/seller-hub/cmd/redis"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	AcquireLock(ctx context.Context, name string, ttl time.Duration) (string, bool, error)
	ReleaseLock(ctx context.Context, name, token string) error
}

type redis struct {
	// *redis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

// AcquireLock takes a named lock via SETNX. It returns the owner token
// and whether the lock was acquired. With no Redis configured the lock
// always succeeds: single-instance deployments then rely on the
// scheduler's in-process singleton mode alone.
func (r *redis) AcquireLock(ctx context.Context, name string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	client := redisclient.Get()
	if client == nil {
		return token, true, nil
	}
	key := "lock:" + name
	ok, err := client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return "", false, err
	}
	return token, ok, nil
}

// releaseScript compares and deletes in one step, so a lock that expires
// mid-release cannot take another instance's lock with it.
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`

// ReleaseLock frees a named lock if it is still owned by token.
func (r *redis) ReleaseLock(ctx context.Context, name, token string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "lock:" + name
	return client.Eval(ctx, releaseScript, []string{key}, token).Err()
}
