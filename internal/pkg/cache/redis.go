// Package cache provides the seen-event guard for webhook redeliveries. It is
// a best-effort cache, not a system of record: the bridge stays correct with
// no guard at all, the guard only suppresses duplicate Store postings while
// its TTL lasts.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type SeenStore interface {
	// MarkSeen records the key and reports whether this call was the first to
	// do so. Redeliveries of an already-recorded event return false.
	MarkSeen(ctx context.Context, key string, ttl time.Duration) (first bool, err error)

	// Forget drops the key so a later delivery is treated as first again.
	// Called when the work behind a marked key ultimately failed.
	Forget(ctx context.Context, key string) error
}

type redisSeenStore struct {
	client      *redis.Client
	serviceName string
}

func NewRedisSeenStore(addr, serviceName string) SeenStore {
	return &redisSeenStore{
		client:      redis.NewClient(&redis.Options{Addr: addr}),
		serviceName: serviceName,
	}
}

func (r *redisSeenStore) MarkSeen(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, r.namespaced(key), 1, ttl).Result()
}

func (r *redisSeenStore) Forget(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.namespaced(key)).Err()
}

func (r *redisSeenStore) namespaced(key string) string {
	return fmt.Sprintf("%s:webhook:%s", r.serviceName, key)
}
