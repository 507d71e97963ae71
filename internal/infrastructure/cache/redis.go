package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"nexupay/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// Redis wraps a go-redis client used as the webhook idempotency store.
type Redis struct {
	client *redis.Client
}

// Config defines connection parameters for Redis.
type Config struct {
	Addr     string
	Password string
	DB       int
}

var _ interfaces.IIdempotencyStore = (*Redis)(nil)

// New returns a Redis client based on provided configuration.
func New(cfg Config) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// MarkProcessed records the key with a TTL via SETNX. It returns false when
// the key already existed, i.e. the caller is looking at a replay.
func (r *Redis) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	fresh, err := r.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx %s: %w", key, err)
	}
	if !fresh {
		log.Printf("[cache][redis] idempotency hit key=%s", key)
	}
	return fresh, nil
}

// Close releases Redis resources.
func (r *Redis) Close() error {
	return r.client.Close()
}
