package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"fedashop/internal/cart"
)

// RedisSlots keeps serialized carts in Redis under "<namespace>:<key>".
// A zero TTL keeps slots forever.
type RedisSlots struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

var _ cart.SlotStore = (*RedisSlots)(nil)

func NewRedisSlots(client *redis.Client, namespace string, ttl time.Duration) *RedisSlots {
	return &RedisSlots{client: client, namespace: namespace, ttl: ttl}
}

// OpenRedis parses a redis:// URL and checks the connection.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, errors.New("redis URL is required")
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func (r *RedisSlots) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.client.Get(ctx, r.fullKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (r *RedisSlots) Put(ctx context.Context, key string, data []byte) error {
	return r.client.Set(ctx, r.fullKey(key), data, r.ttl).Err()
}

func (r *RedisSlots) fullKey(key string) string {
	if r.namespace == "" {
		return key
	}
	return r.namespace + ":" + key
}
