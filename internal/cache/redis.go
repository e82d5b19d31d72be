package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/petswipe/petswipe/internal/config"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL is applied to all cached values so stale entries age out
// on their own.
const DefaultTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

// Get returns the value for key, or "" on a cache miss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

func (c *RedisCache) Incr(ctx context.Context, key string) (int64, error) {
	return c.Client.Incr(ctx, key).Result()
}

func (c *RedisCache) Decr(ctx context.Context, key string) (int64, error) {
	return c.Client.Decr(ctx, key).Result()
}

// KeyCannedReplies is where the seeded auto-reply set is cached as JSON.
const KeyCannedReplies = "messages:canned"

// KeyForLikeCount generates the Redis key for a profile's like counter.
func (c *RedisCache) KeyForLikeCount(profileID string) string {
	return fmt.Sprintf("likes:count:%s", profileID)
}

// UpdateLikeCount overwrites the cached like counter for a profile.
// Always refreshes the TTL.
func (c *RedisCache) UpdateLikeCount(ctx context.Context, profileID string, count int64) error {
	return c.Client.Set(ctx, c.KeyForLikeCount(profileID), count, DefaultTTL).Err()
}

// GetLikeCount reads the cached like counter. The second return value
// reports whether the counter was present at all.
func (c *RedisCache) GetLikeCount(ctx context.Context, profileID string) (int64, bool, error) {
	key := c.KeyForLikeCount(profileID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, DefaultTTL).Err()
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}
