// Package cache holds short-lived copies of expensive read models.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/designsync-api/utils"
	"github.com/go-redis/redis/v8"
)

// Cache stores JSON-encoded values by key
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

// Default is the process-wide cache; a no-op until Initialize connects Redis
var Default Cache = Noop{}

// Initialize connects to Redis when redisURL is set
func Initialize(ctx context.Context, redisURL string, ttl time.Duration) error {
	if redisURL == "" {
		utils.Logger.Info("⚠️ REDIS_URL not set, caching disabled")
		Default = Noop{}
		return nil
	}

	c, err := NewRedisCache(redisURL, ttl)
	if err != nil {
		return err
	}
	if err := c.Ping(ctx); err != nil {
		return err
	}

	Default = c
	utils.Logger.Infof("🔧 Redis cache initialized with address: %s", c.client.Options().Addr)
	return nil
}

// ProjectDetailKey is the cache key of a project's detail tree
func ProjectDetailKey(projectID string) string {
	return "designsync:project:" + projectID + ":detail"
}

// RedisCache is a Cache backed by go-redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache accepts either a redis:// URL or a bare host:port
func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	var opts *redis.Options
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		parsed, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, err
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: redisURL}
	}
	return &RedisCache{client: redis.NewClient(opts), ttl: ttl}, nil
}

func (r *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, raw, r.ttl).Err()
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Noop never stores anything
type Noop struct{}

func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, interface{}) error         { return nil }
func (Noop) Delete(context.Context, ...string) error                { return nil }
func (Noop) Ping(context.Context) error                             { return nil }
