// ABOUTME: Redis cache implementation using go-redis client
// ABOUTME: Stores feed records as plain strings or, optionally, as RedisJSON documents

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nitishm/go-rejson/v4"
	"github.com/redis/go-redis/v9"

	"feedreader-api/core/interfaces"
	"feedreader-api/pkg/config"
)

// RedisCache implements the Cache interface using Redis
type RedisCache struct {
	client  *redis.Client
	handler *rejson.Handler
	prefix  string
}

// NewRedisCache creates a new Redis cache instance and checks the connection
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return newRedisCache(client, cfg), nil
}

func newRedisCache(client *redis.Client, cfg config.RedisConfig) *RedisCache {
	c := &RedisCache{
		client: client,
		prefix: cfg.KeyPrefix,
	}
	if cfg.JSON {
		handler := rejson.NewReJSONHandler()
		handler.SetGoRedisClient(client)
		c.handler = handler
	}
	return c
}

func (c *RedisCache) key(key string) string {
	return c.prefix + key
}

// Get retrieves a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c.handler != nil {
		return c.getJSON(ctx, key)
	}

	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, interfaces.ErrCacheMiss
		}
		return nil, err
	}

	return val, nil
}

func (c *RedisCache) getJSON(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	val, err := c.handler.JSONGet(c.key(key), ".")
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, interfaces.ErrCacheMiss
		}
		return nil, err
	}
	if val == nil {
		return nil, interfaces.ErrCacheMiss
	}

	data, ok := val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected redis json reply %T", val)
	}
	return data, nil
}

// Set stores a value in Redis with the given TTL; 0 means no expiration
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.handler == nil {
		return c.client.Set(ctx, c.key(key), value, ttl).Err()
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if !json.Valid(value) {
		return errors.New("redis json cache requires a JSON value")
	}

	if _, err := c.handler.JSONSet(c.key(key), ".", json.RawMessage(value)); err != nil {
		return err
	}
	if ttl > 0 {
		return c.client.Expire(ctx, c.key(key), ttl).Err()
	}
	return c.client.Persist(ctx, c.key(key)).Err()
}

// Exists reports whether key is stored and not expired
func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes a key from Redis. Deleting a missing key is not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
