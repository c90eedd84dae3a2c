// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on patrickmn/go-cache
// - cache/sqlite: SQLite cache with per-row expiry
// - cache/redis: Redis cache, optionally storing RedisJSON documents
// - cache/postgres: Postgres cache on lib/pq
// - http/standard: net/http client, optionally guarded by safeurl
// - logger/logrus: logrus logger with optional rotated log files
// - metrics/prometheus: Prometheus collectors for fetch and parse outcomes
//
// # Cache Implementations
//
// Every cache returns interfaces.ErrCacheMiss for absent or expired keys.
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:   "localhost:6379",
//	    KeyPrefix: "feedreader:",
//	    JSON:      true,
//	})
//
// # HTTP Client
//
// The HTTP client sends each request once and reports every status code:
//
//	client := standard.NewSafeHTTPClient(10 * time.Second)
//	resp, err := client.Get(ctx, interfaces.Request{URL: "https://example.com/feed.xml"})
//	if err != nil {
//	    // transport failure
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := logrus.NewLogger(config.LogConfig{Level: "info", Format: "json"})
//	logger.Info("Feed opened", map[string]interface{}{
//	    "url":      "https://example.com/feed.xml",
//	    "articles": 20,
//	})
package infrastructure
