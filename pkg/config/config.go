// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, reader defaults and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	coreconfig "feedreader-api/core/config"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Reader contains the defaults every feed is opened with
	Reader ReaderConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// CORSOrigins lists the allowed origins; "*" allows all
	CORSOrigins []string

	// RateLimit is the sustained number of requests per second per client IP
	RateLimit float64

	// RateBurst is the number of requests a client may burst above RateLimit
	RateBurst int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/sqlite/redis/postgres)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Postgres contains Postgres-specific configuration
	Postgres PostgresConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix is prepended to every cache key
	KeyPrefix string

	// JSON stores records with RedisJSON instead of plain strings
	JSON bool
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged, in seconds; 0 purges on write only
	CleanupInterval int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// PostgresConfig holds Postgres-specific configuration
type PostgresConfig struct {
	// DSN is the lib/pq connection string
	DSN string

	// Table is the cache table name
	Table string
}

// ReaderConfig holds the process-wide feed reader defaults
type ReaderConfig struct {
	// CacheEnabled is the global cache switch
	CacheEnabled bool

	// FeedType is the default feed type (auto/rss/atom/json)
	FeedType string

	// UseCache is the default per-feed cache setting
	UseCache bool

	// CacheValidity is the default cache TTL in minutes
	CacheValidity int

	// Timeout is the request timeout in seconds
	Timeout int

	// UserAgent is sent with every feed request
	UserAgent string

	// MaxBodySize caps response bodies, in bytes
	MaxBodySize int64

	// BasicAuth holds default "user:password" credentials
	BasicAuth string

	// Location is the IANA time zone used to format dates
	Location string
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is json or text
	Format string

	// File, when set, receives rotated log output instead of stderr
	File string
}

// Load reads a .env file when present and then loads configuration from the environment.
// Variables already set in the environment take precedence over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return LoadFromEnv()
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("PORT", "8000"),
			CORSOrigins: getEnvAsListOrDefault("CORS_ORIGINS", []string{"*"}),
			RateLimit:   getEnvAsFloatOrDefault("RATE_LIMIT", 5),
			RateBurst:   getEnvAsIntOrDefault("RATE_BURST", 10),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "feedreader:"),
				JSON:      getEnvAsBoolOrDefault("REDIS_JSON", false),
			},
			Memory: MemoryConfig{
				CleanupInterval: getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP_INTERVAL", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "cache.db"),
			},
			Postgres: PostgresConfig{
				DSN:   getEnvOrDefault("POSTGRES_DSN", ""),
				Table: getEnvOrDefault("POSTGRES_CACHE_TABLE", "feed_cache"),
			},
		},
		Reader: ReaderConfig{
			CacheEnabled:  getEnvAsBoolOrDefault("FEEDREADER_CACHE", true),
			FeedType:      getEnvOrDefault("FEEDREADER_TYPE", coreconfig.TypeAuto),
			UseCache:      getEnvAsBoolOrDefault("FEEDREADER_USE_CACHE", true),
			CacheValidity: getEnvAsIntOrDefault("FEEDREADER_CACHE_VALIDITY", coreconfig.DefaultCacheValidity),
			Timeout:       getEnvAsIntOrDefault("FEEDREADER_TIMEOUT", int(coreconfig.DefaultTimeout/time.Second)),
			UserAgent:     getEnvOrDefault("FEEDREADER_USER_AGENT", coreconfig.DefaultUserAgent),
			MaxBodySize:   int64(getEnvAsIntOrDefault("FEEDREADER_MAX_BODY_SIZE", int(coreconfig.DefaultMaxBodySize))),
			BasicAuth:     getEnvOrDefault("FEEDREADER_BASIC_AUTH", ""),
			Location:      getEnvOrDefault("FEEDREADER_TIMEZONE", "UTC"),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma-separated environment variable
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit <= 0 || c.Server.RateBurst < 1 {
		return errors.New("rate limit and burst must be positive")
	}

	switch c.Cache.Type {
	case "memory", "none":
	case "sqlite":
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case "postgres":
		if c.Cache.Postgres.DSN == "" {
			return errors.New("postgres dsn cannot be empty when using postgres cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'sqlite', 'redis', 'postgres' or 'none'")
	}

	switch c.Reader.FeedType {
	case coreconfig.TypeAuto, coreconfig.TypeRSS, coreconfig.TypeAtom, coreconfig.TypeJSON:
	default:
		return fmt.Errorf("feed type must be one of auto, rss, atom or json, got %q", c.Reader.FeedType)
	}

	if c.Reader.CacheValidity < 0 {
		return errors.New("cache validity cannot be negative")
	}

	if c.Reader.Timeout < 1 {
		return errors.New("reader timeout must be at least 1 second")
	}

	if _, err := time.LoadLocation(c.Reader.Location); err != nil {
		return fmt.Errorf("invalid time zone %q: %w", c.Reader.Location, err)
	}

	return nil
}

// ReaderDefaults converts the reader configuration into the defaults used by the reader service
func (c *Config) ReaderDefaults() (coreconfig.Defaults, error) {
	loc, err := time.LoadLocation(c.Reader.Location)
	if err != nil {
		return coreconfig.Defaults{}, fmt.Errorf("invalid time zone %q: %w", c.Reader.Location, err)
	}

	d := coreconfig.DefaultDefaults()
	d.CacheEnabled = c.Reader.CacheEnabled && c.Cache.Type != "none"
	d.Location = loc
	d.Feed.Type = c.Reader.FeedType
	d.Feed.UseCache = c.Reader.UseCache
	d.Feed.CacheValidity = c.Reader.CacheValidity
	d.URL.BasicAuth = c.Reader.BasicAuth
	if c.Reader.Timeout > 0 {
		d.URL.Timeout = time.Duration(c.Reader.Timeout) * time.Second
	}
	if c.Reader.UserAgent != "" {
		d.URL.UserAgent = c.Reader.UserAgent
	}
	if c.Reader.MaxBodySize > 0 {
		d.URL.MaxBodySize = c.Reader.MaxBodySize
	}

	return d, nil
}
