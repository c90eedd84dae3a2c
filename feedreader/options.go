// ABOUTME: Configuration options for the feedreader library client
// ABOUTME: Provides functional options for the client and re-exports per-feed options

package feedreader

import (
	"time"

	"feedreader-api/core/config"
	"feedreader-api/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// FeedOption overrides one option of a single Open call
type FeedOption = config.Option

// Per-feed options, usable with Open and OpenAll
var (
	FeedType           = config.WithType
	UseCache           = config.WithCache
	NoCache            = config.WithoutCache
	CacheValidity      = config.WithCacheValidity
	CacheValidityHours = config.WithCacheValidityHours
	BasicAuth          = config.WithBasicAuth
	Header             = config.WithHeader
	Headers            = config.WithHeaders
	Timeout            = config.WithTimeout
	UserAgent          = config.WithUserAgent
	MaxBodySize        = config.WithMaxBodySize
)

// WithCache sets a custom cache implementation. A nil cache disables caching.
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithoutCache disables caching for every feed opened by the client
func WithoutCache() Option {
	return func(c *Config) error {
		c.Cache = nil
		c.Defaults.CacheEnabled = false
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics sets the recorder for fetch and parse outcomes
func WithMetrics(metrics interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = metrics
		return nil
	}
}

// WithDefaults replaces the defaults readers start from
func WithDefaults(defaults config.Defaults) Option {
	return func(c *Config) error {
		c.Defaults = defaults
		return nil
	}
}

// WithDefaultTimeout sets the fetch timeout used when a feed does not override it
func WithDefaultTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		c.Defaults.URL.Timeout = timeout
		return nil
	}
}

// WithDefaultCacheValidity sets the cache TTL in minutes used when a feed does not override it
func WithDefaultCacheValidity(minutes int) Option {
	return func(c *Config) error {
		c.Defaults.Feed.CacheValidity = minutes
		return nil
	}
}

// WithLocation sets the time zone dates are formatted in
func WithLocation(name string) Option {
	return func(c *Config) error {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "invalid location").
				WithCause(err).
				WithContext("location", name)
		}
		c.Defaults.Location = loc
		return nil
	}
}

// CacheOption represents cache configuration options
type CacheOption struct {
	Type     CacheType
	FilePath string // For SQLite cache
}

// CacheType represents the type of cache
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeSQLite CacheType = "sqlite"
	CacheTypeNone   CacheType = "none"
)

// WithCacheOption creates a cache based on the provided options
func WithCacheOption(opt CacheOption) Option {
	return func(c *Config) error {
		switch opt.Type {
		case CacheTypeMemory:
			c.Cache = DefaultMemoryCache()
		case CacheTypeSQLite:
			if opt.FilePath == "" {
				opt.FilePath = "feedreader_cache.db"
			}
			cache, err := DefaultSQLiteCache(opt.FilePath)
			if err != nil {
				return err
			}
			c.Cache = cache
		case CacheTypeNone:
			return WithoutCache()(c)
		default:
			return NewError(ErrorTypeConfiguration, "invalid cache type").
				WithContext("type", string(opt.Type))
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}
