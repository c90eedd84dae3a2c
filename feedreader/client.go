// ABOUTME: Main client for the feedreader library providing feed fetching and parsing
// ABOUTME: Offers a clean API over the core reader service without HTTP server dependencies

package feedreader

import (
	"context"
	"io"
	"sync"

	"feedreader-api/core/config"
	"feedreader-api/core/interfaces"
	"feedreader-api/core/reader"
)

// Client is the main entry point for the feedreader library
type Client struct {
	service *reader.Service
	cfg     Config

	closeOnce sync.Once
}

// Config holds the configuration for the client
type Config struct {
	// Cache stores raw feed responses; nil disables caching
	Cache interfaces.Cache

	// HTTPClient fetches feeds
	HTTPClient interfaces.HTTPClient

	// Logger receives structured log entries
	Logger interfaces.Logger

	// Metrics records fetch and parse outcomes; optional
	Metrics interfaces.Metrics

	// Defaults every reader starts from
	Defaults config.Defaults
}

// NewClient creates a new feedreader client with the given options
func NewClient(opts ...Option) (*Client, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		Cache:      cfg.Cache,
		HTTPClient: cfg.HTTPClient,
		Logger:     cfg.Logger,
		Metrics:    cfg.Metrics,
	}

	return &Client{
		service: reader.NewService(deps, cfg.Defaults),
		cfg:     cfg,
	}, nil
}

// Open fetches and parses a single feed. Failures are collected on the
// returned reader rather than returned; check HasErrors.
func (c *Client) Open(ctx context.Context, url string, opts ...FeedOption) *reader.FeedReader {
	return c.service.Open(ctx, url, opts...)
}

// OpenAll reads several feeds concurrently, preserving input order
func (c *Client) OpenAll(ctx context.Context, urls []string, opts ...FeedOption) []*reader.FeedReader {
	return c.service.OpenAll(ctx, urls, opts...)
}

// Defaults returns a copy of the defaults readers are created with
func (c *Client) Defaults() config.Defaults {
	return c.service.Defaults()
}

// Close releases the cache if it holds resources
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		if closer, ok := c.cfg.Cache.(io.Closer); ok {
			err = closer.Close()
		}
	})
	return err
}

// validateConfig validates the client configuration
func validateConfig(cfg *Config) error {
	if cfg.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}

	if cfg.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	if cfg.Defaults.URL.Timeout <= 0 {
		return NewError(ErrorTypeConfiguration, "timeout must be positive").
			WithContext("timeout", cfg.Defaults.URL.Timeout.String())
	}

	if cfg.Defaults.Feed.CacheValidity < 0 {
		return NewError(ErrorTypeConfiguration, "cache validity must not be negative").
			WithContext("validity", cfg.Defaults.Feed.CacheValidity)
	}

	switch cfg.Defaults.Feed.Type {
	case config.TypeAuto, config.TypeRSS, config.TypeAtom, config.TypeJSON:
	default:
		return NewError(ErrorTypeConfiguration, "invalid feed type").
			WithContext("type", cfg.Defaults.Feed.Type)
	}

	// A nil cache means the caller opted out; readers must not try to use it
	if cfg.Cache == nil {
		cfg.Defaults.CacheEnabled = false
	}

	return nil
}
