// ABOUTME: Request and feed options with process-wide defaults and per-call overrides
// ABOUTME: Overrides are applied key by key on top of a copy of the defaults

package config

import (
	"net/http"
	"strings"
	"time"
)

// Feed types accepted by FeedOptions.Type
const (
	TypeAuto = "auto"
	TypeRSS  = "rss"
	TypeAtom = "atom"
	TypeJSON = "json"
)

const (
	// DefaultCacheValidity is the cache TTL in minutes (one day)
	DefaultCacheValidity = 24 * 60

	// DefaultTimeout bounds a single feed request
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent is sent when no User-Agent header is configured
	DefaultUserAgent = "FeedReader/1.0"

	// DefaultMaxBodySize caps the number of body bytes read from a response
	DefaultMaxBodySize int64 = 10 << 20
)

// URLOptions controls the outgoing HTTP request
type URLOptions struct {
	// BasicAuth holds "user:password" credentials; empty means none
	BasicAuth string

	// Headers are extra request headers, keyed by canonical header name
	Headers map[string]string

	// Timeout bounds the request
	Timeout time.Duration

	// UserAgent is sent as the User-Agent header
	UserAgent string

	// MaxBodySize caps how many body bytes are read
	MaxBodySize int64
}

// FeedOptions controls type resolution and caching for one feed
type FeedOptions struct {
	// Type is one of auto, rss, atom or json
	Type string

	// UseCache enables the response cache for this feed
	UseCache bool

	// CacheValidity is the cache TTL in minutes; 0 stores without expiry
	CacheValidity int
}

// Defaults are the process-wide settings every reader starts from.
// They are loaded once at startup and passed by value.
type Defaults struct {
	// CacheEnabled is the global cache switch; when false no feed touches the cache
	CacheEnabled bool

	URL  URLOptions
	Feed FeedOptions

	// Location is used to format dates; nil means UTC
	Location *time.Location
}

// Options is the resolved configuration of a single reader
type Options struct {
	URL  URLOptions
	Feed FeedOptions
}

// Option overrides one key of the resolved options
type Option func(*Options)

// DefaultDefaults returns the built-in defaults: cache on, type auto, one-day validity
func DefaultDefaults() Defaults {
	return Defaults{
		CacheEnabled: true,
		URL: URLOptions{
			Headers:     map[string]string{},
			Timeout:     DefaultTimeout,
			UserAgent:   DefaultUserAgent,
			MaxBodySize: DefaultMaxBodySize,
		},
		Feed: FeedOptions{
			Type:          TypeAuto,
			UseCache:      true,
			CacheValidity: DefaultCacheValidity,
		},
		Location: time.UTC,
	}
}

// Resolve copies the defaults and applies opts in order. The defaults are not modified.
func (d Defaults) Resolve(opts ...Option) Options {
	o := Options{
		URL:  d.URL.Clone(),
		Feed: d.Feed,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Feed.Type == "" {
		o.Feed.Type = TypeAuto
	}
	return o
}

// Clone returns a copy of u that does not share the header map
func (u URLOptions) Clone() URLOptions {
	c := u
	c.Headers = make(map[string]string, len(u.Headers))
	for k, v := range u.Headers {
		c.Headers[http.CanonicalHeaderKey(k)] = v
	}
	return c
}

// HasCredentials reports whether basic auth credentials are configured
func (u URLOptions) HasCredentials() bool {
	return strings.TrimSpace(u.BasicAuth) != ""
}

// WithType forces the feed type (auto, rss, atom or json)
func WithType(feedType string) Option {
	return func(o *Options) {
		o.Feed.Type = strings.ToLower(strings.TrimSpace(feedType))
	}
}

// WithCache enables or disables the response cache for this feed
func WithCache(enabled bool) Option {
	return func(o *Options) {
		o.Feed.UseCache = enabled
	}
}

// WithoutCache disables the response cache for this feed and removes its entry
func WithoutCache() Option {
	return WithCache(false)
}

// WithCacheValidity sets the cache TTL in minutes
func WithCacheValidity(minutes int) Option {
	return func(o *Options) {
		if minutes >= 0 {
			o.Feed.CacheValidity = minutes
		}
	}
}

// WithCacheValidityHours sets the cache TTL in hours
func WithCacheValidityHours(hours int) Option {
	return WithCacheValidity(hours * 60)
}

// WithBasicAuth sets "user:password" credentials
func WithBasicAuth(credentials string) Option {
	return func(o *Options) {
		o.URL.BasicAuth = credentials
	}
}

// WithHeader sets one request header
func WithHeader(name, value string) Option {
	return func(o *Options) {
		if o.URL.Headers == nil {
			o.URL.Headers = map[string]string{}
		}
		o.URL.Headers[http.CanonicalHeaderKey(name)] = value
	}
}

// WithHeaders sets several request headers, keeping the others
func WithHeaders(headers map[string]string) Option {
	return func(o *Options) {
		for k, v := range headers {
			WithHeader(k, v)(o)
		}
	}
}

// WithTimeout sets the request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.URL.Timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header value
func WithUserAgent(ua string) Option {
	return func(o *Options) {
		o.URL.UserAgent = ua
	}
}

// WithMaxBodySize caps the number of body bytes read
func WithMaxBodySize(n int64) Option {
	return func(o *Options) {
		if n > 0 {
			o.URL.MaxBodySize = n
		}
	}
}
