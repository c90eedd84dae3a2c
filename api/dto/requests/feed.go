// ABOUTME: Request DTOs for feed-related API endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

import (
	"strings"
	"time"

	"feedreader-api/core/config"
)

// Sentinel for integer query parameters that were not supplied
const unset = -1

// FeedQuery holds the presentation options shared by single and batch requests
type FeedQuery struct {
	// Limit caps the number of articles; -1 returns all
	Limit int `query:"limit" minimum:"-1" default:"-1" doc:"Maximum number of articles, -1 for all"`

	// Order is standard (newest first) or reverse
	Order string `query:"order" enum:"standard,reverse" default:"standard" doc:"Article order"`

	// DateFormat is a strftime pattern for formatted dates
	DateFormat string `query:"dateFormat" default:"%c" doc:"strftime pattern used for formatted dates"`
}

// FeedRequest represents the query of GET /feed
type FeedRequest struct {
	// URL is the feed URL to read
	URL string `query:"url" required:"true" format:"uri" doc:"Feed URL to read"`

	// Type forces the feed type; auto detects it from Content-Type.
	// Empty keeps the server default.
	Type string `query:"type" enum:"auto,rss,atom,json" doc:"Feed type, the server default when omitted"`

	// UseCache overrides the per-feed cache setting when set
	UseCache string `query:"useCache" enum:"true,false" doc:"Use the response cache for this feed"`

	// CacheValidity overrides the cache TTL in minutes when not -1
	CacheValidity int `query:"cacheValidity" minimum:"-1" default:"-1" doc:"Cache TTL in minutes, 0 stores without expiry"`

	// BasicAuth holds user:password credentials
	BasicAuth string `query:"basicAuth" doc:"Basic auth credentials as user:password"`

	// Timeout overrides the request timeout in seconds
	Timeout int `query:"timeout" minimum:"0" maximum:"60" default:"0" doc:"Request timeout in seconds, 0 for the default"`

	// Strict turns the first reader error into an HTTP error status
	Strict bool `query:"strict" doc:"Fail with an HTTP error instead of returning collected errors"`

	// Debug includes a troubleshooting snapshot when enabled on the server
	Debug bool `query:"debug" doc:"Include a debug snapshot of the reader"`

	FeedQuery
}

// Options converts the request into reader options.
// Only parameters that were supplied override the process defaults.
func (r *FeedRequest) Options() []config.Option {
	var opts []config.Option

	if r.Type != "" {
		opts = append(opts, config.WithType(r.Type))
	}

	switch strings.ToLower(r.UseCache) {
	case "true":
		opts = append(opts, config.WithCache(true))
	case "false":
		opts = append(opts, config.WithoutCache())
	}

	if r.CacheValidity != unset {
		opts = append(opts, config.WithCacheValidity(r.CacheValidity))
	}

	if r.BasicAuth != "" {
		opts = append(opts, config.WithBasicAuth(r.BasicAuth))
	}

	if r.Timeout > 0 {
		opts = append(opts, config.WithTimeout(time.Duration(r.Timeout)*time.Second))
	}

	return opts
}

// FeedsRequest represents the request body for reading several feeds at once
type FeedsRequest struct {
	// URLs is the list of feed URLs to read
	URLs []string `json:"urls" minItems:"1" maxItems:"50" doc:"List of feed URLs to read"`

	// Type forces the feed type for every URL; empty keeps the server default
	Type string `json:"type,omitempty" enum:"auto,rss,atom,json" doc:"Feed type, the server default when omitted"`

	// Limit caps the number of articles per feed; -1 returns all
	Limit int `json:"limit,omitempty" minimum:"-1" default:"-1" doc:"Maximum number of articles per feed, -1 for all"`

	// Order is standard (newest first) or reverse
	Order string `json:"order,omitempty" enum:"standard,reverse" default:"standard" doc:"Article order"`

	// DateFormat is a strftime pattern for formatted dates
	DateFormat string `json:"dateFormat,omitempty" default:"%c" doc:"strftime pattern used for formatted dates"`
}

// ApplyDefaults sets default values for optional fields
func (r *FeedsRequest) ApplyDefaults() {
	if r.Order == "" {
		r.Order = "standard"
	}
	if r.DateFormat == "" {
		r.DateFormat = "%c"
	}
}

// Options converts the batch request into reader options applied to every URL
func (r *FeedsRequest) Options() []config.Option {
	if r.Type == "" {
		return nil
	}
	return []config.Option{config.WithType(r.Type)}
}

// Query returns the presentation options of the batch request
func (r *FeedsRequest) Query() FeedQuery {
	return FeedQuery{Limit: r.Limit, Order: r.Order, DateFormat: r.DateFormat}
}
