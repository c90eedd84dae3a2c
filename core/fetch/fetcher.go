// ABOUTME: Fetcher performs the feed HTTP request and keeps raw responses in the cache
// ABOUTME: Handles conditional revalidation (ETag / Last-Modified) and 200/304/401 semantics

package fetch

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"feedreader-api/core/config"
	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
)

// Fetcher retrieves feed content over HTTP with an optional response cache
type Fetcher struct {
	cache        interfaces.Cache
	client       interfaces.HTTPClient
	logger       interfaces.Logger
	metrics      interfaces.Metrics
	cacheEnabled bool
	locks        *keyedMutex
}

// NewFetcher creates a fetcher. cacheEnabled is the global cache switch;
// caching is also off when deps.Cache is nil.
func NewFetcher(deps interfaces.Dependencies, cacheEnabled bool) *Fetcher {
	deps = deps.WithDefaults()
	return &Fetcher{
		cache:        deps.Cache,
		client:       deps.HTTPClient,
		logger:       deps.Logger,
		metrics:      deps.Metrics,
		cacheEnabled: cacheEnabled && deps.Cache != nil,
		locks:        newKeyedMutex(),
	}
}

// Fetch requests url with the resolved options. The returned result is never nil;
// its content is usable only when HasContent reports true. Errors are returned
// in the order they occurred.
func (f *Fetcher) Fetch(ctx context.Context, url string, opts config.Options) (*domain.FetchResult, []error) {
	key := domain.CacheKey(url)
	result := &domain.FetchResult{}

	if f.client == nil {
		return result, []error{&errors.TransportError{URL: url, Cause: stderrors.New("HTTP client not configured")}}
	}

	unlock := f.locks.Lock(key)
	defer unlock()

	headers := requestHeaders(opts.URL)
	useCache := f.cacheEnabled && opts.Feed.UseCache

	var cached *domain.CacheRecord
	if useCache {
		cached = f.readCache(ctx, key)
		if cached != nil {
			addConditionalHeader(headers, cached)
		}
	} else if f.cacheEnabled {
		f.removeCache(ctx, key)
	}
	result.RequestHeader = headers

	f.logger.Debug("Fetching feed", map[string]interface{}{
		"url":       url,
		"use_cache": useCache,
		"cached":    cached != nil,
	})

	start := time.Now()
	resp, err := f.client.Get(ctx, interfaces.Request{
		URL:       url,
		Headers:   headers,
		BasicAuth: opts.URL.BasicAuth,
		Timeout:   opts.URL.Timeout,
	})
	if err != nil {
		f.metrics.RecordFetch(0, time.Since(start))
		return result, []error{&errors.TransportError{URL: url, Cause: err}}
	}
	defer resp.Body().Close()

	result.StatusCode = resp.StatusCode()
	f.metrics.RecordFetch(result.StatusCode, time.Since(start))
	f.logger.Debug("Feed response received", map[string]interface{}{
		"url":    url,
		"status": result.StatusCode,
	})

	switch result.StatusCode {
	case http.StatusOK:
		body, err := readBody(resp.Body(), opts.URL.MaxBodySize)
		if err != nil {
			return result, []error{&errors.TransportError{URL: url, StatusCode: result.StatusCode, Cause: err}}
		}
		result.Header = resp.Headers()
		result.Body = body
		if useCache {
			f.writeCache(ctx, key, result, opts.Feed.CacheValidity)
		}
		return result, nil

	case http.StatusNotModified:
		if cached == nil {
			return result, []error{&errors.CacheError{
				Key:     key,
				Message: "received 304 but no cached response exists",
			}}
		}
		result.Header = cached.Header
		result.Body = cached.Content
		result.FromCache = true
		f.metrics.RecordCacheHit()
		return result, nil

	case http.StatusUnauthorized:
		// host default credentials count as supplied
		return result, []error{&errors.AuthError{
			URL:                 url,
			CredentialsSupplied: opts.URL.HasCredentials(),
		}}

	default:
		return result, []error{&errors.TransportError{URL: url, StatusCode: result.StatusCode}}
	}
}

// requestHeaders copies the configured headers and adds the User-Agent
func requestHeaders(u config.URLOptions) map[string]string {
	headers := make(map[string]string, len(u.Headers)+2)
	for k, v := range u.Headers {
		headers[http.CanonicalHeaderKey(k)] = v
	}
	if _, ok := headers["User-Agent"]; !ok && u.UserAgent != "" {
		headers["User-Agent"] = u.UserAgent
	}
	return headers
}

// addConditionalHeader attaches If-None-Match for a stored ETag, otherwise
// If-Modified-Since for a stored Last-Modified. Only one header is added.
func addConditionalHeader(headers map[string]string, cached *domain.CacheRecord) {
	if etag, ok := cached.HeaderValue("ETag"); ok && etag != "" {
		headers["If-None-Match"] = etag
		return
	}
	if lm, ok := cached.HeaderValue("Last-Modified"); ok && lm != "" {
		headers["If-Modified-Since"] = lm
	}
}

func readBody(body io.Reader, maxSize int64) (string, error) {
	if maxSize <= 0 {
		maxSize = config.DefaultMaxBodySize
	}
	data, err := io.ReadAll(io.LimitReader(body, maxSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(data)) > maxSize {
		return "", fmt.Errorf("response body exceeds %d bytes", maxSize)
	}
	return string(data), nil
}

// readCache returns the stored record for key, nil on a miss or an unreadable entry
func (f *Fetcher) readCache(ctx context.Context, key string) *domain.CacheRecord {
	data, err := f.cache.Get(ctx, key)
	if err != nil {
		if !stderrors.Is(err, interfaces.ErrCacheMiss) {
			f.logger.Warn("Cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil
	}

	var record domain.CacheRecord
	if err := json.Unmarshal(data, &record); err != nil {
		f.logger.Warn("Ignoring unreadable cache record", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil
	}
	return &record
}

func (f *Fetcher) writeCache(ctx context.Context, key string, result *domain.FetchResult, validityMinutes int) {
	data, err := json.Marshal(domain.CacheRecord{Header: result.Header, Content: result.Body})
	if err != nil {
		f.logger.Warn("Failed to encode cache record", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return
	}

	ttl := time.Duration(validityMinutes) * time.Minute
	if err := f.cache.Set(ctx, key, data, ttl); err != nil {
		f.logger.Warn("Cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// removeCache deletes the entry for key when one exists
func (f *Fetcher) removeCache(ctx context.Context, key string) {
	exists, err := f.cache.Exists(ctx, key)
	if err != nil {
		f.logger.Warn("Cache lookup failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return
	}
	if !exists {
		return
	}

	if err := f.cache.Delete(ctx, key); err != nil {
		f.logger.Warn("Cache delete failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return
	}
	f.logger.Debug("Removed cached response", map[string]interface{}{"key": key})
}
