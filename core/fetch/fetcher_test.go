package fetch

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedreader-api/core/config"
	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
)

const feedURL = "https://example.com/feed.xml"

func newTestFetcher(client *mockHTTPClient, cache *mockCache) *Fetcher {
	deps := interfaces.Dependencies{HTTPClient: client}
	if cache != nil {
		deps.Cache = cache
	}
	return NewFetcher(deps, true)
}

func resolve(opts ...config.Option) config.Options {
	return config.DefaultDefaults().Resolve(opts...)
}

func storeRecord(t *testing.T, cache *mockCache, url string, record domain.CacheRecord) {
	t.Helper()
	data, err := json.Marshal(record)
	require.NoError(t, err)
	cache.data[domain.CacheKey(url)] = data
}

func TestFetch_200StoresRecord(t *testing.T) {
	cache := newMockCache()
	client := &mockHTTPClient{getFunc: respond(200, map[string]string{
		"Content-Type": "application/rss+xml",
		"Etag":         `"v1"`,
	}, "<rss/>")}
	f := newTestFetcher(client, cache)

	result, errs := f.Fetch(context.Background(), feedURL, resolve(config.WithCacheValidity(30)))

	require.Empty(t, errs)
	assert.Equal(t, 200, result.StatusCode)
	assert.Equal(t, "<rss/>", result.Body)
	assert.False(t, result.FromCache)
	assert.True(t, result.HasContent())

	key := domain.CacheKey(feedURL)
	require.True(t, cache.has(key))
	assert.Equal(t, 30*time.Minute, cache.ttls[key])

	var record domain.CacheRecord
	require.NoError(t, json.Unmarshal(cache.data[key], &record))
	assert.Equal(t, "<rss/>", record.Content)
	assert.Equal(t, `"v1"`, record.Header["Etag"])
}

func TestFetch_CacheRecordLayout(t *testing.T) {
	cache := newMockCache()
	client := &mockHTTPClient{getFunc: respond(200, map[string]string{"Content-Type": "application/json"}, `{"items":[]}`)}

	_, errs := newTestFetcher(client, cache).Fetch(context.Background(), feedURL, resolve())
	require.Empty(t, errs)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(cache.data[domain.CacheKey(feedURL)], &raw))
	assert.Len(t, raw, 2)
	assert.Contains(t, raw, "header")
	assert.Contains(t, raw, "content")
}

func TestFetch_ConditionalHeaders(t *testing.T) {
	tests := []struct {
		name       string
		stored     map[string]string
		wantHeader string
		wantValue  string
		notHeader  string
	}{
		{"etag", map[string]string{"ETag": `"abc"`, "Last-Modified": "Mon, 01 Jan 2024 00:00:00 GMT"}, "If-None-Match", `"abc"`, "If-Modified-Since"},
		{"lowercase etag", map[string]string{"etag": `"low"`}, "If-None-Match", `"low"`, "If-Modified-Since"},
		{"last-modified only", map[string]string{"last-modified": "Mon, 01 Jan 2024 00:00:00 GMT"}, "If-Modified-Since", "Mon, 01 Jan 2024 00:00:00 GMT", "If-None-Match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newMockCache()
			storeRecord(t, cache, feedURL, domain.CacheRecord{Header: tt.stored, Content: "<rss/>"})
			client := &mockHTTPClient{getFunc: respond(304, nil, "")}

			_, errs := newTestFetcher(client, cache).Fetch(context.Background(), feedURL,
				resolve(config.WithHeader("X-Custom", "1")))

			require.Empty(t, errs)
			req := client.lastRequest()
			assert.Equal(t, tt.wantValue, req.Headers[tt.wantHeader])
			assert.NotContains(t, req.Headers, tt.notHeader)
			assert.Equal(t, "1", req.Headers["X-Custom"])
		})
	}
}

func TestFetch_NoConditionalHeaderWithoutValidators(t *testing.T) {
	cache := newMockCache()
	storeRecord(t, cache, feedURL, domain.CacheRecord{Header: map[string]string{"Content-Type": "application/rss+xml"}, Content: "old"})
	client := &mockHTTPClient{getFunc: respond(200, map[string]string{"Content-Type": "application/rss+xml"}, "new")}

	result, errs := newTestFetcher(client, cache).Fetch(context.Background(), feedURL, resolve())

	require.Empty(t, errs)
	assert.NotContains(t, client.lastRequest().Headers, "If-None-Match")
	assert.NotContains(t, client.lastRequest().Headers, "If-Modified-Since")
	assert.Equal(t, "new", result.Body)
}

func TestFetch_304ReusesCachedRecord(t *testing.T) {
	cache := newMockCache()
	metrics := &mockMetrics{}
	stored := domain.CacheRecord{Header: map[string]string{"Content-Type": "application/atom+xml", "ETag": `"e"`}, Content: "<feed/>"}
	storeRecord(t, cache, feedURL, stored)
	client := &mockHTTPClient{getFunc: respond(304, map[string]string{"Date": "now"}, "")}
	f := NewFetcher(interfaces.Dependencies{HTTPClient: client, Cache: cache, Metrics: metrics}, true)

	result, errs := f.Fetch(context.Background(), feedURL, resolve())

	require.Empty(t, errs)
	assert.True(t, result.FromCache)
	assert.True(t, result.HasContent())
	assert.Equal(t, stored.Header, result.Header)
	assert.Equal(t, "<feed/>", result.Body)
	assert.Equal(t, 1, metrics.cacheHits)
	assert.NotContains(t, cache.operations(), "set")
}

func TestFetch_304WithoutRecordIsCacheError(t *testing.T) {
	client := &mockHTTPClient{getFunc: respond(304, nil, "")}

	result, errs := newTestFetcher(client, newMockCache()).Fetch(context.Background(), feedURL, resolve())

	require.Len(t, errs, 1)
	assert.True(t, errors.IsCache(errs[0]))
	assert.False(t, result.HasContent())
}

func TestFetch_DisabledCacheRemovesEntryBeforeRequest(t *testing.T) {
	cache := newMockCache()
	storeRecord(t, cache, feedURL, domain.CacheRecord{Header: map[string]string{"ETag": `"x"`}, Content: "old"})

	var opsAtRequest []string
	client := &mockHTTPClient{getFunc: func(ctx context.Context, req interfaces.Request) (interfaces.Response, error) {
		opsAtRequest = cache.operations()
		return &mockResponse{statusCode: 200, headers: map[string]string{"Content-Type": "application/rss+xml"}, body: "new"}, nil
	}}

	_, errs := newTestFetcher(client, cache).Fetch(context.Background(), feedURL, resolve(config.WithoutCache()))

	require.Empty(t, errs)
	assert.Equal(t, []string{"exists", "delete"}, opsAtRequest)
	assert.False(t, cache.has(domain.CacheKey(feedURL)), "disabled cache must not be rewritten")
	assert.NotContains(t, client.lastRequest().Headers, "If-None-Match")
	assert.NotContains(t, client.lastRequest().Headers, "If-Modified-Since")
}

func TestFetch_GlobalCacheOffLeavesStoreAlone(t *testing.T) {
	cache := newMockCache()
	storeRecord(t, cache, feedURL, domain.CacheRecord{Header: map[string]string{"ETag": `"x"`}, Content: "old"})
	client := &mockHTTPClient{getFunc: respond(200, nil, "new")}
	f := NewFetcher(interfaces.Dependencies{HTTPClient: client, Cache: cache}, false)

	_, errs := f.Fetch(context.Background(), feedURL, resolve())

	require.Empty(t, errs)
	assert.Empty(t, cache.operations())
	assert.NotContains(t, client.lastRequest().Headers, "If-None-Match")
}

func TestFetch_NilCacheDisablesCaching(t *testing.T) {
	client := &mockHTTPClient{getFunc: respond(200, nil, "body")}

	result, errs := newTestFetcher(client, nil).Fetch(context.Background(), feedURL, resolve())

	require.Empty(t, errs)
	assert.Equal(t, "body", result.Body)
}

func TestFetch_401(t *testing.T) {
	client := &mockHTTPClient{getFunc: respond(401, nil, "")}
	f := newTestFetcher(client, newMockCache())

	_, errs := f.Fetch(context.Background(), feedURL, resolve())
	require.Len(t, errs, 1)
	assert.True(t, errors.IsAuth(errs[0]))
	assert.Equal(t, feedURL+" needs authentication, but no 'basicAuth' option given.", errs[0].Error())

	_, errs = f.Fetch(context.Background(), feedURL, resolve(config.WithBasicAuth("user:wrong")))
	require.Len(t, errs, 1)
	assert.True(t, errors.IsAuth(errs[0]))
	assert.Equal(t, "Wrong credentials for 'basicAuth' option.", errs[0].Error())
	assert.Equal(t, "user:wrong", client.lastRequest().BasicAuth)
}

func TestFetch_401_DefaultCredentialsCountAsSupplied(t *testing.T) {
	client := &mockHTTPClient{getFunc: respond(401, nil, "")}
	defaults := config.DefaultDefaults()
	defaults.URL.BasicAuth = "host:secret"

	_, errs := newTestFetcher(client, nil).Fetch(context.Background(), feedURL, defaults.Resolve())
	require.Len(t, errs, 1)
	assert.Equal(t, "Wrong credentials for 'basicAuth' option.", errs[0].Error())
	assert.Equal(t, "host:secret", client.lastRequest().BasicAuth)
}

func TestFetch_UnexpectedStatus(t *testing.T) {
	client := &mockHTTPClient{getFunc: respond(503, nil, "unavailable")}

	result, errs := newTestFetcher(client, newMockCache()).Fetch(context.Background(), feedURL, resolve())

	require.Len(t, errs, 1)
	assert.True(t, errors.IsTransport(errs[0]))
	assert.Equal(t, feedURL+" returns HTTP status code 503.", errs[0].Error())
	assert.Equal(t, 503, result.StatusCode)
	assert.False(t, result.HasContent())
}

func TestFetch_TransportFailure(t *testing.T) {
	client := &mockHTTPClient{getFunc: func(ctx context.Context, req interfaces.Request) (interfaces.Response, error) {
		return nil, context.DeadlineExceeded
	}}

	_, errs := newTestFetcher(client, newMockCache()).Fetch(context.Background(), feedURL, resolve())

	require.Len(t, errs, 1)
	assert.True(t, errors.IsTransport(errs[0]))
	assert.True(t, stderrors.Is(errs[0], context.DeadlineExceeded))
}

func TestFetch_PassesRequestOptions(t *testing.T) {
	client := &mockHTTPClient{}

	newTestFetcher(client, nil).Fetch(context.Background(), feedURL, resolve(
		config.WithTimeout(3*time.Second),
		config.WithHeader("accept", "application/rss+xml"),
	))

	req := client.lastRequest()
	assert.Equal(t, feedURL, req.URL)
	assert.Equal(t, 3*time.Second, req.Timeout)
	assert.Equal(t, "application/rss+xml", req.Headers["Accept"])
	assert.Equal(t, config.DefaultUserAgent, req.Headers["User-Agent"])
}

func TestFetch_BodyLimit(t *testing.T) {
	client := &mockHTTPClient{getFunc: respond(200, nil, strings.Repeat("x", 64))}

	_, errs := newTestFetcher(client, nil).Fetch(context.Background(), feedURL, resolve(config.WithMaxBodySize(16)))

	require.Len(t, errs, 1)
	assert.True(t, errors.IsTransport(errs[0]))
}

func TestFetch_CacheWriteFailureIsLoggedOnly(t *testing.T) {
	cache := newMockCache()
	cache.setErr = stderrors.New("disk full")
	var warned bool
	logger := &mockLogger{warnFunc: func(msg string, fields map[string]interface{}) { warned = true }}
	client := &mockHTTPClient{getFunc: respond(200, nil, "body")}
	f := NewFetcher(interfaces.Dependencies{HTTPClient: client, Cache: cache, Logger: logger}, true)

	result, errs := f.Fetch(context.Background(), feedURL, resolve())

	assert.Empty(t, errs)
	assert.Equal(t, "body", result.Body)
	assert.True(t, warned)
}

func TestFetch_UnreadableCacheRecordIsMiss(t *testing.T) {
	cache := newMockCache()
	cache.data[domain.CacheKey(feedURL)] = []byte("not json")
	client := &mockHTTPClient{getFunc: respond(200, nil, "fresh")}

	result, errs := newTestFetcher(client, cache).Fetch(context.Background(), feedURL, resolve())

	require.Empty(t, errs)
	assert.NotContains(t, client.lastRequest().Headers, "If-None-Match")
	assert.Equal(t, "fresh", result.Body)
}

func TestFetch_NoClient(t *testing.T) {
	f := NewFetcher(interfaces.Dependencies{}, true)

	result, errs := f.Fetch(context.Background(), feedURL, resolve())

	require.Len(t, errs, 1)
	assert.True(t, errors.IsTransport(errs[0]))
	assert.NotNil(t, result)
}

func TestFetch_MetricsRecorded(t *testing.T) {
	metrics := &mockMetrics{}
	client := &mockHTTPClient{getFunc: respond(404, nil, "")}
	f := NewFetcher(interfaces.Dependencies{HTTPClient: client, Metrics: metrics}, true)

	f.Fetch(context.Background(), feedURL, resolve())

	assert.Equal(t, []int{404}, metrics.fetches)
}

func TestFetch_SameURLIsSerialized(t *testing.T) {
	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0
	client := &mockHTTPClient{getFunc: func(ctx context.Context, req interfaces.Request) (interfaces.Response, error) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()

		time.Sleep(5 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		return &mockResponse{statusCode: 200, body: "x"}, nil
	}}
	f := newTestFetcher(client, newMockCache())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Fetch(context.Background(), feedURL, resolve())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInFlight)
}
