package reader

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"feedreader-api/core/interfaces"
)

// mockHTTPClient answers requests with handler and records them
type mockHTTPClient struct {
	mu       sync.Mutex
	requests []interfaces.Request
	handler  func(req interfaces.Request) (*mockResponse, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, req interfaces.Request) (interfaces.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	resp, err := m.handler(req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *mockHTTPClient) lastRequest() interfaces.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[len(m.requests)-1]
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int      { return m.statusCode }
func (m *mockResponse) Body() io.ReadCloser  { return io.NopCloser(strings.NewReader(m.body)) }
func (m *mockResponse) Headers() map[string]string {
	out := make(map[string]string, len(m.headers))
	for k, v := range m.headers {
		out[k] = v
	}
	return out
}
func (m *mockResponse) Header(key string) string {
	for k, v := range m.headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// mockCache is a map-backed Cache
type mockCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	return v, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mockCache) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// mockMetrics records error kinds and article counts
type mockMetrics struct {
	mu       sync.Mutex
	errors   []string
	articles map[string]int
}

func (m *mockMetrics) RecordFetch(statusCode int, d time.Duration) {}
func (m *mockMetrics) RecordCacheHit()                             {}
func (m *mockMetrics) RecordError(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, kind)
}
func (m *mockMetrics) RecordArticles(feedType string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.articles == nil {
		m.articles = map[string]int{}
	}
	m.articles[feedType] += count
}
