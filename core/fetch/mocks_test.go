package fetch

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"feedreader-api/core/interfaces"
)

// mockHTTPClient records requests and answers with getFunc
type mockHTTPClient struct {
	mu       sync.Mutex
	requests []interfaces.Request
	getFunc  func(ctx context.Context, req interfaces.Request) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, req interfaces.Request) (interfaces.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.getFunc != nil {
		return m.getFunc(ctx, req)
	}
	return &mockResponse{statusCode: 200}, nil
}

func (m *mockHTTPClient) lastRequest() interfaces.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[len(m.requests)-1]
}

// respond returns a getFunc that always answers with the given response
func respond(status int, headers map[string]string, body string) func(context.Context, interfaces.Request) (interfaces.Response, error) {
	return func(context.Context, interfaces.Request) (interfaces.Response, error) {
		return &mockResponse{statusCode: status, headers: headers, body: body}, nil
	}
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	for k, v := range m.headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

func (m *mockResponse) Headers() map[string]string {
	out := make(map[string]string, len(m.headers))
	for k, v := range m.headers {
		out[k] = v
	}
	return out
}

// mockCache is a map-backed Cache that records the operations performed on it
type mockCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
	ops  []string

	getErr error
	setErr error
}

func newMockCache() *mockCache {
	return &mockCache{
		data: make(map[string][]byte),
		ttls: make(map[string]time.Duration),
	}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, "get")
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	return v, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, "set")
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mockCache) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, "exists")
	_, ok := m.data[key]
	return ok, nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, "delete")
	delete(m.data, key)
	return nil
}

func (m *mockCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *mockCache) operations() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.ops...)
}

// mockMetrics counts recorded measurements
type mockMetrics struct {
	mu        sync.Mutex
	fetches   []int
	cacheHits int
}

func (m *mockMetrics) RecordFetch(statusCode int, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches = append(m.fetches, statusCode)
}

func (m *mockMetrics) RecordCacheHit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

func (m *mockMetrics) RecordError(kind string)                   {}
func (m *mockMetrics) RecordArticles(feedType string, count int) {}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	warnFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
