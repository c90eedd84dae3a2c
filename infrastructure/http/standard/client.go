// ABOUTME: Standard HTTP client implementation for feed requests with timeout support
// ABOUTME: Optionally wraps a safeurl client that refuses private and loopback addresses

package standard

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/doyensec/safeurl"

	"feedreader-api/core/interfaces"
)

// StandardHTTPClient implements the HTTPClient interface using net/http.
// Each request is sent exactly once; non-2xx statuses are returned, not retried.
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified default timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewSafeHTTPClient creates a client that only dials public http(s) endpoints on ports 80 and 443
func NewSafeHTTPClient(timeout time.Duration) *StandardHTTPClient {
	cfg := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("http", "https").
		SetAllowedPorts(80, 443).
		Build()

	return &StandardHTTPClient{
		client: safeurl.Client(cfg).Client,
	}
}

// Get performs an HTTP GET request described by r
func (c *StandardHTTPClient) Get(ctx context.Context, r interfaces.Request) (interfaces.Response, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		return c.do(ctx, r, cancel)
	}
	return c.do(ctx, r, nil)
}

func (c *StandardHTTPClient) do(ctx context.Context, r interfaces.Request, cancel context.CancelFunc) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		if cancel != nil {
			cancel()
		}
		return nil, err
	}

	for name, value := range r.Headers {
		req.Header.Set(name, value)
	}

	if r.BasicAuth != "" {
		user, pass, _ := strings.Cut(r.BasicAuth, ":")
		req.SetBasicAuth(user, pass)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if cancel != nil {
			cancel()
		}
		return nil, err
	}

	body := resp.Body
	if cancel != nil {
		body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       body,
		headers:    resp.Header,
	}, nil
}

// cancelOnClose releases the per-request timeout once the body is closed
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelOnClose) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}

// Headers returns all response headers, keeping the first value of each
func (r *httpResponse) Headers() map[string]string {
	out := make(map[string]string, len(r.headers))
	for name, values := range r.headers {
		if len(values) > 0 {
			out[name] = values[0]
		}
	}
	return out
}
