package interfaces

import (
	"context"
	"io"
	"time"
)

// Request describes one outgoing feed request
type Request struct {
	// URL is the absolute feed URL
	URL string

	// Headers are sent verbatim with the request
	Headers map[string]string

	// BasicAuth holds "user:password" credentials; empty means none
	BasicAuth string

	// Timeout bounds the whole request; zero uses the client default
	Timeout time.Duration
}

// HTTPClient defines the interface for making HTTP requests.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations (standard library, SSRF-guarded client, etc.)
type HTTPClient interface {
	// Get performs an HTTP GET request described by req.
	// Non-2xx statuses are not errors; only transport failures are.
	Get(ctx context.Context, req Request) (Response, error)
}

// Response defines the interface for HTTP responses.
// This abstraction allows different HTTP client implementations to provide
// their own response types while maintaining a consistent interface.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string

	// Headers returns all response headers, one value per name.
	Headers() map[string]string
}
