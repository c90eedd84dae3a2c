// ABOUTME: Fetch domain models for the transient HTTP result and the persisted cache record
// ABOUTME: CacheRecord mirrors the {header, content} layout stored under md5(url)

package domain

import (
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"strings"
)

// FetchResult is the outcome of one feed request. It is produced once per
// FeedReader and never persisted.
type FetchResult struct {
	StatusCode int
	Header     map[string]string
	Body       string
	FromCache  bool

	// RequestHeader holds the headers that were sent, conditional headers included
	RequestHeader map[string]string
}

// HasContent reports whether Header and Body hold a usable response:
// a fresh 200 or a 304 answered from the cache
func (r *FetchResult) HasContent() bool {
	return r != nil && (r.StatusCode == http.StatusOK || r.FromCache)
}

// HeaderValue returns the value of a header, matching the name in any casing
func (r *FetchResult) HeaderValue(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	return lookupHeader(r.Header, name)
}

// CacheRecord is the stored form of a successful response
type CacheRecord struct {
	Header  map[string]string `json:"header"`
	Content string            `json:"content"`
}

// HeaderValue returns the value of a stored header, matching the name in any casing
func (c *CacheRecord) HeaderValue(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	return lookupHeader(c.Header, name)
}

// CacheKey returns the cache key for a feed URL: the hex md5 digest of the URL
func CacheKey(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:])
}

func lookupHeader(header map[string]string, name string) (string, bool) {
	if v, ok := header[name]; ok {
		return v, true
	}
	for k, v := range header {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}
