// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides sensible defaults for cache, HTTP client and logger

package feedreader

import (
	"os"
	"time"

	"feedreader-api/core/config"
	"feedreader-api/core/interfaces"
	"feedreader-api/infrastructure/cache/memory"
	"feedreader-api/infrastructure/cache/sqlite"
	"feedreader-api/infrastructure/http/standard"
	logruslogger "feedreader-api/infrastructure/logger/logrus"

	"github.com/sirupsen/logrus"
)

// defaultCleanupInterval is how often the default memory cache drops expired entries
const defaultCleanupInterval = 10 * time.Minute

// defaultConfig returns the default configuration
func defaultConfig() Config {
	return Config{
		Cache:      DefaultMemoryCache(),
		HTTPClient: DefaultHTTPClient(),
		Logger:     DefaultLogger(),
		Defaults:   config.DefaultDefaults(),
	}
}

// DefaultHTTPClient returns a standard HTTP client. Per-feed timeouts are
// applied on each request, so the client itself has none.
func DefaultHTTPClient() interfaces.HTTPClient {
	return standard.NewStandardHTTPClient(0)
}

// DefaultMemoryCache returns a memory cache with periodic cleanup
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCacheWithCleanup(defaultCleanupInterval)
}

// DefaultSQLiteCache returns a SQLite cache stored at filePath
func DefaultSQLiteCache(filePath string) (interfaces.Cache, error) {
	cache, err := sqlite.NewSQLiteCache(filePath)
	if err != nil {
		return nil, NewError(ErrorTypeConfiguration, "failed to open sqlite cache").
			WithCause(err).
			WithContext("path", filePath)
	}
	return cache, nil
}

// DefaultLogger returns a logger writing warnings and errors to stderr
func DefaultLogger() interfaces.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logruslogger.NewWithLogger(l)
}

// QuietLogger returns a logger that discards all output
func QuietLogger() interfaces.Logger {
	return interfaces.NopLogger{}
}
