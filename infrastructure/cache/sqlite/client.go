// ABOUTME: SQLite-based cache implementation for persistent caching
// ABOUTME: Provides a file-based cache that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"feedreader-api/core/interfaces"
)

const (
	schema = `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);
	`

	// expiry 0 marks an entry without TTL
	getQuery     = "SELECT value FROM cache WHERE key = ? AND (expiry = 0 OR expiry > ?)"
	existsQuery  = "SELECT COUNT(*) FROM cache WHERE key = ? AND (expiry = 0 OR expiry > ?)"
	setQuery     = "INSERT OR REPLACE INTO cache (key, value, expiry) VALUES (?, ?, ?)"
	deleteQuery  = "DELETE FROM cache WHERE key = ?"
	cleanupQuery = "DELETE FROM cache WHERE expiry != 0 AND expiry <= ?"
)

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	logger   interfaces.Logger
}

// NewSQLiteCache creates a new SQLite cache client
func NewSQLiteCache(filePath string) (*Client, error) {
	return NewSQLiteCacheWithLogger(filePath, nil)
}

// NewSQLiteCacheWithLogger creates a SQLite cache client that reports suspicious keys to logger
func NewSQLiteCacheWithLogger(filePath string, logger interfaces.Logger) (*Client, error) {
	if filePath == "" {
		filePath = "cache.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Client{
		db:       db,
		filePath: filePath,
		logger:   logger,
	}, nil
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key, c.logger); err != nil {
		return nil, err
	}

	var value []byte
	err := c.db.QueryRowContext(ctx, getQuery, key, time.Now().Unix()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value in the cache with TTL. A TTL of 0 never expires.
// Expired entries are purged on every write.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ValidateKey(key, c.logger); err != nil {
		return err
	}
	if err := ValidateValue(value); err != nil {
		return err
	}

	now := time.Now()
	var expiry int64
	if ttl > 0 {
		expiry = now.Add(ttl).Unix()
	}

	if _, err := c.db.ExecContext(ctx, setQuery, key, value, expiry); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	if _, err := c.db.ExecContext(ctx, cleanupQuery, now.Unix()); err != nil {
		return fmt.Errorf("failed to purge expired values: %w", err)
	}

	return nil
}

// Exists reports whether a live value is stored under key
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	if err := ValidateKey(key, c.logger); err != nil {
		return false, err
	}

	var count int
	if err := c.db.QueryRowContext(ctx, existsQuery, key, time.Now().Unix()).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check value: %w", err)
	}
	return count > 0, nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := ValidateKey(key, c.logger); err != nil {
		return err
	}

	if _, err := c.db.ExecContext(ctx, deleteQuery, key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// Clear removes all values from the cache
func (c *Client) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM cache"); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

// Stats returns cache statistics
func (c *Client) Stats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var count int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM cache").Scan(&count); err != nil {
		return nil, err
	}
	stats["total_entries"] = count

	var expired int
	err := c.db.QueryRow("SELECT COUNT(*) FROM cache WHERE expiry != 0 AND expiry <= ?", time.Now().Unix()).Scan(&expired)
	if err != nil {
		return nil, err
	}
	stats["expired_entries"] = expired

	// Database file size
	var pageCount, pageSize int
	if err := c.db.QueryRow("PRAGMA page_count").Scan(&pageCount); err == nil {
		if err := c.db.QueryRow("PRAGMA page_size").Scan(&pageSize); err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}

	stats["file_path"] = c.filePath

	return stats, nil
}
