// ABOUTME: Postgres cache implementation using lib/pq
// ABOUTME: Keeps feed records in a single key/value table with per-row expiry

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"feedreader-api/core/interfaces"
	"feedreader-api/pkg/config"
)

// PostgresCache implements the Cache interface on a Postgres table
type PostgresCache struct {
	db    *sql.DB
	table string

	getQuery    string
	setQuery    string
	existsQuery string
	deleteQuery string
	purgeQuery  string
}

// NewPostgresCache opens the database, checks the connection and creates the table
func NewPostgresCache(cfg config.PostgresConfig) (*PostgresCache, error) {
	if cfg.DSN == "" {
		return nil, errors.New("postgres dsn cannot be empty")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	c := newPostgresCache(db, cfg.Table)
	if err := c.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return c, nil
}

func newPostgresCache(db *sql.DB, table string) *PostgresCache {
	if table == "" {
		table = "feed_cache"
	}
	t := pq.QuoteIdentifier(table)

	return &PostgresCache{
		db:       db,
		table:    t,
		getQuery: `SELECT value FROM ` + t + ` WHERE key = $1 AND (expires_at IS NULL OR expires_at > now())`,
		setQuery: `INSERT INTO ` + t + ` (key, value, expires_at) VALUES ($1, $2, $3)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`,
		existsQuery: `SELECT EXISTS (SELECT 1 FROM ` + t + ` WHERE key = $1 AND (expires_at IS NULL OR expires_at > now()))`,
		deleteQuery: `DELETE FROM ` + t + ` WHERE key = $1`,
		purgeQuery:  `DELETE FROM ` + t + ` WHERE expires_at IS NOT NULL AND expires_at <= now()`,
	}
}

func (c *PostgresCache) migrate(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+c.table+` (
		key TEXT PRIMARY KEY,
		value BYTEA NOT NULL,
		expires_at TIMESTAMPTZ
	)`)
	return err
}

// Get retrieves a live value; expired rows are misses
func (c *PostgresCache) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := c.db.QueryRowContext(ctx, c.getQuery, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, interfaces.ErrCacheMiss
		}
		return nil, err
	}
	return value, nil
}

// Set upserts a value and purges expired rows; ttl <= 0 stores without expiry
func (c *PostgresCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt sql.NullTime
	if ttl > 0 {
		expiresAt = sql.NullTime{Time: time.Now().Add(ttl), Valid: true}
	}

	if _, err := c.db.ExecContext(ctx, c.setQuery, key, value, expiresAt); err != nil {
		return err
	}

	_, err := c.db.ExecContext(ctx, c.purgeQuery)
	return err
}

// Exists reports whether a live value is stored under key
func (c *PostgresCache) Exists(ctx context.Context, key string) (bool, error) {
	var ok bool
	if err := c.db.QueryRowContext(ctx, c.existsQuery, key).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// Delete removes key; deleting a missing key is not an error
func (c *PostgresCache) Delete(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, c.deleteQuery, key)
	return err
}

// Close closes the database connection
func (c *PostgresCache) Close() error {
	return c.db.Close()
}
