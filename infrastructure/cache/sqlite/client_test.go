package sqlite

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"feedreader-api/core/domain"
	"feedreader-api/core/interfaces"
)

func newTestCache(t *testing.T) (*Client, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	cache, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache, path
}

func TestSQLiteCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	key := domain.CacheKey("https://example.com/feed.xml")
	value := []byte(`{"header":{"ETag":"\"v1\""},"content":"<rss/>"}`)

	if err := cache.Set(ctx, key, value, time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !bytes.Equal(got, value) {
		t.Errorf("Get() = %s, want %s", got, value)
	}
}

func TestSQLiteCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.Get(context.Background(), "missing")
	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get() error = %v, want ErrCacheMiss", err)
	}
}

func TestSQLiteCache_Expiry(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "short", []byte("v"), time.Second); err != nil {
		t.Fatal(err)
	}
	if err := cache.Set(ctx, "forever", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}

	time.Sleep(2100 * time.Millisecond)

	if _, err := cache.Get(ctx, "short"); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("expired key: Get() error = %v, want ErrCacheMiss", err)
	}
	if exists, _ := cache.Exists(ctx, "short"); exists {
		t.Error("expired key should not exist")
	}
	if _, err := cache.Get(ctx, "forever"); err != nil {
		t.Errorf("ttl 0 key: Get() error = %v", err)
	}

	// The next write purges expired rows
	stats, _ := cache.Stats()
	if stats["total_entries"] != 2 {
		t.Errorf("total_entries before write = %v, want 2", stats["total_entries"])
	}
	if err := cache.Set(ctx, "other", []byte("v"), time.Hour); err != nil {
		t.Fatal(err)
	}
	stats, _ = cache.Stats()
	if stats["total_entries"] != 2 {
		t.Errorf("total_entries after write = %v, want 2", stats["total_entries"])
	}
}

func TestSQLiteCache_ExistsAndDelete(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("v"), time.Hour)

	exists, err := cache.Exists(ctx, "key")
	if err != nil || !exists {
		t.Fatalf("Exists() = %v, %v; want true, nil", exists, err)
	}

	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}

	exists, _ = cache.Exists(ctx, "key")
	if exists {
		t.Error("deleted key should not exist")
	}
}

func TestSQLiteCache_SurvivesReopen(t *testing.T) {
	cache, path := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("persisted"), 0)
	cache.Close()

	reopened, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, "key")
	if err != nil || string(got) != "persisted" {
		t.Errorf("Get() after reopen = %q, %v", got, err)
	}
}

func TestSQLiteCache_Validation(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "", []byte("v"), time.Hour); err == nil {
		t.Error("Expected error for empty key in Set")
	}
	if _, err := cache.Get(ctx, ""); err == nil {
		t.Error("Expected error for empty key in Get")
	}
	if _, err := cache.Exists(ctx, ""); err == nil {
		t.Error("Expected error for empty key in Exists")
	}
	if err := cache.Delete(ctx, ""); err == nil {
		t.Error("Expected error for empty key in Delete")
	}
	if err := cache.Set(ctx, "key", nil, time.Hour); err == nil {
		t.Error("Expected error for nil value")
	}
}

func TestSQLiteCache_InjectionKeysAreData(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	keys := []string{
		"key'; DROP TABLE cache; --",
		"key' OR '1'='1",
		"key' UNION SELECT null, null, null--",
		"key'); INSERT INTO cache VALUES ('hack', 'data', 9999999999); --",
	}

	for _, key := range keys {
		if err := cache.Set(ctx, key, []byte(key), time.Hour); err != nil {
			t.Fatalf("Set(%q) error = %v", key, err)
		}
	}

	for _, key := range keys {
		got, err := cache.Get(ctx, key)
		if err != nil || string(got) != key {
			t.Errorf("Get(%q) = %q, %v", key, got, err)
		}
	}

	if _, err := cache.Get(ctx, "hack"); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Error("injected row must not exist")
	}
}

func TestSQLiteCache_ImplementsCache(t *testing.T) {
	var _ interfaces.Cache = (*Client)(nil)
}
