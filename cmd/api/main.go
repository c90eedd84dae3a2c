// ABOUTME: Main entry point for the FeedReader API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"feedreader-api/api"
	"feedreader-api/api/handlers"
	"feedreader-api/api/middleware"
	"feedreader-api/core/interfaces"
	"feedreader-api/core/reader"
	"feedreader-api/infrastructure/cache/memory"
	"feedreader-api/infrastructure/cache/postgres"
	"feedreader-api/infrastructure/cache/redis"
	"feedreader-api/infrastructure/cache/sqlite"
	stdhttp "feedreader-api/infrastructure/http/standard"
	logruslogger "feedreader-api/infrastructure/logger/logrus"
	prommetrics "feedreader-api/infrastructure/metrics/prometheus"
	"feedreader-api/pkg/config"
	"feedreader-api/pkg/featureflags"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(cfg.Log)

	flags := featureflags.NewEnvManagerWithDefaults("FEATURE_", map[featureflags.FeatureFlag]bool{
		featureflags.CacheEnabled:     true,
		featureflags.MetricsEnabled:   true,
		featureflags.RateLimitEnabled: true,
		featureflags.SafeURL:          true,
		featureflags.SanitizeHTML:     true,
	})
	ctx := context.Background()

	logger.Info("Starting FeedReader API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"flags":      flags.GetAllFlags(),
	})

	defaults, err := cfg.ReaderDefaults()
	if err != nil {
		log.Fatalf("Invalid reader defaults: %v", err)
	}
	defaults.CacheEnabled = defaults.CacheEnabled && flags.IsEnabled(ctx, featureflags.CacheEnabled)

	cache, closeCache := newCache(cfg, logger)
	defer closeCache()

	timeout := time.Duration(cfg.Reader.Timeout) * time.Second
	var httpClient interfaces.HTTPClient
	if flags.IsEnabled(ctx, featureflags.SafeURL) {
		httpClient = stdhttp.NewSafeHTTPClient(timeout)
	} else {
		httpClient = stdhttp.NewStandardHTTPClient(timeout)
	}

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	apiConfig := api.APIConfig{
		Logger:      logger,
		CORSOrigins: cfg.Server.CORSOrigins,
	}

	if flags.IsEnabled(ctx, featureflags.MetricsEnabled) {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		deps.Metrics = prommetrics.NewCollector(reg)
		apiConfig.Metrics = prommetrics.Handler(reg)
	}

	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst, 0)
		defer limiter.Stop()
		apiConfig.RateLimiter = limiter
	}

	readerService := reader.NewService(deps, defaults)

	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewFeedHandler(readerService, flags).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(cfg.Cache.Type).RegisterRoutes(humaAPI)

	errorLog := logger.Writer()
	defer errorLog.Close()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     log.New(errorLog, "", 0),
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured cache backend. A backend that cannot be
// reached falls back to the memory cache; "none" disables caching.
func newCache(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, func()) {
	noop := func() {}

	fallback := func(backend string, err error) (interfaces.Cache, func()) {
		logger.Error(fmt.Sprintf("Failed to create %s cache, falling back to memory", backend), map[string]interface{}{
			"error": err.Error(),
		})
		return memory.NewMemoryCache(), noop
	}

	switch cfg.Cache.Type {
	case "none":
		logger.Info("Cache disabled", nil)
		return nil, noop

	case "redis":
		c, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			return fallback("Redis", err)
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
			"json":    cfg.Cache.Redis.JSON,
		})
		return c, func() { c.Close() }

	case "sqlite":
		c, err := sqlite.NewSQLiteCacheWithLogger(cfg.Cache.SQLite.Path, logger)
		if err != nil {
			return fallback("SQLite", err)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return c, func() { c.Close() }

	case "postgres":
		c, err := postgres.NewPostgresCache(cfg.Cache.Postgres)
		if err != nil {
			return fallback("Postgres", err)
		}
		logger.Info("Using Postgres cache", map[string]interface{}{
			"table": cfg.Cache.Postgres.Table,
		})
		return c, func() { c.Close() }

	default:
		logger.Info("Using memory cache", nil)
		if cfg.Cache.Memory.CleanupInterval > 0 {
			return memory.NewMemoryCacheWithCleanup(time.Duration(cfg.Cache.Memory.CleanupInterval) * time.Second), noop
		}
		return memory.NewMemoryCache(), noop
	}
}

func init() {
	fmt.Println(`
    ______              ______                 __
   / ____/__  ___  ____/ / __ \___  ____ _____/ /__  _____
  / /_  / _ \/ _ \/ __  / /_/ / _ \/ __ '/ __  / _ \/ ___/
 / __/ /  __/  __/ /_/ / _, _/  __/ /_/ / /_/ /  __/ /
/_/    \___/\___/\__,_/_/ |_|\___/\__,_/\__,_/\___/_/
	`)
}
