// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"feedreader-api/api/middleware"
	"feedreader-api/core/interfaces"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// CORSOrigins lists allowed origins; empty allows all
	CORSOrigins []string

	// RateLimiter, when set, limits requests per client IP
	RateLimiter *middleware.RateLimiter

	// Metrics, when set, is mounted at /metrics outside the OpenAPI document
	Metrics http.Handler
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-Cache", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}
}

func humaConfig() huma.Config {
	config := huma.DefaultConfig("FeedReader API", "1.0.0")
	config.Info.Description = "Fetches, caches and parses RSS, Atom and JSON feeds"
	return config
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	router := chi.NewRouter()
	router.Use(cors.Handler(corsOptions(nil)))

	// The OpenAPI document is available at /openapi.json and the docs UI at /docs
	return humachi.New(router, humaConfig()), router
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS should be first so preflights are answered before limiting
	router.Use(cors.Handler(corsOptions(cfg.CORSOrigins)))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimiter != nil {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimiter))
	}

	if cfg.Metrics != nil {
		router.Handle("/metrics", cfg.Metrics)
	}

	return humachi.New(router, humaConfig()), router
}
