// Package api provides the HTTP API layer for the feed reader.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//   - GET /feed reads one feed. Query parameters: url, type, useCache,
//     cacheValidity, basicAuth, timeout, limit, order, dateFormat, strict, debug
//   - POST /feeds reads several feeds concurrently
//   - GET /health reports service status
//   - GET /metrics serves Prometheus metrics when enabled
//
// The OpenAPI document is available at /openapi.json and the docs UI at /docs.
//
// # Middleware
//
// - Request logging with request IDs (X-Request-ID)
// - Rate limiting per client IP
// - CORS handling
//
// # Usage Example
//
//	limiter := middleware.NewRateLimiter(5, 10, 0)
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:      logger,
//	    RateLimiter: limiter,
//	})
//
//	handlers.NewFeedHandler(readerService, flags).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// A feed that could not be read is still answered with 200 and its errors
// listed in the body. With strict=true the first error is mapped to an
// RFC 7807 problem response:
//
//	{
//	    "status": 401,
//	    "title": "Unauthorized",
//	    "detail": "Wrong credentials for 'basicAuth' option."
//	}
package api
