// Package core contains the feed reading logic of the FeedReader API.
// It is framework-agnostic and can be used without the HTTP server.
//
// The core package is organized into several sub-packages:
//
//   - config: Process-wide defaults and per-feed options
//   - domain: Feed, Article and the cached fetch record
//   - errors: Typed errors collected while reading a feed
//   - fetch: HTTP fetching with cache revalidation and type detection
//   - parser: RSS, Atom and JSON-Feed parsers
//   - reader: The service that opens feeds and the FeedReader result
//   - interfaces: Contracts for external dependencies (cache, HTTP, logger, metrics)
//
// # Design Principles
//
//   - No external framework dependencies
//   - All external dependencies are injected via interfaces
//   - Reading a feed never returns a Go error; problems are collected on the reader
//
// # Usage Example
//
//	import (
//	    "feedreader-api/core/config"
//	    "feedreader-api/core/interfaces"
//	    "feedreader-api/core/reader"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache, nil disables caching
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	service := reader.NewService(deps, config.DefaultDefaults())
//
//	fr := service.Open(ctx, "https://example.com/feed.rss", config.WithCacheValidity(60))
//	if fr.HasErrors() {
//	    log.Println(fr.ErrorMessages())
//	}
//	for _, a := range fr.Articles(10, "standard") {
//	    fmt.Println(a.Title(), a.Pubdate("%Y-%m-%d", fr.Location()))
//	}
package core
