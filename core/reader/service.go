// ABOUTME: Reader service opens feeds: fetch, type resolution and parsing in one pass
// ABOUTME: Holds the process-wide defaults and the fetcher shared by all readers

package reader

import (
	"context"
	"sync"

	"feedreader-api/core/config"
	"feedreader-api/core/errors"
	"feedreader-api/core/fetch"
	"feedreader-api/core/interfaces"
	"feedreader-api/core/parser"
)

// Service creates FeedReaders from a URL and per-call options
type Service struct {
	defaults config.Defaults
	fetcher  *fetch.Fetcher
	logger   interfaces.Logger
	metrics  interfaces.Metrics
}

// NewService creates a reader service. defaults are copied and used as the base
// of every Open call.
func NewService(deps interfaces.Dependencies, defaults config.Defaults) *Service {
	deps = deps.WithDefaults()
	defaults.URL = defaults.URL.Clone()

	return &Service{
		defaults: defaults,
		fetcher:  fetch.NewFetcher(deps, defaults.CacheEnabled),
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}
}

// Defaults returns a copy of the process-wide defaults
func (s *Service) Defaults() config.Defaults {
	d := s.defaults
	d.URL = d.URL.Clone()
	return d
}

// Open fetches and parses url. It never fails: problems are collected in the
// returned reader's Errors and its accessors fall back to zero values.
func (s *Service) Open(ctx context.Context, url string, opts ...config.Option) *FeedReader {
	options := s.defaults.Resolve(opts...)
	r := &FeedReader{
		url:      url,
		options:  options,
		location: s.defaults.Location,
	}

	result, fetchErrs := s.fetcher.Fetch(ctx, url, options)
	r.result = result
	r.fromCache = result.FromCache
	r.addErrors(fetchErrs...)

	if !result.HasContent() {
		s.finish(r)
		return r
	}

	feedType, err := fetch.ResolveType(options.Feed.Type, result)
	if err != nil {
		r.addErrors(err)
		s.finish(r)
		return r
	}
	r.feedType = feedType

	p, err := parser.ForType(feedType, s.logger)
	if err != nil {
		r.addErrors(err)
		s.finish(r)
		return r
	}

	r.feed = p.Parse([]byte(result.Body))
	r.addErrors(r.feed.Errors...)
	s.metrics.RecordArticles(feedType, len(r.feed.Articles))

	s.finish(r)
	return r
}

// OpenAll opens several feeds concurrently with the same options.
// Readers are returned in the order of urls.
func (s *Service) OpenAll(ctx context.Context, urls []string, opts ...config.Option) []*FeedReader {
	readers := make([]*FeedReader, len(urls))
	var wg sync.WaitGroup

	for i, url := range urls {
		wg.Add(1)
		go func(index int, url string) {
			defer wg.Done()
			readers[index] = s.Open(ctx, url, opts...)
		}(i, url)
	}

	wg.Wait()
	return readers
}

func (s *Service) finish(r *FeedReader) {
	for _, err := range r.errs {
		s.metrics.RecordError(errors.Kind(err))
	}

	fields := map[string]interface{}{
		"url":        r.url,
		"type":       r.feedType,
		"from_cache": r.fromCache,
		"articles":   len(r.feedArticles()),
	}
	if len(r.errs) > 0 {
		fields["errors"] = errors.Messages(r.errs)
		s.logger.Warn("Feed opened with errors", fields)
		return
	}
	s.logger.Debug("Feed opened", fields)
}
