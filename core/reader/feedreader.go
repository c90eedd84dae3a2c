// ABOUTME: FeedReader is the read-only result of opening one feed URL
// ABOUTME: Exposes feed metadata, ordered article queries, errors and a debug snapshot

package reader

import (
	"time"

	"feedreader-api/core/config"
	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
)

// NoLimit makes Articles return every article
const NoLimit = -1

// Article orders accepted by Articles
const (
	OrderStandard = "standard"
	OrderReverse  = "reverse"
)

// FeedReader holds the outcome of one Open call. It has no update methods;
// fetching again requires a new reader.
type FeedReader struct {
	url       string
	options   config.Options
	location  *time.Location
	result    *domain.FetchResult
	feed      *domain.Feed
	feedType  string
	fromCache bool
	errs      []error
}

func (r *FeedReader) addErrors(errs ...error) {
	for _, err := range errs {
		if err != nil {
			r.errs = append(r.errs, err)
		}
	}
}

// URL returns the requested feed URL
func (r *FeedReader) URL() string {
	return r.url
}

// Options returns the resolved options the feed was opened with
func (r *FeedReader) Options() config.Options {
	o := r.options
	o.URL = o.URL.Clone()
	return o
}

// Type returns the resolved feed type, empty when it could not be determined
func (r *FeedReader) Type() string {
	return r.feedType
}

// Title returns the feed title
func (r *FeedReader) Title() string {
	if r.feed == nil {
		return ""
	}
	return r.feed.Title
}

// Description returns the feed description
func (r *FeedReader) Description() string {
	if r.feed == nil {
		return ""
	}
	return r.feed.Description
}

// Link returns the feed link as declared by the document
func (r *FeedReader) Link() string {
	if r.feed == nil {
		return ""
	}
	return r.feed.Link
}

// Language returns the declared language code (RSS only)
func (r *FeedReader) Language() string {
	if r.feed == nil {
		return ""
	}
	return r.feed.Language
}

// BuildDateUnix returns the build date in epoch seconds, 0 when unknown
func (r *FeedReader) BuildDateUnix() int64 {
	if r.feed == nil {
		return 0
	}
	return r.feed.BuildDate
}

// BuildDate formats the build date with a strftime pattern ("%c" when empty).
// An unknown build date yields an empty string.
func (r *FeedReader) BuildDate(format string) string {
	return domain.FormatEpoch(r.BuildDateUnix(), format, r.location)
}

// Location returns the time zone dates are formatted in
func (r *FeedReader) Location() *time.Location {
	if r.location == nil {
		return time.UTC
	}
	return r.location
}

// Articles returns up to limit articles. OrderStandard lists newest first,
// OrderReverse oldest first; the order is applied before the limit.
// Pass NoLimit (any negative value) for all articles.
func (r *FeedReader) Articles(limit int, order string) []domain.Article {
	src := r.feedArticles()
	out := make([]domain.Article, len(src))
	copy(out, src)

	if order == OrderReverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	if limit >= 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (r *FeedReader) feedArticles() []domain.Article {
	if r.feed == nil {
		return nil
	}
	return r.feed.Articles
}

// Errors returns fetch errors followed by parse errors, in the order they occurred
func (r *FeedReader) Errors() []error {
	return append([]error(nil), r.errs...)
}

// ErrorMessages returns the errors as human-readable strings
func (r *FeedReader) ErrorMessages() []string {
	return errors.Messages(r.errs)
}

// HasErrors reports whether any error was recorded
func (r *FeedReader) HasErrors() bool {
	return len(r.errs) > 0
}

// FromCache reports whether the content was served from the cache after a 304
func (r *FeedReader) FromCache() bool {
	return r.fromCache
}
