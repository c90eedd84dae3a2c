// ABOUTME: Parser contract shared by the RSS, Atom and JSON-Feed decoders
// ABOUTME: Selects a parser by feed type and holds helpers common to all formats

package parser

import (
	"sort"

	"feedreader-api/core/config"
	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
	feedtime "feedreader-api/pkg/utils/time"
)

// Parser converts a raw response body into a Feed.
// Problems with the document are recorded in Feed.Errors; Parse never returns nil.
type Parser interface {
	Parse(body []byte) *domain.Feed
}

// ForType returns the parser for a resolved feed type.
// Returns an UnsupportedTypeError for anything but rss, atom or json.
func ForType(feedType string, logger interfaces.Logger) (Parser, error) {
	switch feedType {
	case config.TypeRSS:
		return NewRSSParser(logger), nil
	case config.TypeAtom:
		return NewAtomParser(logger), nil
	case config.TypeJSON:
		return NewJSONParser(logger), nil
	default:
		return nil, &errors.UnsupportedTypeError{Type: feedType}
	}
}

// sortNewestFirst orders articles by publish timestamp, newest first.
// Articles with equal timestamps keep their document order.
func sortNewestFirst(articles []domain.Article) {
	if len(articles) < 2 {
		return
	}
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PubdateUnix() > articles[j].PubdateUnix()
	})
}

func orNop(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return interfaces.NopLogger{}
	}
	return logger
}

// parseDate converts a feed date string to epoch seconds, 0 when unknown
func parseDate(s string) int64 {
	return feedtime.ParseEpoch(s)
}
