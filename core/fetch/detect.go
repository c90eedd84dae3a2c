// ABOUTME: Feed type resolution from the declared type and the response Content-Type
// ABOUTME: Uses a content sniffer only to enrich the error when detection fails

package fetch

import (
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"

	"feedreader-api/core/config"
	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
)

var contentTypePattern = regexp.MustCompile(`(rss|atom|json)`)

// ResolveType returns the feed type to parse result with.
// A forced type is returned unchanged; "auto" is resolved from the Content-Type
// header (any casing), first match of rss, atom or json wins.
func ResolveType(feedType string, result *domain.FetchResult) (string, error) {
	if feedType != config.TypeAuto {
		return feedType, nil
	}

	if result == nil || len(result.Header) == 0 {
		return "", &errors.TypeDetectionError{HeaderMissing: true}
	}

	contentType, _ := result.HeaderValue("Content-Type")
	if m := contentTypePattern.FindStringSubmatch(strings.ToLower(contentType)); m != nil {
		return m[1], nil
	}

	return "", &errors.TypeDetectionError{
		ContentType: contentType,
		Suggested:   sniffType(result.Body),
	}
}

// sniffType guesses the format from the body, "" when unknown
func sniffType(body string) string {
	switch gofeed.DetectFeedType(strings.NewReader(body)) {
	case gofeed.FeedTypeRSS:
		return config.TypeRSS
	case gofeed.FeedTypeAtom:
		return config.TypeAtom
	case gofeed.FeedTypeJSON:
		return config.TypeJSON
	default:
		return ""
	}
}
