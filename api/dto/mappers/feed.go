// ABOUTME: Mappers for converting feed readers and articles into API DTOs
// ABOUTME: Applies limit, order and date format, and optionally sanitizes article HTML

package mappers

import (
	"time"

	"feedreader-api/api/dto/requests"
	"feedreader-api/api/dto/responses"
	"feedreader-api/core/domain"
	"feedreader-api/pkg/utils/html"
)

// FeedView is the read-only surface of a feed reader used by the API
type FeedView interface {
	URL() string
	Type() string
	Title() string
	Description() string
	Link() string
	Language() string
	BuildDate(format string) string
	BuildDateUnix() int64
	Location() *time.Location
	Articles(limit int, order string) []domain.Article
	ErrorMessages() []string
	FromCache() bool
}

// MapOptions controls how a feed is presented
type MapOptions struct {
	requests.FeedQuery

	// Sanitize cleans article descriptions with the UGC HTML policy
	Sanitize bool
}

// ToFeedResponse converts a feed reader to a FeedResponse DTO
func ToFeedResponse(feed FeedView, opts MapOptions) *responses.FeedResponse {
	if feed == nil {
		return nil
	}

	articles := feed.Articles(opts.Limit, opts.Order)
	response := &responses.FeedResponse{
		URL:           feed.URL(),
		Type:          feed.Type(),
		Title:         feed.Title(),
		Description:   feed.Description(),
		Link:          feed.Link(),
		Language:      feed.Language(),
		BuildDate:     feed.BuildDate(opts.DateFormat),
		BuildDateUnix: feed.BuildDateUnix(),
		FromCache:     feed.FromCache(),
		Errors:        feed.ErrorMessages(),
		Articles:      make([]responses.ArticleResponse, 0, len(articles)),
	}

	for _, a := range articles {
		response.Articles = append(response.Articles, ToArticleResponse(a, feed.Location(), opts))
	}

	return response
}

// ToArticleResponse converts a domain Article to an ArticleResponse DTO
func ToArticleResponse(a domain.Article, loc *time.Location, opts MapOptions) responses.ArticleResponse {
	description := a.Description()
	if opts.Sanitize {
		description = html.Sanitize(description)
	}

	return responses.ArticleResponse{
		Title:       a.Title(),
		Description: description,
		Link:        a.Link(),
		Pubdate:     a.Pubdate(opts.DateFormat, loc),
		PubdateUnix: a.PubdateUnix(),
		GUID:        a.GUID(),
		Image:       a.Image(),
	}
}
