// ABOUTME: Article domain model represents a single item or entry within a feed
// ABOUTME: Immutable value object exposing read accessors and strftime date formatting

package domain

import (
	"time"

	"github.com/ncruces/go-strftime"
)

// DefaultDateFormat is the strftime pattern used when a caller passes an empty format.
const DefaultDateFormat = "%c"

// ArticleFields carries the values used to construct an Article
type ArticleFields struct {
	Title       string
	Description string
	Link        string
	Pubdate     int64 // epoch seconds, 0 when unknown
	GUID        string
	Image       string
}

// Article is one feed item. It cannot be changed after NewArticle returns.
type Article struct {
	title       string
	description string
	link        string
	pubdate     int64
	guid        string
	image       string
}

// NewArticle creates an Article from the given fields
func NewArticle(f ArticleFields) Article {
	return Article{
		title:       f.Title,
		description: f.Description,
		link:        f.Link,
		pubdate:     f.Pubdate,
		guid:        f.GUID,
		image:       f.Image,
	}
}

// Title returns the headline of the article
func (a Article) Title() string {
	return a.title
}

// Description returns the summary of the article. It may contain HTML.
func (a Article) Description() string {
	return a.description
}

// Link returns the URL of the full article
func (a Article) Link() string {
	return a.link
}

// PubdateUnix returns the publish timestamp in epoch seconds, 0 when unknown
func (a Article) PubdateUnix() int64 {
	return a.pubdate
}

// Pubdate formats the publish timestamp with a strftime pattern in loc.
// An unknown date yields an empty string.
func (a Article) Pubdate(format string, loc *time.Location) string {
	return FormatEpoch(a.pubdate, format, loc)
}

// GUID returns the opaque identifier of the article
func (a Article) GUID() string {
	return a.guid
}

// Image returns the URL of the article image, empty if absent
func (a Article) Image() string {
	return a.image
}

// FormatEpoch renders epoch seconds with a strftime pattern.
// Zero is the "unknown" sentinel and renders as an empty string; a nil loc means UTC.
func FormatEpoch(epoch int64, format string, loc *time.Location) string {
	if epoch == 0 {
		return ""
	}
	if format == "" {
		format = DefaultDateFormat
	}
	if loc == nil {
		loc = time.UTC
	}
	return strftime.Format(format, time.Unix(epoch, 0).In(loc))
}
