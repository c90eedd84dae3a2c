// ABOUTME: RSS 2.0 parser mapping <channel> and <item> elements onto the Feed model
// ABOUTME: Validates the rss root and channel element before populating any field

package parser

import (
	"github.com/antchfx/xmlquery"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
)

// RSSParser decodes RSS documents
type RSSParser struct {
	normalizer
}

// NewRSSParser creates an RSS parser that reports unrecovered values to logger
func NewRSSParser(logger interfaces.Logger) *RSSParser {
	return &RSSParser{normalizer{logger: orNop(logger)}}
}

// Parse implements Parser
func (p *RSSParser) Parse(body []byte) *domain.Feed {
	feed := &domain.Feed{}

	root, err := decodeXML(body)
	if err != nil {
		feed.AddError(err)
		return feed
	}

	if !isElement(root, "rss") {
		feed.AddError(&errors.FormatValidationError{
			Format:  "rss",
			Message: "URL does not return RSS content.",
		})
		return feed
	}

	channel := childElement(root, "channel")
	if channel == nil {
		feed.AddError(&errors.FormatValidationError{
			Format:  "rss",
			Message: "RSS content does not contain <channel> element.",
		})
		return feed
	}

	feed.Title = p.text(childElement(channel, "title"))
	feed.Description = p.text(childElement(channel, "description"))
	feed.Link = p.text(childElement(channel, "link"))
	p.setArticles(feed, channel)
	feed.Language = p.text(childElement(channel, "language"))
	if lbd := childElement(channel, "lastBuildDate"); lbd != nil {
		feed.BuildDate = parseDate(p.text(lbd))
	}

	return feed
}

func (p *RSSParser) setArticles(feed *domain.Feed, channel *xmlquery.Node) {
	items := childElements(channel, "item")
	if len(items) == 0 {
		feed.AddError(&errors.FormatValidationError{
			Format:  "rss",
			Message: "response does not contain <item> element.",
		})
		return
	}

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		var pubdate int64
		if pd := childElement(item, "pubDate"); pd != nil {
			pubdate = parseDate(p.text(pd))
		}

		articles = append(articles, domain.NewArticle(domain.ArticleFields{
			Title:       p.text(childElement(item, "title")),
			Description: p.text(childElement(item, "description")),
			Link:        p.text(childElement(item, "link")),
			Pubdate:     pubdate,
			GUID:        p.text(childElement(item, "guid")),
		}))
	}

	sortNewestFirst(articles)
	feed.Articles = articles
}
