// ABOUTME: Atom 1.0 parser mapping <feed> and <entry> elements onto the Feed model
// ABOUTME: Resolves feed and entry links from rel attributes with id fallbacks

package parser

import (
	"github.com/antchfx/xmlquery"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
)

// AtomParser decodes Atom documents
type AtomParser struct {
	normalizer
}

// NewAtomParser creates an Atom parser that reports unrecovered values to logger
func NewAtomParser(logger interfaces.Logger) *AtomParser {
	return &AtomParser{normalizer{logger: orNop(logger)}}
}

// Parse implements Parser
func (p *AtomParser) Parse(body []byte) *domain.Feed {
	feed := &domain.Feed{}

	root, err := decodeXML(body)
	if err != nil {
		feed.AddError(err)
		return feed
	}

	if !isElement(root, "feed") {
		feed.AddError(&errors.FormatValidationError{
			Format:  "atom",
			Message: "URL does not return Atom content.",
		})
		return feed
	}

	feed.Title = p.text(childElement(root, "title"))
	feed.Description = p.text(childElement(root, "subtitle"))
	feed.Link = p.feedLink(root)
	p.setArticles(feed, root)
	if updated := childElement(root, "updated"); updated != nil {
		feed.BuildDate = parseDate(p.text(updated))
	}

	return feed
}

// feedLink prefers rel="self", then the alternate link, then the feed id
func (p *AtomParser) feedLink(root *xmlquery.Node) string {
	links := childElements(root, "link")

	for _, l := range links {
		if l.SelectAttr("rel") == "self" {
			return l.SelectAttr("href")
		}
	}
	if href := alternateHref(links); href != "" {
		return href
	}

	return p.text(childElement(root, "id"))
}

// entryLink prefers the alternate link, then any link, then the entry id
func (p *AtomParser) entryLink(entry *xmlquery.Node) string {
	links := childElements(entry, "link")

	if href := alternateHref(links); href != "" {
		return href
	}
	for _, l := range links {
		if href := l.SelectAttr("href"); href != "" {
			return href
		}
	}

	return p.text(childElement(entry, "id"))
}

// alternateHref returns the href of the first alternate link. A missing rel means alternate.
func alternateHref(links []*xmlquery.Node) string {
	for _, l := range links {
		rel := l.SelectAttr("rel")
		if rel == "" || rel == "alternate" {
			if href := l.SelectAttr("href"); href != "" {
				return href
			}
		}
	}
	return ""
}

func (p *AtomParser) setArticles(feed *domain.Feed, root *xmlquery.Node) {
	entries := childElements(root, "entry")
	if len(entries) == 0 {
		feed.AddError(&errors.FormatValidationError{
			Format:  "atom",
			Message: "response does not contain <entry> element.",
		})
		return
	}

	articles := make([]domain.Article, 0, len(entries))
	for _, entry := range entries {
		var pubdate int64
		if updated := childElement(entry, "updated"); updated != nil {
			pubdate = parseDate(p.text(updated))
		} else if published := childElement(entry, "published"); published != nil {
			pubdate = parseDate(p.text(published))
		}

		articles = append(articles, domain.NewArticle(domain.ArticleFields{
			Title:       p.text(childElement(entry, "title")),
			Description: p.text(childElement(entry, "summary")),
			Link:        p.entryLink(entry),
			Pubdate:     pubdate,
			GUID:        p.text(childElement(entry, "id")),
		}))
	}

	sortNewestFirst(articles)
	feed.Articles = articles
}
