// ABOUTME: JSON-Feed parser mapping top-level keys and items (or news) onto the Feed model
// ABOUTME: Each field takes the first present, non-null key of its fallback chain

package parser

import (
	"bytes"
	"encoding/json"
	"strconv"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
)

// JSONParser decodes JSON-Feed documents and the node-wrapped variant some CMSs emit
type JSONParser struct {
	logger interfaces.Logger
}

// NewJSONParser creates a JSON-Feed parser
func NewJSONParser(logger interfaces.Logger) *JSONParser {
	return &JSONParser{logger: orNop(logger)}
}

// Parse implements Parser. A body that does not decode to a structured value
// records a DecodeError. Arrays and failed bodies are read as an empty object.
func (p *JSONParser) Parse(body []byte) *domain.Feed {
	feed := &domain.Feed{}

	response, err := decodeObject(body)
	if err != nil {
		feed.AddError(&errors.DecodeError{Format: "JSON"})
		response = map[string]interface{}{}
	}

	feed.Title = p.first(response, "title")
	feed.Description = p.first(response, "description")
	feed.Link = p.first(response, "feed_url", "home_page_url")
	p.setArticles(feed, response)

	return feed
}

func decodeObject(body []byte) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	switch obj := v.(type) {
	case map[string]interface{}:
		return obj, nil
	case []interface{}:
		// a list has no named keys
		return map[string]interface{}{}, nil
	default:
		return nil, &errors.DecodeError{Format: "JSON"}
	}
}

func (p *JSONParser) setArticles(feed *domain.Feed, response map[string]interface{}) {
	raw, ok := lookup(response, "items", "news")
	items, isList := raw.([]interface{})
	if !ok || !isList {
		feed.AddError(&errors.FormatValidationError{
			Format:  "json",
			Message: "response does not contain 'items' or 'news' key.",
		})
		return
	}

	articles := make([]domain.Article, 0, len(items))
	for i, rawItem := range items {
		item, ok := rawItem.(map[string]interface{})
		if !ok {
			p.logger.Warn("Skipping JSON feed item that is not an object", map[string]interface{}{
				"index": i,
			})
			continue
		}
		node, _ := item["node"].(map[string]interface{})

		articles = append(articles, domain.NewArticle(domain.ArticleFields{
			Title:       p.firstOf(item, node, []string{"title"}, "title"),
			Description: p.firstOf(item, node, []string{"content_text", "content_html"}, "description"),
			Link:        p.firstOf(item, node, []string{"url", "external_url"}, "path"),
			Pubdate:     parseDate(p.firstOf(item, node, []string{"date_published"}, "date")),
			GUID:        p.firstOf(item, node, []string{"id"}, "guid"),
			Image:       p.first(node, "image"),
		}))
	}

	sortNewestFirst(articles)
	feed.Articles = articles
}

// firstOf looks up keys in item and falls back to nodeKey in the nested node
func (p *JSONParser) firstOf(item, node map[string]interface{}, keys []string, nodeKey string) string {
	if v, ok := lookup(item, keys...); ok {
		return p.stringify(v)
	}
	return p.first(node, nodeKey)
}

// first returns the first present, non-null key of m as a string
func (p *JSONParser) first(m map[string]interface{}, keys ...string) string {
	v, ok := lookup(m, keys...)
	if !ok {
		return ""
	}
	return p.stringify(v)
}

func lookup(m map[string]interface{}, keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (p *JSONParser) stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		p.logger.Warn("Unrecovered JSON value", map[string]interface{}{
			"value": v,
		})
		return ""
	}
}
