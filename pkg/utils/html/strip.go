// ABOUTME: HTML utilities for stripping tags, decoding entities and sanitizing markup
// ABOUTME: Used to decode html-typed feed text and to clean article HTML before it leaves the API

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// StripHTML removes all tags from s and decodes its entities.
// Input that cannot be parsed is returned unchanged.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	return doc.Text()
}

// articlePolicy allows the markup commonly found in feed descriptions
var articlePolicy = newArticlePolicy()

func newArticlePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)
	return p
}

// Sanitize removes scripts, event handlers and other unsafe markup from s
// while keeping basic formatting, links and images.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return articlePolicy.Sanitize(s)
}
