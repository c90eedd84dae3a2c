// ABOUTME: XML document helpers shared by the RSS and Atom parsers
// ABOUTME: Decodes the body into a DOM and looks up unprefixed child elements

package parser

import (
	"bytes"

	"github.com/antchfx/xmlquery"

	"feedreader-api/core/errors"
)

// decodeXML parses body and returns its root element.
// A document without any element yields a nil root and no error.
func decodeXML(body []byte) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &errors.DecodeError{Format: "XML"}
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c, nil
		}
	}
	return nil, nil
}

// isElement reports whether n is an element with the given local name and no prefix
func isElement(n *xmlquery.Node, name string) bool {
	return n != nil && n.Type == xmlquery.ElementNode && n.Prefix == "" && n.Data == name
}

// childElement returns the first direct child element called name
func childElement(n *xmlquery.Node, name string) *xmlquery.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, name) {
			return c
		}
	}
	return nil
}

// childElements returns all direct child elements called name, in document order
func childElements(n *xmlquery.Node, name string) []*xmlquery.Node {
	if n == nil {
		return nil
	}
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, name) {
			out = append(out, c)
		}
	}
	return out
}
