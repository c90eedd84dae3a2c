// ABOUTME: Text normalizer for XML element values found in RSS and Atom documents
// ABOUTME: Maps absent, plain, typed and nested values to plain strings

package parser

import (
	"strings"

	"github.com/antchfx/xmlquery"

	"feedreader-api/core/interfaces"
	"feedreader-api/pkg/utils/html"
)

type textKind int

const (
	textAbsent textKind = iota
	textPlain
	textTyped
	textNested
)

// textValue is the decoded shape of one XML element
type textValue struct {
	kind    textKind
	typ     string // value of the type attribute, typed and nested values only
	value   string
	element string
}

// valueOf classifies an element. A nil node is absent.
func valueOf(n *xmlquery.Node) textValue {
	if n == nil {
		return textValue{kind: textAbsent}
	}

	v := textValue{element: n.Data, typ: n.SelectAttr("type")}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			v.kind = textNested
			return v
		}
	}

	v.value = strings.TrimSpace(n.InnerText())
	if len(n.Attr) == 0 {
		v.kind = textPlain
	} else {
		v.kind = textTyped
	}
	return v
}

// normalizer turns text values into strings and reports shapes it cannot handle
type normalizer struct {
	logger interfaces.Logger
}

// toText returns the plain string for v. Unhandled shapes yield "" and a warning.
func (n normalizer) toText(v textValue) string {
	switch v.kind {
	case textAbsent:
		return ""
	case textPlain:
		return v.value
	case textTyped:
		switch v.typ {
		case "html":
			return html.StripHTML(v.value)
		case "text", "":
			return v.value
		}
	}

	n.logger.Warn("Unrecovered text value", map[string]interface{}{
		"element": v.element,
		"type":    v.typ,
	})
	return ""
}

// text is shorthand for toText(valueOf(node))
func (n normalizer) text(node *xmlquery.Node) string {
	return n.toText(valueOf(node))
}
