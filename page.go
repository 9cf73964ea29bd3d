package sitechat

import "strings"

// Anchor is a link found on a page.
type Anchor struct {
	Text string
	Href string
}

// PageText holds the text extracted from one fetched page.
type PageText struct {
	URL string

	// Text is the visible text of the whole document.
	Text string

	// Header and Footer repeat the text of header and footer regions so
	// that contact details and navigation labels are not lost when the
	// aggregate is cut short.
	Header string
	Footer string

	Anchors []Anchor
}

// String flattens the page into the form used for aggregation: the whole
// text, then footer, then header, then one line per anchor.
func (p *PageText) String() string {
	if p == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range []string{p.Text, p.Footer, p.Header} {
		if part == "" {
			continue
		}
		sb.WriteString(part)
		sb.WriteString("\n")
	}
	for _, a := range p.Anchors {
		sb.WriteString("Link: ")
		sb.WriteString(a.Text)
		sb.WriteString(", URL: ")
		sb.WriteString(a.Href)
		sb.WriteString("\n")
	}
	return sb.String()
}

// PageParser turns raw HTML into page text and candidate links.
type PageParser interface {
	// Parse extracts the text of a page and the absolute URLs of its
	// same-origin links, in document order, duplicates included.
	// Parsing is best-effort and never fails; unparseable input yields
	// empty results.
	Parse(html string, baseURL string) (*PageText, []string)
}

// Node is an element in a DocumentTree. Its concrete type belongs to the
// implementation.
type Node any

// DocumentTree is a queryable HTML document.
type DocumentTree interface {
	// Query returns the nodes matching a CSS selector in document order.
	Query(selector string) []Node

	// Text returns the text content of a node.
	Text(node Node) string

	// Attribute returns the value of an attribute and whether it is present.
	Attribute(node Node, name string) (string, bool)
}
