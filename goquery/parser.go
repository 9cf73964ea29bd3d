package goquery

import (
	"net/url"
	"strings"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.PageParser = (*Parser)(nil)

// invisible elements never contribute to page text.
const invisible = "script, style, noscript, template"

// Parser extracts page text and same-origin links with goquery.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts the visible text, header and footer text, every anchor,
// and the same-origin candidate links of a page. Anchors keep their href as
// written; candidate links are absolute and normalized.
func (p *Parser) Parse(html string, baseURL string) (*sitechat.PageText, []string) {
	page := &sitechat.PageText{URL: baseURL}

	tree, err := NewTree(html)
	if err != nil {
		return page, nil
	}
	tree.Remove(invisible)

	page.Text = joinNodes(tree, tree.Query("body"))
	if page.Text == "" {
		page.Text = joinNodes(tree, tree.Query("html"))
	}
	page.Header = joinNodes(tree, tree.Query("header"))
	page.Footer = joinNodes(tree, tree.Query("footer, .footer"))

	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		base = nil
	}

	var links []string
	for _, node := range tree.Query("a[href]") {
		href, _ := tree.Attribute(node, "href")
		href = strings.TrimSpace(href)
		if href == "" {
			continue
		}
		page.Anchors = append(page.Anchors, sitechat.Anchor{
			Text: tree.Text(node),
			Href: href,
		})

		if base == nil {
			continue
		}
		resolved, err := sitechat.ResolveURL(base, href)
		if err != nil {
			continue
		}
		u, err := url.Parse(resolved)
		if err != nil || !sitechat.SameOrigin(base, u) {
			continue
		}
		links = append(links, resolved)
	}

	return page, links
}

func joinNodes(tree *Tree, nodes []sitechat.Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if text := tree.Text(n); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}
