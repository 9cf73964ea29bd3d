package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitechat"
)

var _ sitechat.DocumentTree = (*Tree)(nil)

// Tree is a sitechat.DocumentTree backed by a goquery document.
// Nodes returned by Query are single-element *goquery.Selection values.
type Tree struct {
	doc *goquery.Document
}

// NewTree parses html into a Tree. The HTML5 parser recovers from
// malformed markup, so an error only comes from the reader.
func NewTree(html string) (*Tree, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitechat.Errorf(sitechat.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Tree{doc: doc}, nil
}

// Query returns the nodes matching selector in document order. An invalid
// selector matches nothing.
func (t *Tree) Query(selector string) []sitechat.Node {
	sel := t.doc.Find(selector)
	nodes := make([]sitechat.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, s)
	})
	return nodes
}

// Text returns the cleaned text of node.
func (t *Tree) Text(node sitechat.Node) string {
	s, ok := node.(*goquery.Selection)
	if !ok || s == nil {
		return ""
	}
	return cleanText(s.Text())
}

// Attribute returns the value of the named attribute of node.
func (t *Tree) Attribute(node sitechat.Node, name string) (string, bool) {
	s, ok := node.(*goquery.Selection)
	if !ok || s == nil {
		return "", false
	}
	return s.Attr(name)
}

// Remove deletes every element matching selector from the tree.
func (t *Tree) Remove(selector string) {
	t.doc.Find(selector).Remove()
}

// cleanText collapses runs of whitespace within each line and drops blank
// lines.
func cleanText(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
