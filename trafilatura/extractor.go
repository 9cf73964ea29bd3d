// Package trafilatura extracts the main content of HTML documents with
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/sitechat"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ sitechat.ContentExtractor = (*Extractor)(nil)

// Extractor removes boilerplate from HTML documents.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Fallback extractors are enabled so
// short pages still yield content.
func NewExtractor() *Extractor {
	return &Extractor{opts: trafilatura.Options{EnableFallback: true}}
}

// Extract returns the title and cleaned main content of rawHTML.
func (e *Extractor) Extract(rawHTML string) (*sitechat.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitechat.Errorf(sitechat.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}

	article := &sitechat.Article{Title: result.Metadata.Title}
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		article.ContentHTML = buf.String()
	}
	return article, nil
}
