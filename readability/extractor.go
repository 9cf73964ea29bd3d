// Package readability extracts the main content of HTML documents with
// go-readability. It is the fallback when trafilatura finds nothing.
package readability

import (
	"strings"

	"github.com/fwojciec/sitechat"
	"github.com/go-shiori/go-readability"
)

var _ sitechat.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the title and main content of rawHTML.
func (e *Extractor) Extract(rawHTML string) (*sitechat.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitechat.Errorf(sitechat.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &sitechat.Article{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
