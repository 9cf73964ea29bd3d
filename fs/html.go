package fs

import (
	"context"
	"os"
	"strings"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.TextExtractor = (*HTMLExtractor)(nil)

// HTMLExtractor turns a stored HTML file into Markdown text. Main content
// comes from Primary, or from Fallback when Primary fails or finds nothing.
type HTMLExtractor struct {
	Primary   sitechat.ContentExtractor
	Fallback  sitechat.ContentExtractor
	Converter sitechat.Converter
}

// Extract reads the file at path and returns its title and content as
// Markdown.
func (e *HTMLExtractor) Extract(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	article, err := e.extract(string(data))
	if err != nil {
		return "", err
	}

	md, err := e.Converter.Convert(article.ContentHTML)
	if err != nil {
		return "", err
	}
	md = strings.TrimSpace(md)
	if article.Title != "" && !strings.Contains(md, article.Title) {
		md = article.Title + "\n" + md
	}
	return md, nil
}

func (e *HTMLExtractor) extract(rawHTML string) (*sitechat.Article, error) {
	article, err := e.Primary.Extract(rawHTML)
	if err == nil && strings.TrimSpace(article.ContentHTML) != "" {
		return article, nil
	}
	if e.Fallback == nil {
		if err == nil {
			err = sitechat.Errorf(sitechat.EINVALID, "no main content found")
		}
		return nil, err
	}
	return e.Fallback.Extract(rawHTML)
}
