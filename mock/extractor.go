package mock

import (
	"context"
	"io"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of sitechat.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*sitechat.Article, error)
}

func (e *ContentExtractor) Extract(html string) (*sitechat.Article, error) {
	return e.ExtractFn(html)
}

var _ sitechat.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of sitechat.TextExtractor.
type TextExtractor struct {
	ExtractFn func(ctx context.Context, path string) (string, error)
}

func (e *TextExtractor) Extract(ctx context.Context, path string) (string, error) {
	return e.ExtractFn(ctx, path)
}

var _ sitechat.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of sitechat.DocumentStore.
type DocumentStore struct {
	SaveFn func(ctx context.Context, name string, r io.Reader) (string, error)
}

func (s *DocumentStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	return s.SaveFn(ctx, name, r)
}
