package mock

import (
	"context"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.CorpusReader = (*CorpusReader)(nil)

// CorpusReader is a mock implementation of sitechat.CorpusReader.
type CorpusReader struct {
	SnapshotFn func() sitechat.Corpus
}

func (r *CorpusReader) Snapshot() sitechat.Corpus {
	return r.SnapshotFn()
}

var _ sitechat.DocumentRebuilder = (*DocumentRebuilder)(nil)

// DocumentRebuilder is a mock implementation of sitechat.DocumentRebuilder.
type DocumentRebuilder struct {
	RebuildDocumentsFn func(ctx context.Context) error
}

func (r *DocumentRebuilder) RebuildDocuments(ctx context.Context) error {
	return r.RebuildDocumentsFn(ctx)
}
