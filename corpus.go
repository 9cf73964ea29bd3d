package sitechat

import (
	"context"
	"time"
)

// Corpus is a consistent view of everything ingested so far.
// Its DocumentPool must not be modified.
type Corpus struct {
	CrawlText string
	Pages     int
	Documents DocumentPool

	// Ready is false until the first ingestion has finished.
	Ready     bool
	UpdatedAt time.Time

	// Digest changes whenever the crawl text or any document changes.
	Digest string
}

// CorpusReader provides snapshots of the ingested content.
type CorpusReader interface {
	Snapshot() Corpus
}

// CorpusWriter publishes ingestion results. Each call replaces the
// previous value wholesale.
type CorpusWriter interface {
	SetCrawl(text string, pages int)
	SetDocuments(pool DocumentPool)
	MarkReady()
}

// DocumentRebuilder re-extracts every stored document and replaces the
// document pool.
type DocumentRebuilder interface {
	RebuildDocuments(ctx context.Context) error
}
