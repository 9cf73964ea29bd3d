// Package memory holds the ingested corpus in process memory.
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitechat"
)

var (
	_ sitechat.CorpusReader = (*Store)(nil)
	_ sitechat.CorpusWriter = (*Store)(nil)
)

// Store guards the crawl text and the document pool. Writers replace a
// pool wholesale; readers get a snapshot that later writes do not change.
type Store struct {
	mu        sync.RWMutex
	crawlText string
	pages     int
	docs      sitechat.DocumentPool
	ready     bool
	updatedAt time.Time
	digest    string

	now func() time.Time
}

// NewStore creates an empty, not yet ready Store.
func NewStore() *Store {
	s := &Store{docs: sitechat.DocumentPool{}, now: time.Now}
	s.digest = digest(s.crawlText, s.docs)
	return s
}

// SetCrawl replaces the crawl text.
func (s *Store) SetCrawl(text string, pages int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.crawlText = text
	s.pages = pages
	s.touch()
}

// SetDocuments replaces the document pool. The store keeps its own copy.
func (s *Store) SetDocuments(pool sitechat.DocumentPool) {
	docs := make(sitechat.DocumentPool, len(pool))
	for name, text := range pool {
		docs[name] = text
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = docs
	s.touch()
}

// MarkReady records that the first ingestion has finished.
func (s *Store) MarkReady() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = true
}

// Snapshot returns the current corpus.
func (s *Store) Snapshot() sitechat.Corpus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sitechat.Corpus{
		CrawlText: s.crawlText,
		Pages:     s.pages,
		Documents: s.docs,
		Ready:     s.ready,
		UpdatedAt: s.updatedAt,
		Digest:    s.digest,
	}
}

// touch must be called with mu held.
func (s *Store) touch() {
	s.updatedAt = s.now()
	s.digest = digest(s.crawlText, s.docs)
}

func digest(crawlText string, docs sitechat.DocumentPool) string {
	h := xxhash.New()
	_, _ = h.WriteString(crawlText)
	for _, name := range docs.Names() {
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(name)
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(docs[name])
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
