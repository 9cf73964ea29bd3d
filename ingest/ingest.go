// Package ingest runs the crawl and the document scan and publishes their
// results.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/crawl"
	"golang.org/x/sync/errgroup"
)

// SiteCrawler crawls a website into a session.
type SiteCrawler interface {
	Crawl(ctx context.Context, rootURL string) (*crawl.Session, error)
}

// DocumentScanner builds a document pool from a directory.
type DocumentScanner interface {
	ExtractAll(ctx context.Context, dir string) (sitechat.DocumentPool, error)
}

var _ sitechat.DocumentRebuilder = (*Ingester)(nil)

// Ingester fills a corpus from a website and a documents directory.
type Ingester struct {
	Crawler SiteCrawler
	Scanner DocumentScanner
	Corpus  sitechat.CorpusWriter

	// RootURL may be empty to ingest documents only.
	RootURL string
	DocsDir string

	Logger *slog.Logger

	// docsMu serializes document rebuilds so an older scan never
	// overwrites a newer one.
	docsMu sync.Mutex
}

// Run crawls and scans concurrently, publishes both results and marks the
// corpus ready. The corpus becomes ready even if one side fails; the
// failures are returned.
func (i *Ingester) Run(ctx context.Context) error {
	begin := time.Now()

	// A plain Group: one side failing must not cancel the other.
	var g errgroup.Group
	var crawlErr, docsErr error
	g.Go(func() error {
		crawlErr = i.Recrawl(ctx)
		return crawlErr
	})
	g.Go(func() error {
		docsErr = i.RebuildDocuments(ctx)
		return docsErr
	})
	var err error
	if g.Wait() != nil {
		err = errors.Join(crawlErr, docsErr)
	}

	i.Corpus.MarkReady()
	i.logger().Info("ingest", "duration", time.Since(begin), "err", err)
	return err
}

// Recrawl crawls the root URL and replaces the crawl text. Without a root
// URL it publishes empty crawl text.
func (i *Ingester) Recrawl(ctx context.Context) error {
	if i.RootURL == "" {
		i.Corpus.SetCrawl("", 0)
		return nil
	}

	session, err := i.Crawler.Crawl(ctx, i.RootURL)
	if err != nil {
		return fmt.Errorf("crawl: %w", err)
	}
	i.Corpus.SetCrawl(session.Text(), len(session.Pages))
	i.logger().Info("crawl published",
		"session", session.ID,
		"pages", len(session.Pages),
		"failures", len(session.Failures),
		"chars", sitechat.RuneLen(session.Text()),
	)
	return nil
}

// RebuildDocuments rescans the documents directory and replaces the pool.
// On failure the previous pool is kept.
func (i *Ingester) RebuildDocuments(ctx context.Context) error {
	i.docsMu.Lock()
	defer i.docsMu.Unlock()

	pool, err := i.Scanner.ExtractAll(ctx, i.DocsDir)
	if err != nil {
		return fmt.Errorf("scan documents: %w", err)
	}
	i.Corpus.SetDocuments(pool)
	i.logger().Info("documents published", "dir", i.DocsDir, "documents", len(pool))
	return nil
}

func (i *Ingester) logger() *slog.Logger {
	if i.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return i.Logger
}
