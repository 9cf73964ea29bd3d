// Package fs reads and stores the documents that supplement crawled pages.
package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitechat"
)

// Scanner builds a DocumentPool from the files of a directory, choosing a
// TextExtractor by file extension.
type Scanner struct {
	extractors map[string]sitechat.TextExtractor
	logger     *slog.Logger
}

// NewScanner creates a Scanner with no registered extractors.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{
		extractors: make(map[string]sitechat.TextExtractor),
		logger:     logger,
	}
}

// Register makes e handle files with the given extensions, such as ".pdf".
func (s *Scanner) Register(e sitechat.TextExtractor, exts ...string) {
	for _, ext := range exts {
		s.extractors[strings.ToLower(ext)] = e
	}
}

// Supports reports whether a file with this name would be extracted.
func (s *Scanner) Supports(name string) bool {
	_, ok := s.extractors[strings.ToLower(filepath.Ext(name))]
	return ok
}

// ExtractAll reads every supported file directly inside dir and returns a
// fresh pool keyed by file name. A file that fails to extract maps to an
// empty string. Unsupported files, subdirectories and hidden files are
// skipped. A missing directory yields an empty pool.
func (s *Scanner) ExtractAll(ctx context.Context, dir string) (sitechat.DocumentPool, error) {
	pool := sitechat.DocumentPool{}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, iofs.ErrNotExist) {
		s.logger.Info("documents directory missing", "dir", dir)
		return pool, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		e, ok := s.extractors[strings.ToLower(filepath.Ext(name))]
		if !ok {
			continue
		}

		text, err := e.Extract(ctx, filepath.Join(dir, name))
		if err != nil {
			xerr := &sitechat.ExtractError{Name: name, Err: err}
			s.logger.Warn("extract failed", "document", name, "err", xerr)
			text = ""
		}
		pool[name] = text
	}

	return pool, nil
}
