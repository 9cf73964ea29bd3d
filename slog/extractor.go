package slog

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.TextExtractor = (*LoggingTextExtractor)(nil)

// LoggingTextExtractor wraps a TextExtractor and logs each document.
type LoggingTextExtractor struct {
	next   sitechat.TextExtractor
	logger *slog.Logger
}

// NewLoggingTextExtractor creates a new LoggingTextExtractor.
func NewLoggingTextExtractor(next sitechat.TextExtractor, logger *slog.Logger) *LoggingTextExtractor {
	return &LoggingTextExtractor{next: next, logger: logger}
}

func (e *LoggingTextExtractor) Extract(ctx context.Context, path string) (text string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"document", filepath.Base(path),
			"chars", sitechat.RuneLen(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, path)
}
