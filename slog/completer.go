package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer and logs request and answer sizes.
// Prompt contents are not logged.
type LoggingCompleter struct {
	next   sitechat.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next sitechat.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

func (c *LoggingCompleter) Complete(ctx context.Context, system, user string) (answer string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		c.logger.Log(ctx, level, "complete",
			"prompt_bytes", len(system)+len(user),
			"answer_bytes", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, system, user)
}
