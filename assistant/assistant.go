// Package assistant answers questions from the ingested corpus.
package assistant

import (
	"context"
	"strings"

	"github.com/fwojciec/sitechat"
)

// DefaultMaxContext is the aggregate cap used when Limits.Total is unset.
const DefaultMaxContext = 40000

var _ sitechat.Asker = (*Assistant)(nil)

// Assistant implements sitechat.Asker. Each question is answered from a
// snapshot of the corpus, so concurrent ingestion never shows a half
// updated context.
type Assistant struct {
	Corpus    sitechat.CorpusReader
	Completer sitechat.Completer
	Limits    sitechat.Limits
}

// Ask aggregates the corpus into a bounded context, builds the prompt and
// forwards it to the completion service.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", sitechat.Errorf(sitechat.EINVALID, "question required")
	}

	corpus := a.Corpus.Snapshot()
	if !corpus.Ready {
		return "", sitechat.Errorf(sitechat.EUNAVAILABLE, "content is still being ingested")
	}

	limits := a.Limits
	if limits.Total <= 0 {
		limits.Total = DefaultMaxContext
	}
	aggregated := sitechat.AggregateWithLimits(corpus.CrawlText, corpus.Documents, limits)

	prompt := sitechat.BuildPrompt(aggregated, question)
	return a.Completer.Complete(ctx, prompt.System, prompt.User)
}
