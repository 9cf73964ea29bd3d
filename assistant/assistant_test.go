package assistant_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/assistant"
	"github.com/fwojciec/sitechat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyCorpus(crawlText string, docs sitechat.DocumentPool) *mock.CorpusReader {
	return &mock.CorpusReader{
		SnapshotFn: func() sitechat.Corpus {
			return sitechat.Corpus{CrawlText: crawlText, Documents: docs, Ready: true}
		},
	}
}

func TestAssistant_Ask(t *testing.T) {
	t.Parallel()

	t.Run("sends aggregated context and question", func(t *testing.T) {
		t.Parallel()

		var gotSystem, gotUser string
		a := &assistant.Assistant{
			Corpus: readyCorpus("hello ", sitechat.DocumentPool{"a.pdf": "world!!"}),
			Completer: &mock.Completer{
				CompleteFn: func(ctx context.Context, system, user string) (string, error) {
					gotSystem, gotUser = system, user
					return "Hi there", nil
				},
			},
			Limits: sitechat.Limits{Total: 10},
		}

		answer, err := a.Ask(context.Background(), "What's up?")

		require.NoError(t, err)
		assert.Equal(t, "Hi there", answer)
		assert.Equal(t, sitechat.SystemPreamble, gotSystem)
		assert.Equal(t, "Content:\nhello \nwor\n\nUser Question: What's up?", gotUser)
	})

	t.Run("uses the default cap when none is set", func(t *testing.T) {
		t.Parallel()

		var gotUser string
		a := &assistant.Assistant{
			Corpus: readyCorpus(strings.Repeat("x", assistant.DefaultMaxContext+100), nil),
			Completer: &mock.Completer{
				CompleteFn: func(ctx context.Context, system, user string) (string, error) {
					gotUser = user
					return "ok", nil
				},
			},
		}

		_, err := a.Ask(context.Background(), "q")

		require.NoError(t, err)
		assert.Equal(t, assistant.DefaultMaxContext, strings.Count(gotUser, "x"))
	})

	t.Run("rejects empty question", func(t *testing.T) {
		t.Parallel()

		a := &assistant.Assistant{Corpus: readyCorpus("", nil)}

		_, err := a.Ask(context.Background(), "   ")

		assert.Equal(t, sitechat.EINVALID, sitechat.ErrorCode(err))
	})

	t.Run("is unavailable until ingestion finishes", func(t *testing.T) {
		t.Parallel()

		a := &assistant.Assistant{
			Corpus: &mock.CorpusReader{
				SnapshotFn: func() sitechat.Corpus { return sitechat.Corpus{} },
			},
		}

		_, err := a.Ask(context.Background(), "hello?")

		assert.Equal(t, sitechat.EUNAVAILABLE, sitechat.ErrorCode(err))
	})

	t.Run("propagates completion errors", func(t *testing.T) {
		t.Parallel()

		a := &assistant.Assistant{
			Corpus: readyCorpus("site", nil),
			Completer: &mock.Completer{
				CompleteFn: func(ctx context.Context, system, user string) (string, error) {
					return "", &sitechat.CompletionError{Provider: "test", Err: errors.New("down")}
				},
			},
		}

		_, err := a.Ask(context.Background(), "q")

		var ce *sitechat.CompletionError
		require.ErrorAs(t, err, &ce)
	})
}
