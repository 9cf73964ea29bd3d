package prometheus_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/mock"
	scprom "github.com/fwojciec/sitechat/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher(t *testing.T) {
	t.Parallel()

	m := scprom.NewMetrics(prometheus.NewRegistry())
	f := scprom.NewFetcher(&mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			if url == "https://example.com/missing" {
				return "", &sitechat.FetchError{URL: url, StatusCode: 404}
			}
			return "<html></html>", nil
		},
	}, m)

	html, err := f.Fetch(context.Background(), "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", html)
	_, err = f.Fetch(context.Background(), "https://example.com/missing")
	require.Error(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(m.FetchesTotal.WithLabelValues("ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.FetchesTotal.WithLabelValues("error")), 0)
}

func TestCompleter(t *testing.T) {
	t.Parallel()

	m := scprom.NewMetrics(prometheus.NewRegistry())
	c := scprom.NewCompleter(&mock.Completer{
		CompleteFn: func(ctx context.Context, system, user string) (string, error) {
			return "", &sitechat.CompletionError{Provider: "test", Err: errors.New("boom")}
		},
	}, m)

	_, err := c.Complete(context.Background(), "sys", "user")

	var ce *sitechat.CompletionError
	require.ErrorAs(t, err, &ce)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CompletionsTotal.WithLabelValues("error")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.CompletionsTotal.WithLabelValues("ok")), 0)
}

func TestTextExtractor(t *testing.T) {
	t.Parallel()

	m := scprom.NewMetrics(prometheus.NewRegistry())
	e := scprom.NewTextExtractor(&mock.TextExtractor{
		ExtractFn: func(ctx context.Context, path string) (string, error) {
			return "text", nil
		},
	}, m)

	text, err := e.Extract(context.Background(), "/docs/a.txt")

	require.NoError(t, err)
	assert.Equal(t, "text", text)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ExtractionsTotal.WithLabelValues("ok")), 0)
}

func TestRegisterCorpus(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	scprom.RegisterCorpus(reg, &mock.CorpusReader{
		SnapshotFn: func() sitechat.Corpus {
			return sitechat.Corpus{
				CrawlText: "abc",
				Pages:     2,
				Documents: sitechat.DocumentPool{"a.txt": "de"},
				Ready:     true,
			}
		},
	})

	families, err := reg.Gather()
	require.NoError(t, err)

	got := make(map[string]float64)
	for _, mf := range families {
		got[mf.GetName()] = mf.GetMetric()[0].GetGauge().GetValue()
	}
	assert.Equal(t, map[string]float64{
		"sitechat_corpus_ready":      1,
		"sitechat_corpus_pages":      2,
		"sitechat_corpus_documents":  1,
		"sitechat_corpus_characters": 5,
	}, got)
}
