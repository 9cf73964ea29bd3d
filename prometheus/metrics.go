// Package prometheus exports sitechat activity as Prometheus metrics.
package prometheus

import (
	"github.com/fwojciec/sitechat"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sitechat"

// Metrics holds the collectors shared by the instrumented services.
type Metrics struct {
	FetchesTotal      *prometheus.CounterVec
	FetchDuration     prometheus.Histogram
	CompletionsTotal  *prometheus.CounterVec
	CompletionLatency prometheus.Histogram
	ExtractionsTotal  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		FetchesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetches_total",
				Help:      "Total page fetches",
			},
			[]string{"status"},
		),
		FetchDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fetch_duration_seconds",
				Help:      "Duration of page fetches in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		CompletionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "completions_total",
				Help:      "Total completion service calls",
			},
			[]string{"status"},
		),
		CompletionLatency: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "completion_duration_seconds",
				Help:      "Duration of completion service calls in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~50s
			},
		),
		ExtractionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "document_extractions_total",
				Help:      "Total document text extractions",
			},
			[]string{"status"},
		),
	}
}

// RegisterCorpus exposes the state of the current corpus snapshot as gauges.
func RegisterCorpus(reg prometheus.Registerer, corpus sitechat.CorpusReader) {
	f := promauto.With(reg)
	f.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "corpus_ready",
		Help:      "1 once the initial ingestion has finished",
	}, func() float64 {
		if corpus.Snapshot().Ready {
			return 1
		}
		return 0
	})
	f.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "corpus_pages",
		Help:      "Number of pages in the current crawl text",
	}, func() float64 {
		return float64(corpus.Snapshot().Pages)
	})
	f.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "corpus_documents",
		Help:      "Number of documents in the current pool",
	}, func() float64 {
		return float64(len(corpus.Snapshot().Documents))
	})
	f.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "corpus_characters",
		Help:      "Characters of crawl text plus document text",
	}, func() float64 {
		c := corpus.Snapshot()
		return float64(sitechat.RuneLen(c.CrawlText) + sitechat.RuneLen(c.Documents.Text()))
	})
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
