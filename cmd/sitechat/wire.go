package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/crawl"
	"github.com/fwojciec/sitechat/etree"
	"github.com/fwojciec/sitechat/fs"
	"github.com/fwojciec/sitechat/gemini"
	"github.com/fwojciec/sitechat/goquery"
	"github.com/fwojciec/sitechat/htmltomarkdown"
	schttp "github.com/fwojciec/sitechat/http"
	"github.com/fwojciec/sitechat/openrouter"
	"github.com/fwojciec/sitechat/pdf"
	scprom "github.com/fwojciec/sitechat/prometheus"
	"github.com/fwojciec/sitechat/readability"
	"github.com/fwojciec/sitechat/rod"
	scslog "github.com/fwojciec/sitechat/slog"
	"github.com/fwojciec/sitechat/trafilatura"
	"google.golang.org/genai"
)

// newCrawler builds the crawler for the configured fetcher. The fetcher is
// closed by m.Close.
func (m *Main) newCrawler(cli *CLI, logger *slog.Logger, metrics *scprom.Metrics) (*crawl.Crawler, error) {
	var fetcher sitechat.Fetcher
	switch cli.Fetcher {
	case "rod":
		f, err := rod.NewFetcher()
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		fetcher = f
	default:
		fetcher = schttp.NewFetcher()
	}
	m.closers = append(m.closers, fetcher)

	c := &crawl.Crawler{
		Fetcher:     scprom.NewFetcher(scslog.NewLoggingFetcher(fetcher, logger), metrics),
		Parser:      goquery.NewParser(),
		RateLimiter: crawl.NewDomainLimiter(cli.RPS),
		MaxPages:    cli.MaxPages,
		MaxDepth:    cli.MaxDepth,
		Logger:      logger,
	}
	if cli.RespectRobots {
		c.Robots = schttp.NewRobotsService(schttp.DefaultUserAgent)
	}
	return c, nil
}

// newScanner registers an extractor for every supported document type.
func newScanner(logger *slog.Logger, metrics *scprom.Metrics) *fs.Scanner {
	instrument := func(e sitechat.TextExtractor) sitechat.TextExtractor {
		return scprom.NewTextExtractor(scslog.NewLoggingTextExtractor(e, logger), metrics)
	}

	s := fs.NewScanner(logger)
	s.Register(instrument(fs.PlainTextExtractor{}), ".txt", ".md", ".markdown", ".csv")
	s.Register(instrument(pdf.NewExtractor()), ".pdf")
	s.Register(instrument(etree.NewDocxExtractor()), ".docx")
	s.Register(instrument(&fs.HTMLExtractor{
		Primary:   trafilatura.NewExtractor(),
		Fallback:  readability.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
	}), ".html", ".htm")
	return s
}

// newCompleter connects to the configured completion provider.
func newCompleter(ctx context.Context, cli *CLI, stderr io.Writer, logger *slog.Logger, metrics *scprom.Metrics) (sitechat.Completer, error) {
	var completer sitechat.Completer
	switch cli.Provider {
	case "gemini":
		if cli.GeminiKey == "" {
			fmt.Fprintln(stderr, "Hint: get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		completer = gemini.NewCompleter(client, cli.Model, cli.MaxTokens)
	default:
		if cli.OpenRouterKey == "" {
			fmt.Fprintln(stderr, "Hint: get an API key at https://openrouter.ai/keys")
			return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
		}
		completer = openrouter.NewCompleter(openrouter.Config{
			APIKey:    cli.OpenRouterKey,
			BaseURL:   cli.OpenRouterURL,
			Model:     cli.Model,
			MaxTokens: cli.MaxTokens,
		})
	}
	return scprom.NewCompleter(scslog.NewLoggingCompleter(completer, logger), metrics), nil
}
