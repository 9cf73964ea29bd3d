package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/assistant"
	"github.com/fwojciec/sitechat/crawl"
	"github.com/fwojciec/sitechat/fs"
	"github.com/fwojciec/sitechat/gin"
	"github.com/fwojciec/sitechat/ingest"
	"github.com/fwojciec/sitechat/memory"
	scprom "github.com/fwojciec/sitechat/prometheus"
	gingonic "github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// EnvFile is loaded before flags are parsed. A missing file is ignored.
	EnvFile string

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{EnvFile: ".env"}
}

// Close releases everything opened by Run.
func (m *Main) Close() error {
	var errs []error
	for i := len(m.closers) - 1; i >= 0; i-- {
		errs = append(errs, m.closers[i].Close())
	}
	m.closers = nil
	return errors.Join(errs...)
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if m.EnvFile != "" {
		if err := godotenv.Load(m.EnvFile); err != nil && !errors.Is(err, iofs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
		}
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitechat"),
		kong.Description("Answer questions about a website and a folder of documents."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitechat --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	logger, err := newLogger(stderr, cli.LogFormat, cli.LogLevel)
	if err != nil {
		return err
	}
	deps.Logger = logger
	deps.DocsDir = cli.DocsDir

	reg := prometheus.NewRegistry()
	metrics := scprom.NewMetrics(reg)

	switch strings.Fields(kongCtx.Command())[0] {
	case "crawl":
		if deps.Crawler, err = m.newCrawler(cli, logger, metrics); err != nil {
			return err
		}
	case "extract":
		deps.Scanner = newScanner(logger, metrics)
	case "ask":
		if _, err := m.wireAssistant(ctx, cli, deps, metrics); err != nil {
			return err
		}
	case "serve":
		corpus, err := m.wireAssistant(ctx, cli, deps, metrics)
		if err != nil {
			return err
		}
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		scprom.RegisterCorpus(reg, corpus)

		gingonic.SetMode(gingonic.ReleaseMode)
		s := gin.NewServer()
		s.Addr = cli.Serve.Addr
		s.PublicDir = cli.Serve.PublicDir
		s.Asker = deps.Asker
		s.Documents = fs.NewDocumentStore(cli.DocsDir)
		s.Rebuilder = deps.Ingester
		s.Corpus = corpus
		s.Metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
		s.Logger = logger
		deps.Server = s
	}

	return kongCtx.Run(deps)
}

// wireAssistant builds the ingestion pipeline, the corpus and the
// assistant shared by the ask and serve commands.
func (m *Main) wireAssistant(ctx context.Context, cli *CLI, deps *Dependencies, metrics *scprom.Metrics) (*memory.Store, error) {
	var crawler *crawl.Crawler
	if cli.RootURL != "" {
		var err error
		if crawler, err = m.newCrawler(cli, deps.Logger, metrics); err != nil {
			return nil, err
		}
	}

	completer, err := newCompleter(ctx, cli, deps.Stderr, deps.Logger, metrics)
	if err != nil {
		return nil, err
	}

	corpus := memory.NewStore()
	deps.Ingester = &ingest.Ingester{
		Scanner: newScanner(deps.Logger, metrics),
		Corpus:  corpus,
		RootURL: cli.RootURL,
		DocsDir: cli.DocsDir,
		Logger:  deps.Logger,
	}
	if crawler != nil {
		deps.Ingester.Crawler = crawler
	}
	deps.Asker = &assistant.Assistant{
		Corpus:    corpus,
		Completer: completer,
		Limits: sitechat.Limits{
			Total:     cli.MaxContext,
			Crawl:     cli.MaxCrawlContext,
			Documents: cli.MaxDocsContext,
		},
	}
	return corpus, nil
}

func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
