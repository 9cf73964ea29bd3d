package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/crawl"
	"github.com/fwojciec/sitechat/gin"
	"github.com/fwojciec/sitechat/ingest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Crawler  *crawl.Crawler
	Scanner  ingest.DocumentScanner
	DocsDir  string
	Ingester *ingest.Ingester
	Asker    sitechat.Asker
	Server   *gin.Server
}

// CLI defines the command-line interface structure for Kong. Every flag can
// also be set through the environment or a .env file.
type CLI struct {
	LogLevel  string `default:"info" enum:"debug,info,warn,error" env:"SITECHAT_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	LogFormat string `default:"text" enum:"text,json" env:"SITECHAT_LOG_FORMAT" help:"Log format (text, json)"`

	RootURL string `name:"root-url" env:"SITECHAT_ROOT_URL" help:"Website to crawl at startup"`
	DocsDir string `default:"uploads" env:"SITECHAT_DOCS_DIR" help:"Directory of supplementary documents"`

	MaxContext      int `default:"40000" env:"SITECHAT_MAX_CONTEXT" help:"Maximum characters of context sent with a question"`
	MaxCrawlContext int `env:"SITECHAT_MAX_CRAWL_CONTEXT" help:"Maximum characters of crawl text (0 for no separate cap)"`
	MaxDocsContext  int `env:"SITECHAT_MAX_DOCS_CONTEXT" help:"Maximum characters of document text (0 for no separate cap)"`

	MaxPages      int     `default:"1000" env:"SITECHAT_MAX_PAGES" help:"Maximum pages visited per crawl"`
	MaxDepth      int     `env:"SITECHAT_MAX_DEPTH" help:"Maximum link depth from the root (0 for no limit)"`
	Fetcher       string  `default:"http" enum:"http,rod" env:"SITECHAT_FETCHER" help:"Page fetcher (http, rod)"`
	RPS           float64 `name:"rps" default:"1" env:"SITECHAT_RPS" help:"Requests per second per domain (0 for no limit)"`
	RespectRobots bool    `default:"true" negatable:"" env:"SITECHAT_RESPECT_ROBOTS" help:"Honor robots.txt"`

	Provider      string `default:"openrouter" enum:"openrouter,gemini" env:"SITECHAT_PROVIDER" help:"Completion provider (openrouter, gemini)"`
	OpenRouterKey string `name:"openrouter-api-key" env:"OPENROUTER_API_KEY" help:"OpenRouter API key"`
	OpenRouterURL string `name:"openrouter-base-url" env:"OPENROUTER_BASE_URL" help:"OpenAI-compatible API base URL"`
	GeminiKey     string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	Model         string `env:"SITECHAT_MODEL" help:"Completion model (provider default when empty)"`
	MaxTokens     int    `default:"150" env:"SITECHAT_MAX_TOKENS" help:"Maximum tokens in an answer"`

	Serve   ServeCmd   `cmd:"" help:"Ingest content and serve the chat API"`
	Crawl   CrawlCmd   `cmd:"" help:"Crawl a website and report what was collected"`
	Extract ExtractCmd `cmd:"" help:"Extract text from a documents directory"`
	Ask     AskCmd     `cmd:"" help:"Ingest content and answer a single question"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string `default:":3000" env:"SITECHAT_ADDR" help:"Listen address"`
	PublicDir string `default:"public" env:"SITECHAT_PUBLIC_DIR" help:"Directory of static web client files"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL     string `arg:"" help:"Root URL to crawl"`
	Verbose bool   `short:"v" help:"Print every visited page"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Dir string `arg:"" optional:"" help:"Documents directory (defaults to --docs-dir)"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the website and documents"`
}
