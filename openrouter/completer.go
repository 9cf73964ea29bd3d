// Package openrouter answers prompts through an OpenAI-compatible chat
// completions endpoint, OpenRouter by default.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/sitechat"
)

// Defaults for the completion request.
const (
	DefaultBaseURL   = "https://openrouter.ai/api/v1"
	DefaultModel     = "openai/gpt-3.5-turbo"
	DefaultMaxTokens = 150
	DefaultTimeout   = 60 * time.Second
)

const provider = "openrouter"

// Config configures a Completer.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

var _ sitechat.Completer = (*Completer)(nil)

// Completer implements sitechat.Completer over HTTP. It does not retry.
type Completer struct {
	client    *http.Client
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
}

// NewCompleter creates a Completer, filling unset fields with defaults.
func NewCompleter(cfg Config) *Completer {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Completer{
		client:    &http.Client{Timeout: timeout},
		apiKey:    cfg.APIKey,
		baseURL:   baseURL,
		model:     model,
		maxTokens: maxTokens,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string    `json:"model"`
	Messages  []message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete posts a chat request and returns choices[0].message.content.
// Transport errors, non-2xx statuses, undecodable bodies and responses
// without content are all *sitechat.CompletionError.
func (c *Completer) Complete(ctx context.Context, system, user string) (string, error) {
	answer, err := c.complete(ctx, system, user)
	if err != nil {
		return "", &sitechat.CompletionError{Provider: provider, Err: err}
	}
	return answer, nil
}

func (c *Completer) complete(ctx context.Context, system, user string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("response has no choices")
	}
	content := out.Choices[0].Message.Content
	if content == nil || strings.TrimSpace(*content) == "" {
		return "", errors.New("response has no content")
	}
	return strings.TrimSpace(*content), nil
}
