// Package gemini answers prompts with Google Gemini.
package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/sitechat"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

const provider = "gemini"

var _ sitechat.Completer = (*Completer)(nil)

// Completer implements sitechat.Completer with the genai SDK.
type Completer struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

// NewCompleter creates a Completer. An empty model selects DefaultModel;
// maxTokens of zero leaves the output length to the service.
func NewCompleter(client *genai.Client, model string, maxTokens int) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model, maxTokens: int32(maxTokens)}
}

// Complete sends user content with system as the system instruction. A
// response without text is an error.
func (c *Completer) Complete(ctx context.Context, system, user string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: user}},
		}},
		BuildConfig(system, c.maxTokens),
	)
	if err != nil {
		return "", &sitechat.CompletionError{Provider: provider, Err: err}
	}
	if result == nil {
		return "", &sitechat.CompletionError{Provider: provider, Err: errors.New("nil response")}
	}

	answer := strings.TrimSpace(result.Text())
	if answer == "" {
		return "", &sitechat.CompletionError{Provider: provider, Err: errors.New("response has no text")}
	}
	return answer, nil
}

// BuildConfig returns the generation config carrying the system instruction.
func BuildConfig(system string, maxTokens int32) *genai.GenerateContentConfig {
	temp := float32(0.4)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
		Temperature:     &temp,
		MaxOutputTokens: maxTokens,
	}
	return config
}
