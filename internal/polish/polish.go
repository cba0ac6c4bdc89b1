package polish

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	apperrors "promocards/internal/errors"
)

// Polisher rewrites free-text descriptions via a text-generation endpoint.
type Polisher interface {
	Polish(ctx context.Context, text string) (string, error)
}

const (
	defaultModel = "gpt-4o-mini"

	temperature = 0.7
	maxTokens   = 500

	promptTemplate = "Rewrite the following business description so it reads polished and inviting. " +
		"Keep it under 250 words, preserve every factual detail, and reply with only the rewritten text, " +
		"no commentary.\n\n%s"
)

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	api        openai.Client
	model      string
	configured bool
}

// New creates a polishing client. An empty apiKey yields a client whose
// Polish always fails with ErrPolishNotConfigured, leaving the rest of the
// service unaffected. baseURL is optional and enables OpenAI-compatible
// providers.
func New(apiKey, baseURL, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Client{
		api:        openai.NewClient(opts...),
		model:      model,
		configured: apiKey != "",
	}
}

// Polish sends a single user-role rewrite prompt and returns the model
// output with surrounding whitespace trimmed. The output is otherwise passed
// through verbatim.
func (c *Client) Polish(ctx context.Context, text string) (string, error) {
	if !c.configured {
		return "", apperrors.ErrPolishNotConfigured
	}

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf(promptTemplate, text)),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrPolishUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", apperrors.ErrPolishUpstream)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
