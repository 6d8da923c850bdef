// Package groq provides a generation.Provider backed by the Groq
// OpenAI-compatible chat completions API.
package groq

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog"

	"github.com/tripweaver/tripweaver/internal/generation"
	"github.com/tripweaver/tripweaver/internal/provider/resilience"
)

const (
	// ProviderName identifies this generation provider.
	ProviderName = "groq"

	// DefaultBaseURL is the Groq OpenAI-compatible API base URL.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the chat model used for all completions.
	DefaultModel = "llama-3.3-70b-versatile"
)

// ClientConfig holds configuration for the Groq client.
type ClientConfig struct {
	// APIKey is the Groq API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to Groq).
	BaseURL string

	// Model is the chat model name (optional).
	Model string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is a Groq chat completions client.
type Client struct {
	api    openai.Client
	model  string
	logger zerolog.Logger
}

// NewClient creates a new Groq client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	api := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0), // retries belong to the resilience client
	)

	return &Client{
		api:    api,
		model:  model,
		logger: cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Complete executes a chat completion and returns the model's text.
func (c *Client) Complete(ctx context.Context, req generation.Request) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.Prompt),
		},
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	c.logger.Debug().
		Str("model", c.model).
		Int("prompt_len", len(req.Prompt)).
		Msg("requesting chat completion")

	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrProviderUnavailable, err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", generation.ErrEmptyCompletion
	}

	return completion.Choices[0].Message.Content, nil
}
