// Package llm drafts Jinja2 templates through a language model, as an
// alternative to the rule-based generator.
package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Default generation parameters. Low temperature keeps template drafts
// reproducible enough to diff between runs.
const (
	DefaultModel       = "gemini-1.5-flash-latest"
	defaultTemperature = 0.2
	defaultMaxTokens   = 1024
)

// Client generates text from a prompt. Implementations wrap a concrete
// model API.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient calls Google's Gemini API.
type GeminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
	logger      *zap.Logger
}

// GeminiOption configures a GeminiClient.
type GeminiOption func(*GeminiClient)

// WithModel overrides the default Gemini model name.
func WithModel(model string) GeminiOption {
	return func(c *GeminiClient) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTemperature overrides the default sampling temperature.
func WithTemperature(temperature float32) GeminiOption {
	return func(c *GeminiClient) {
		c.temperature = temperature
	}
}

// WithMaxTokens overrides the default output token budget.
func WithMaxTokens(maxTokens int32) GeminiOption {
	return func(c *GeminiClient) {
		c.maxTokens = maxTokens
	}
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(logger *zap.Logger) GeminiOption {
	return func(c *GeminiClient) {
		c.logger = logger
	}
}

// NewGeminiClient builds a client authenticated with apiKey. An empty key
// falls back to the SDK's ambient credentials.
func NewGeminiClient(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("llm: creating gemini client: %w", err)
	}

	c := &GeminiClient{
		client:      client,
		model:       DefaultModel,
		temperature: defaultTemperature,
		maxTokens:   defaultMaxTokens,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Generate sends prompt to the configured model and returns its text
// response.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug("sending prompt to gemini",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)))

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.temperature),
		MaxOutputTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("llm: gemini request failed: %w", err)
	}

	text := resp.Text()
	c.logger.Debug("received gemini response", zap.Int("response_len", len(text)))
	return text, nil
}
