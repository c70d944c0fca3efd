// Package ai implements the model-provider adapter for sentiment scoring
// and report generation.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/teampulse/teampulse-backend/internal/config"
)

// Client wraps the provider SDK. A zero API key produces a disabled
// client: Available reports false and every call returns ErrNotConfigured.
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	enabled   bool
}

// New creates a client from AI configuration.
func New(cfg config.AIConfig) *Client {
	c := &Client{
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		enabled:   cfg.EnrichmentEnabled(),
	}
	if c.enabled {
		c.api = anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	}
	return c
}

// Available reports whether the provider is configured and callable.
func (c *Client) Available() bool {
	return c.enabled
}

// Generate sends one prompt pair and returns the raw text reply.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.enabled {
		return "", ErrNotConfigured
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCallFailed, err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrInvalidResponse)
	}

	return msg.Content[0].Text, nil
}

// GenerateStructured sends one prompt pair with the shape's schema block
// appended, then extracts and validates the JSON reply.
func (c *Client) GenerateStructured(ctx context.Context, systemPrompt, userPrompt string, shape Shape) (map[string]any, error) {
	text, err := c.Generate(ctx, systemPrompt, userPrompt+"\n\n"+shape.PromptBlock())
	if err != nil {
		return nil, err
	}

	jsonStr, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	return shape.Decode(jsonStr)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("%w: no JSON object found", ErrInvalidResponse)
	}
	return s[start : end+1], nil
}
