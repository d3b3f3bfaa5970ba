package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"emotions_api/pkg/config"
)

type Client struct {
	client      *anthropic.Client
	model       anthropic.Model
	temperature float64
	topP        float64
	maxTokens   int64
}

// NewClient constructs an Anthropic-backed generator from config.
func NewClient(cfg config.Config) *Client {
	client := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicKey))
	return &Client{
		client:      &client,
		model:       anthropic.Model(cfg.ModelName),
		temperature: cfg.ModelTemp,
		topP:        cfg.ModelTopP,
		maxTokens:   cfg.ModelMaxTokens,
	}
}

// Generate sends a fully-rendered prompt and returns the raw completion
// text with any code fences stripped.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	response, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		TopP:        anthropic.Float(c.topP),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}
	if len(response.Content) == 0 {
		return "", errors.New("anthropic returned no content")
	}

	return trimFences(response.Content[0].Text), nil
}

func trimFences(message string) string {
	message = strings.TrimSuffix(message, "\n```")
	message = strings.TrimPrefix(message, "```json\n")
	message = strings.TrimPrefix(message, "```\n")
	return message
}
