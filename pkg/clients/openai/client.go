package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"emotions_api/pkg/config"
)

type Client struct {
	client      openai.Client
	model       string
	temperature float64
	topP        float64
	maxTokens   int64
}

// NewClient constructs an OpenAI-backed generator from config and
// verifies the configured model exists on the backend.
func NewClient(cfg config.Config) (*Client, error) {
	client := openai.NewClient(option.WithAPIKey(cfg.OpenAIKey), option.WithBaseURL(cfg.OpenAIBaseURL))

	// Test connectivity by listing models
	modelList, err := client.Models.List(context.Background())
	if err != nil {
		return nil, fmt.Errorf("connection test failed: %w", err)
	}
	if !isModelInList(cfg.ModelName, modelList.Data) {
		return nil, fmt.Errorf("such model does not exist: %s", cfg.ModelName)
	}

	return &Client{
		client:      client,
		model:       cfg.ModelName,
		temperature: cfg.ModelTemp,
		topP:        cfg.ModelTopP,
		maxTokens:   cfg.ModelMaxTokens,
	}, nil
}

func isModelInList(model string, models []openai.Model) bool {
	for i := range models {
		if models[i].ID == model {
			return true
		}
	}
	return false
}

// Generate sends a fully-rendered prompt and returns the raw completion
// text with any code fences stripped.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		MaxTokens:   openai.Int(c.maxTokens),
		Temperature: openai.Float(c.temperature),
		TopP:        openai.Float(c.topP),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(prompt),
					},
				},
			},
		},
	}

	response, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	return trimFences(response.Choices[0].Message.Content), nil
}

func trimFences(message string) string {
	message = strings.TrimSuffix(message, "\n```")
	message = strings.TrimPrefix(message, "```json\n")
	message = strings.TrimPrefix(message, "```\n")
	return message
}
