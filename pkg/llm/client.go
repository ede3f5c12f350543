package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/nleiva/contentscale/pkg/backend"
)

// Client sends prompts to the configured chat-completion provider.
type Client struct {
	provider backend.Provider
}

// NewClient creates a new LLM client with configurable timeout
func NewClient(config backend.ProviderConfig, timeout time.Duration) (*Client, error) {
	if timeout > 0 {
		config.Timeout = int(timeout.Seconds())
	}

	provider, err := backend.CreateProvider(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	return &Client{
		provider: provider,
	}, nil
}

// CreateCompletion creates a chat completion using the configured provider
func (c *Client) CreateCompletion(ctx context.Context, req *backend.ChatCompletionRequest) (*backend.ChatCompletionResponse, error) {
	return c.provider.CreateCompletion(ctx, req)
}

// Ask sends a system and user message pair and returns the reply text.
func (c *Client) Ask(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	resp, err := c.provider.CreateCompletion(ctx, &backend.ChatCompletionRequest{
		Messages: []backend.Message{
			{Role: backend.RoleSystem, Content: system},
			{Role: backend.RoleUser, Content: user},
		},
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%s returned no choices", c.provider.Name())
	}
	return text, nil
}

// Provider returns the provider name.
func (c *Client) Provider() string {
	return c.provider.Name()
}
