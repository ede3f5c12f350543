package backend

import (
	"context"
	"fmt"
)

// Provider is a chat-completion backend used by the content analyst.
type Provider interface {
	// CreateCompletion creates a new chat completion
	CreateCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error)
	// Name returns the provider name
	Name() string
}

// ProviderName identifies a supported chat-completion backend.
type ProviderName string

const (
	ProviderNameOpenAI    ProviderName = "openai"
	ProviderNameAnthropic ProviderName = "anthropic"
)

// ParseProviderName validates a provider name from configuration.
func ParseProviderName(s string) (ProviderName, error) {
	switch name := ProviderName(s); name {
	case ProviderNameOpenAI, ProviderNameAnthropic:
		return name, nil
	default:
		return "", fmt.Errorf("unsupported provider: %s", s)
	}
}

// ProviderConfig holds configuration for provider selection and initialization
type ProviderConfig struct {
	Name    ProviderName `json:"name" yaml:"name"`
	APIKey  string       `json:"api_key" yaml:"-"`
	URL     string       `json:"url" yaml:"url"`
	Model   string       `json:"model" yaml:"model"`
	Timeout int          `json:"timeout" yaml:"timeout"` // seconds
}

// Role represents the different message roles in a conversation
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in the conversation
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest represents a chat completion request
type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
}

// ChatCompletionResponse represents a chat completion response
type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage"`
}

// Text returns the first choice's content, or "" when there is none.
func (r *ChatCompletionResponse) Text() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// Choice represents a single completion choice
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage represents token usage information
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CreateProvider creates a new provider instance based on the configuration
func CreateProvider(config ProviderConfig) (Provider, error) {
	switch config.Name {
	case ProviderNameOpenAI:
		return NewOpenAIProvider(config), nil
	case ProviderNameAnthropic:
		return NewAnthropicProvider(config), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", config.Name)
	}
}
