package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	anthropicURL     = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
)

// NewAnthropicProvider creates a new Anthropic provider
func NewAnthropicProvider(config ProviderConfig) Provider {
	return &anthropicProvider{config: config}
}

type anthropicProvider struct {
	config ProviderConfig
}

func (p *anthropicProvider) Name() string {
	return string(ProviderNameAnthropic)
}

func (p *anthropicProvider) handleError(statusCode int, body []byte) error {
	var errorResp struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error.Message == "" {
		return NewAPIError("Anthropic", statusCode, "unable to parse error response: "+string(body))
	}
	return NewAPIError("Anthropic", statusCode, errorResp.Error.Message+" (type: "+errorResp.Error.Type+")")
}

type anthropicResponse struct {
	ID      string `json:"id"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model      string `json:"model"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func (p *anthropicProvider) CreateCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}
	if model == "" {
		return nil, fmt.Errorf("model must be specified")
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("messages cannot be empty")
	}

	// System prompts travel in a separate field.
	var system []string
	var conversation []Message
	for _, msg := range req.Messages {
		if msg.Role == RoleSystem {
			system = append(system, msg.Content)
		} else {
			conversation = append(conversation, msg)
		}
	}

	anthropicReq := map[string]interface{}{
		"model":      model,
		"messages":   conversation,
		"max_tokens": 4096,
	}
	if len(system) > 0 {
		anthropicReq["system"] = strings.Join(system, "\n\n")
	}
	if req.MaxTokens != nil {
		anthropicReq["max_tokens"] = *req.MaxTokens
	}
	if req.Temperature != nil {
		anthropicReq["temperature"] = *req.Temperature
	}

	url := p.config.URL
	if url == "" {
		url = anthropicURL
	}

	body, err := postJSON(ctx, url, p.config.Timeout, map[string]string{
		"x-api-key":         p.config.APIKey,
		"anthropic-version": anthropicVersion,
	}, anthropicReq, p.handleError)
	if err != nil {
		return nil, err
	}

	var resp anthropicResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var text string
	if len(resp.Content) > 0 && resp.Content[0].Type == "text" {
		text = resp.Content[0].Text
	}

	return &ChatCompletionResponse{
		ID:    resp.ID,
		Model: resp.Model,
		Choices: []Choice{{
			Message:      Message{Role: RoleAssistant, Content: text},
			FinishReason: resp.StopReason,
		}},
		Usage: &Usage{
			PromptTokens:     resp.Usage.InputTokens,
			CompletionTokens: resp.Usage.OutputTokens,
			TotalTokens:      resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}, nil
}
