package backend

import (
	"context"
	"encoding/json"
	"fmt"
)

const openAIURL = "https://api.openai.com/v1/chat/completions"

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(config ProviderConfig) Provider {
	return &openAIProvider{config: config}
}

type openAIProvider struct {
	config ProviderConfig
}

func (p *openAIProvider) Name() string {
	return string(ProviderNameOpenAI)
}

func (p *openAIProvider) handleError(statusCode int, body []byte) error {
	var apiErr struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Code    string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error.Message == "" {
		return NewAPIError("OpenAI", statusCode, "unable to parse error response: "+string(body))
	}
	msg := apiErr.Error.Message
	if apiErr.Error.Type != "" {
		msg += " (type: " + apiErr.Error.Type + ")"
	}
	return NewAPIError("OpenAI", statusCode, msg)
}

func (p *openAIProvider) CreateCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}
	if model == "" {
		return nil, fmt.Errorf("model must be specified")
	}

	openAIReq := map[string]interface{}{
		"model":    model,
		"messages": req.Messages,
	}
	if req.MaxTokens != nil {
		openAIReq["max_tokens"] = *req.MaxTokens
	}
	if req.Temperature != nil {
		openAIReq["temperature"] = *req.Temperature
	}

	url := p.config.URL
	if url == "" {
		url = openAIURL
	}

	body, err := postJSON(ctx, url, p.config.Timeout,
		map[string]string{"Authorization": "Bearer " + p.config.APIKey},
		openAIReq, p.handleError)
	if err != nil {
		return nil, err
	}

	var openAIResp ChatCompletionResponse
	if err := json.Unmarshal(body, &openAIResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &openAIResp, nil
}
