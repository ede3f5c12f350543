// Package translate wraps the Google Translate v2 API behind an adapter that
// never fails: missing credentials and upstream errors degrade to marked or
// untouched text.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nleiva/contentscale/pkg/backend"
)

// DefaultEndpoint is the Google Translate v2 REST endpoint.
const DefaultEndpoint = "https://translation.googleapis.com/language/translate/v2"

const providerName = "google-translate"

// Request is a single translation call. An empty Source asks the service to
// detect the source language.
type Request struct {
	Text   string
	Target string
	Source string
}

// Result is the first translation returned by the service.
type Result struct {
	Text           string
	DetectedSource string
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText         string `json:"translatedText"`
			DetectedSourceLanguage string `json:"detectedSourceLanguage"`
		} `json:"translations"`
	} `json:"data"`
}

type translateErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client calls the translation endpoint with an API key query parameter.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client. An empty endpoint uses DefaultEndpoint and a
// non-positive timeout defaults to 30 seconds.
func NewClient(apiKey, endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Translate performs one HTTP call. When the response carries no
// translation the original text is returned.
func (c *Client) Translate(ctx context.Context, req Request) (Result, error) {
	body := map[string]string{
		"q":      req.Text,
		"target": req.Target,
		"format": "text",
	}
	if req.Source != "" {
		body["source"] = req.Source
	}

	reqBody, err := json.Marshal(body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	u := c.endpoint + "?key=" + url.QueryEscape(c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(reqBody))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr translateErrorResponse
		msg := string(respBody)
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		return Result{}, backend.NewAPIError(providerName, resp.StatusCode, msg)
	}

	var parsed translateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return Result{}, fmt.Errorf("failed to decode response: %w", err)
	}

	res := Result{Text: req.Text}
	if len(parsed.Data.Translations) > 0 {
		first := parsed.Data.Translations[0]
		if first.TranslatedText != "" {
			res.Text = first.TranslatedText
		}
		res.DetectedSource = first.DetectedSourceLanguage
	}
	return res, nil
}
