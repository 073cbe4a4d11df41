package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// TextGenerator produces free text from a prompt. The nutrition service
// uses it for meal planning.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// CohereClient calls the Cohere chat API.
type CohereClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewCohereClient(apiKey, model string) *CohereClient {
	return &CohereClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    "https://api.cohere.com",
		httpClient: http.DefaultClient,
	}
}

type cohereChatRequest struct {
	Model   string `json:"model"`
	Message string `json:"message"`
}

type cohereChatResponse struct {
	Text string `json:"text"`
}

func (c *CohereClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(cohereChatRequest{Model: c.model, Message: prompt})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("chat request: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var response cohereChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if response.Text == "" {
		return "", fmt.Errorf("chat response missing text")
	}

	return response.Text, nil
}
