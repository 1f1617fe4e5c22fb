// Package backend provides repair.Backend implementations: an OpenAI-compatible
// HTTP backend, a local CLI agent backend, and a static backend for tests.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/statforge/statforge/internal/schema"
)

// OpenAIConfig configures the chat completions endpoint and HTTP behavior.
type OpenAIConfig struct {
	// BaseURL is the API root, e.g. https://api.openai.com/v1. Required.
	BaseURL string
	// Model is the model identifier sent with every request. Required.
	Model string
	// APIKey is sent as a bearer token when non-empty.
	APIKey string
	// HTTPClient overrides http.DefaultClient when non-nil.
	HTTPClient *http.Client
}

// OpenAI calls an OpenAI-compatible chat completions endpoint and expects a
// single JSON object back. It implements repair.Backend.
type OpenAI struct {
	cfg OpenAIConfig
}

// NewOpenAI builds an OpenAI-compatible repair backend.
func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("base url is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("model is required")
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return &OpenAI{cfg: cfg}, nil
}

const systemPrompt = "You repair tabletop game content records. " +
	"Respond with exactly one JSON object and nothing else."

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends the repair prompt and parses the first JSON object out of
// the model's reply.
func (o *OpenAI) Generate(ctx context.Context, prompt string, _ *schema.Schema) (map[string]any, error) {
	body, err := json.Marshal(chatRequest{
		Model: o.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: &respFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	endpoint := strings.TrimRight(o.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if o.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+o.cfg.APIKey)
	}

	res, err := o.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, err := io.ReadAll(io.LimitReader(res.Body, 4096))
		if err != nil {
			return nil, fmt.Errorf("read chat error body: %w", err)
		}
		return nil, fmt.Errorf("chat request status %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
	}

	var payload chatResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	if len(payload.Choices) == 0 {
		return nil, fmt.Errorf("chat response has no choices")
	}
	content := strings.TrimSpace(payload.Choices[0].Message.Content)
	if content == "" {
		return nil, fmt.Errorf("chat response missing content")
	}
	return ExtractObject(content)
}
