// Package clients holds outbound collaborators of the API surface.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Suggester produces a free-text movie suggestion from the user's stated
// preferences. The catalog core never calls it; only the API surface does.
type Suggester interface {
	Suggest(ctx context.Context, preferences string) (string, error)
}

// AISuggestionClient implements Suggester against an OpenAI-compatible
// chat-completions endpoint.
type AISuggestionClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *slog.Logger
}

func NewAISuggestionClient(baseURL, apiKey, model string, logger *slog.Logger) *AISuggestionClient {
	return &AISuggestionClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		logger:     logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *AISuggestionClient) Suggest(ctx context.Context, preferences string) (string, error) {
	prompt := fmt.Sprintf(
		"Suggest up to three movies for a viewer with these preferences: %s. "+
			"Answer with the titles and one short sentence per movie.", preferences)

	payload, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode suggestion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build suggestion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.DebugContext(ctx, "requesting movie suggestion", slog.String("model", c.model))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("suggestion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.ErrorContext(ctx, "suggestion endpoint returned an error",
			slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", fmt.Errorf("suggestion endpoint returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode suggestion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("suggestion response contained no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
