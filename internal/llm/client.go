// Package llm provides a minimal client for the Anthropic Messages API.
// Callers depend on the Client interface so tests and the demo wiring can
// substitute implementations.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	anthropicVersion = "2023-06-01"
)

// Request is one text-completion call: a model identifier, an optional
// system instruction, the user prompt and a token budget.
type Request struct {
	Model     string
	System    string
	Prompt    string
	MaxTokens int
}

// Client is a synchronous prompt-in/text-out completion service.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// AnthropicClient calls the Anthropic Messages API over REST.
type AnthropicClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
	logger  *logrus.Logger

	maxRetries     int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// Option allows configuring the Anthropic client.
type Option func(*AnthropicClient)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *AnthropicClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithRetryConfig configures retry behavior.
func WithRetryConfig(maxRetries int, initialBackoff, maxBackoff time.Duration) Option {
	return func(c *AnthropicClient) {
		c.maxRetries = maxRetries
		c.initialBackoff = initialBackoff
		c.maxBackoff = maxBackoff
	}
}

// NewAnthropicClient creates a new client with the given API key.
func NewAnthropicClient(apiKey string, logger *logrus.Logger, opts ...Option) *AnthropicClient {
	client := &AnthropicClient{
		http:           &http.Client{Timeout: 120 * time.Second},
		baseURL:        defaultBaseURL,
		apiKey:         apiKey,
		logger:         logger,
		maxRetries:     3,
		initialBackoff: time.Second,
		maxBackoff:     30 * time.Second,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the prompt and returns the concatenated text blocks of
// the reply. A reply with no text is an error.
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (string, error) {
	if req.Model == "" {
		return "", fmt.Errorf("model cannot be empty")
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = 1024
	}

	payload, err := json.Marshal(messagesRequest{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
		System:    req.System,
		Messages:  []message{{Role: "user", Content: req.Prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	var resp messagesResponse
	if err := c.doRequestWithBackoff(ctx, payload, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", fmt.Errorf("anthropic api error: %s: %s", resp.Error.Type, resp.Error.Message)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("anthropic returned an empty reply")
	}

	return text, nil
}

func (c *AnthropicClient) doRequestWithBackoff(ctx context.Context, payload []byte, result interface{}) error {
	var lastErr error
	backoff := c.initialBackoff

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", c.apiKey)
		req.Header.Set("anthropic-version", anthropicVersion)

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			c.logger.Warnf("Anthropic request attempt %d failed: %v", attempt+1, err)
			time.Sleep(backoff)
			backoff = time.Duration(math.Min(float64(backoff*2), float64(c.maxBackoff)))
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("anthropic api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
			if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
				time.Sleep(backoff)
				backoff = time.Duration(math.Min(float64(backoff*2), float64(c.maxBackoff)))
				continue
			}
			return lastErr
		}

		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}

		return nil
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}
