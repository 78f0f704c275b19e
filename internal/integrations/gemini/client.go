// Package gemini is a focused client for the Gemini generateContent endpoint.
// Upstream failures are surfaced as typed errors so callers can tell a rate
// limit (retryable) from a safety block (not retryable) without string
// matching.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// generateRequest is the minimal request shape for generateContent.
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
}

// generateResponse is the minimal response shape returned by generateContent.
type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// Getter is the parameter-store dependency used to resolve the API key.
type Getter interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

// RateLimitError marks an HTTP 429 from the generation endpoint.
type RateLimitError struct {
	URL string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("gemini: rate limited by %s", e.URL)
}

// RateLimited marks the error class for callers matching via interface.
func (e *RateLimitError) RateLimited() bool { return true }

// HTTPStatusCode reports the upstream status for status-aware callers.
func (e *RateLimitError) HTTPStatusCode() int { return http.StatusTooManyRequests }

// SafetyBlockError marks a response refused by the model's safety layer.
type SafetyBlockError struct {
	Reason string
}

func (e *SafetyBlockError) Error() string {
	return fmt.Sprintf("gemini: blocked by safety filter (%s)", e.Reason)
}

// SafetyBlocked marks the error class for callers matching via interface.
func (e *SafetyBlockError) SafetyBlocked() bool { return true }

// HTTPStatusError captures other non-2xx upstream responses.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("gemini: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *HTTPStatusError) HTTPStatusCode() int {
	return e.StatusCode
}

// Client talks to the Gemini API with a single model.
type Client struct {
	baseURL     string
	model       string
	httpClient  *http.Client
	getter      Getter
	paramPrefix string

	keyOnce sync.Once
	apiKey  string
	keyErr  error
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Client backed by the given parameter getter for API key
// retrieval. The key is fetched on the first Complete call and reused for the
// lifetime of the process.
func NewClient(ps Getter, paramPrefix, model string, opts ...Option) (*Client, error) {
	if ps == nil {
		return nil, errors.New("gemini: paramstore getter must not be nil")
	}
	paramPrefix = strings.TrimRight(strings.TrimSpace(paramPrefix), "/")
	if paramPrefix == "" {
		return nil, errors.New("gemini: parameter prefix must not be empty")
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = "gemini-1.5-flash"
	}
	c := &Client{
		baseURL:     "https://generativelanguage.googleapis.com/v1beta",
		model:       model,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		getter:      ps,
		paramPrefix: paramPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) resolveAPIKey(ctx context.Context) (string, error) {
	c.keyOnce.Do(func() {
		c.apiKey, c.keyErr = c.getter.GetParameter(ctx, c.paramPrefix+"/gemini_api_key")
		if c.keyErr == nil && strings.TrimSpace(c.apiKey) == "" {
			c.keyErr = errors.New("gemini: API key parameter is empty")
		}
	})
	return c.apiKey, c.keyErr
}

func (c *Client) generateURL() string {
	base := c.baseURL
	if base == "" {
		base = "https://generativelanguage.googleapis.com/v1beta"
	}
	return fmt.Sprintf("%s/models/%s:generateContent", base, c.model)
}

// Complete sends one prompt and returns the generated text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	apiKey, err := c.resolveAPIKey(ctx)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := c.generateURL()
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if reqErr != nil {
		return "", fmt.Errorf("gemini: create request: %w", reqErr)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	res, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return "", fmt.Errorf("gemini: request failed: %w", doErr)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode == http.StatusTooManyRequests {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
		return "", &RateLimitError{URL: url}
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", &HTTPStatusError{StatusCode: res.StatusCode, URL: url, Body: string(buf)}
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("gemini: read response body: %w", err)
	}

	var payload generateResponse
	if decErr := json.Unmarshal(raw, &payload); decErr != nil {
		return "", fmt.Errorf("gemini: decode response: %w", decErr)
	}

	if payload.PromptFeedback != nil && payload.PromptFeedback.BlockReason != "" {
		return "", &SafetyBlockError{Reason: payload.PromptFeedback.BlockReason}
	}
	if len(payload.Candidates) == 0 {
		return "", errors.New("gemini: no candidates in response")
	}
	cand := payload.Candidates[0]
	if strings.EqualFold(cand.FinishReason, "SAFETY") {
		return "", &SafetyBlockError{Reason: cand.FinishReason}
	}

	var sb strings.Builder
	for _, p := range cand.Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("gemini: empty candidate text")
	}
	return text, nil
}
