// Package llm talks to an OpenAI-compatible chat completions endpoint.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oliverbarnes/taskplan/pkg/prompts"
	"github.com/oliverbarnes/taskplan/pkg/utils"
)

const defaultTimeout = 2 * time.Minute

// Client issues completion requests against a single endpoint.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the given chat completions URL. A zero
// timeout falls back to the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// GetCompletion sends one chat completion request and returns the trimmed
// content of the first choice. No retries: a failure here fails the whole
// plan request.
func (c *Client) GetCompletion(ctx context.Context, apiKey string, chatReq ChatRequest) (string, *TokenUsage, error) {
	reqBody, err := json.Marshal(chatReq)
	if err != nil {
		return "", nil, utils.NewNetworkError("could not build completion request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", nil, utils.NewNetworkError("could not create completion request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", nil, utils.NewNetworkError("completion request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", nil, utils.NewNetworkError(serviceErrorMessage(body, resp.StatusCode), nil)
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", nil, utils.NewNetworkError("could not decode completion response", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", &chatResp.Usage, utils.NewNetworkError("completion service returned no choices", nil)
	}

	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	return content, &chatResp.Usage, nil
}

// serviceErrorMessage extracts the service's own error message from a
// non-2xx body when present, falling back to a generic message with the
// raw body.
func serviceErrorMessage(body []byte, statusCode int) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	return prompts.APIError(strings.TrimSpace(string(body)), statusCode)
}
