package llm

import (
	"github.com/oliverbarnes/taskplan/pkg/prompts"
)

// TokenUsage represents token usage reported by the completion service.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatRequest represents a request to OpenAI-compatible chat completion APIs.
type ChatRequest struct {
	Model       string            `json:"model"`
	Messages    []prompts.Message `json:"messages"`
	MaxTokens   int               `json:"max_tokens,omitempty"`
	Temperature float64           `json:"temperature"`
	Stream      bool              `json:"stream"`
}

// ChatResponse represents a non-streaming response from OpenAI-compatible APIs.
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage TokenUsage `json:"usage"`
}

// ErrorResponse is the error envelope OpenAI-compatible services return on
// non-2xx responses.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type,omitempty"`
	} `json:"error"`
}
