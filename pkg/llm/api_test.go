package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliverbarnes/taskplan/pkg/prompts"
	"github.com/oliverbarnes/taskplan/pkg/utils"
)

func TestGetCompletionReturnsTrimmedFirstChoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.Equal(t, 150, req.MaxTokens)
		assert.InDelta(t, 0.7, req.Temperature, 0.0001)
		require.Len(t, req.Messages, 2)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"choices": [{
				"message": {"role": "assistant", "content": "  do X then Y  "},
				"finish_reason": "stop"
			}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	content, usage, err := client.GetCompletion(context.Background(), "test-key", ChatRequest{
		Model:       "test-model",
		Messages:    prompts.BuildPlanMessages("add logging", "let x=1;"),
		MaxTokens:   150,
		Temperature: 0.7,
	})

	require.NoError(t, err)
	assert.Equal(t, "do X then Y", content)
	require.NotNil(t, usage)
	assert.Equal(t, 15, usage.TotalTokens)
}

func TestGetCompletionSurfacesServiceErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit_error"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, _, err := client.GetCompletion(context.Background(), "test-key", ChatRequest{Model: "test-model"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
	assert.Equal(t, utils.CategoryNetwork, utils.CategoryOf(err))
}

func TestGetCompletionGenericMessageForNonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, _, err := client.GetCompletion(context.Background(), "test-key", ChatRequest{Model: "test-model"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestGetCompletionFailsOnEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [], "usage": {"total_tokens": 3}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, _, err := client.GetCompletion(context.Background(), "test-key", ChatRequest{Model: "test-model"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestGetCompletionNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed before use

	client := NewClient(server.URL, time.Second)
	_, _, err := client.GetCompletion(context.Background(), "test-key", ChatRequest{Model: "test-model"})

	require.Error(t, err)
	assert.Equal(t, utils.CategoryNetwork, utils.CategoryOf(err))
}
