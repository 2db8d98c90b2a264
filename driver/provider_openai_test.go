package driver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rss-analyzer/config"
	"rss-analyzer/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAIConfig(baseURL string) config.AnalyzerConfig {
	return config.AnalyzerConfig{
		Provider: "openai",
		Model:    "gpt-4o-mini",
		APIKey:   "test-key",
		APIBase:  baseURL,
		Timeout:  5 * time.Second,
	}
}

func TestOpenAIProvider_Analyze(t *testing.T) {
	t.Run("should send bearer token and return message content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req chatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "gpt-4o-mini", req.Model)
			require.Len(t, req.Messages, 1)
			assert.Equal(t, "user", req.Messages[0].Role)

			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"[]"}}]}`))
		}))
		defer server.Close()

		provider := NewOpenAIProvider(openAIConfig(server.URL), testLoggerDriver())

		raw, err := provider.Analyze(context.Background(), "analyze these entries")

		require.NoError(t, err)
		assert.Equal(t, "[]", raw)
	})

	t.Run("should classify 403 as fatal auth failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		provider := NewOpenAIProvider(openAIConfig(server.URL), testLoggerDriver())

		_, err := provider.Analyze(context.Background(), "prompt")

		assert.ErrorIs(t, err, domain.ErrAuthFailed)
	})

	t.Run("should fail on empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		provider := NewOpenAIProvider(openAIConfig(server.URL), testLoggerDriver())

		_, err := provider.Analyze(context.Background(), "prompt")

		assert.ErrorContains(t, err, "no choices")
	})
}
