package generation

import (
	"alcyxob/lesson-planner/internal/config"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url, key string) Completer {
	return NewClient(config.CompletionConfig{
		BaseURL:     url,
		APIKey:      key,
		Model:       "test-model",
		Temperature: 0.7,
		MaxTokens:   4000,
		Timeout:     5 * time.Second,
	}, nil)
}

func TestClientCompleteSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body.Model)
		assert.Equal(t, 4000, body.MaxTokens)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "prompt", body.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"first"}},{"message":{"content":"second"}}]}`))
	}))
	defer server.Close()

	got, err := newTestClient(server.URL+"/", "test-key").Complete(context.Background(), "sys", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestClientMissingKeyIsConfigurationError(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, "  ").Complete(context.Background(), "sys", "prompt")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, called)
}

func TestClientNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, "k").Complete(context.Background(), "sys", "prompt")
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "rate limited")
}

func TestClientNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, "k").Complete(context.Background(), "sys", "prompt")
	assert.Error(t, err)
}

func TestClientHonoursContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := newTestClient(server.URL, "k").Complete(ctx, "sys", "prompt")
	assert.Error(t, err)
}
