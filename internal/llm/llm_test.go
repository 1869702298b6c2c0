package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestDisabledClient(t *testing.T) {
	c := New(Config{}, zerolog.Nop())
	require.False(t, c.Enabled())

	got := c.Complete(context.Background(), "prompt", 100, 0.7, "")
	require.Equal(t, PlaceholderDisabled, got)
	require.Zero(t, c.Stats().Calls)
}

func TestComplete(t *testing.T) {
	var gotReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		require.Equal(t, "2023-06-01", r.Header.Get("Anthropic-Version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{{"text": "  A generated description.  "}},
			"usage":   map[string]int{"input_tokens": 12, "output_tokens": 34},
		})
	}))
	defer srv.Close()

	c := New(Config{APIKey: "test-key", Model: "test-model", Endpoint: srv.URL}, zerolog.Nop())
	require.True(t, c.Enabled())

	got := c.Complete(context.Background(), "describe the project", 150, 0.5, "system prompt")
	require.Equal(t, "A generated description.", got)

	require.Equal(t, "test-model", gotReq["model"])
	require.Equal(t, float64(150), gotReq["max_tokens"])
	require.Equal(t, "system prompt", gotReq["system"])

	stats := c.Stats()
	require.Equal(t, 1, stats.Calls)
	require.Equal(t, 46, stats.Tokens)
}

func TestCompleteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(Config{APIKey: "test-key", Endpoint: srv.URL}, zerolog.Nop())
	got := c.Complete(context.Background(), "prompt", 100, 0.7, "")
	require.Equal(t, PlaceholderError, got)
	require.Zero(t, c.Stats().Calls)
}

func TestCompleteBatch(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{{"text": "ok"}},
		})
	}))
	defer srv.Close()

	c := New(Config{APIKey: "test-key", Endpoint: srv.URL}, zerolog.Nop())
	got := c.CompleteBatch(context.Background(), []string{"a", "b", "c"}, 100, 0.7, "")
	require.Equal(t, []string{"ok", "ok", "ok"}, got)
	require.Equal(t, 3, calls)
}

func TestCompleteBatchDisabled(t *testing.T) {
	c := New(Config{}, zerolog.Nop())
	got := c.CompleteBatch(context.Background(), []string{"a", "b"}, 100, 0.7, "")
	require.Equal(t, []string{PlaceholderDisabled, PlaceholderDisabled}, got)
}
