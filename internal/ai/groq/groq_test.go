package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niharsaraf26/smartdocs/internal/config"
)

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *Generator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gen, err := New(config.LLMProviderConfig{
		APIKey:      "test-key",
		BaseURL:     server.URL,
		Model:       "llama-3.1-8b-instant",
		Temperature: 0,
		MaxTokens:   150,
		TimeoutSecs: 5,
	})
	require.NoError(t, err)
	return gen
}

func TestGenerate(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama-3.1-8b-instant", req["model"])
		assert.EqualValues(t, 150, req["max_tokens"])

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": `{"type": "SIMILARITY"}`}},
			},
		})
	})

	out, err := gen.Generate(context.Background(), "classify this")
	assert.NoError(t, err)
	assert.Equal(t, `{"type": "SIMILARITY"}`, out)
}

func TestGenerateHTTPError(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limit"}}`))
	})

	_, err := gen.Generate(context.Background(), "prompt")
	assert.ErrorContains(t, err, "429")
}

func TestGenerateEmptyChoices(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := gen.Generate(context.Background(), "prompt")
	assert.ErrorContains(t, err, "no choices")
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(config.LLMProviderConfig{})
	assert.Error(t, err)
}
