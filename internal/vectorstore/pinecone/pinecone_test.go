package pinecone

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niharsaraf26/smartdocs/internal/config"
	"github.com/niharsaraf26/smartdocs/internal/port"
)

func newTestIndex(t *testing.T, handler http.HandlerFunc) *Index {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	idx, err := New(&config.PineconeConfig{
		APIKey:      "test-key",
		BaseURL:     server.URL,
		TimeoutSecs: 5,
	})
	require.NoError(t, err)
	return idx
}

func TestSearchScopesToUser(t *testing.T) {
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Api-Key"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, 3, req["topK"])
		assert.Equal(t, true, req["includeMetadata"])
		assert.Equal(t, false, req["includeValues"])
		filter := req["filter"].(map[string]any)
		assert.Equal(t, "priya@example.com", filter["user_email"])

		json.NewEncoder(w).Encode(map[string]any{
			"matches": []map[string]any{
				{
					"id":    "11111111-1111-1111-1111-111111111111",
					"score": 0.93,
					"metadata": map[string]any{
						"user_email":    "priya@example.com",
						"document_type": "SALARY_SLIP",
					},
				},
			},
		})
	})

	matches, err := idx.Search(context.Background(), []float32{0.1, 0.2}, "priya@example.com", 3)

	assert.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", matches[0].DocumentID)
	assert.Equal(t, "SALARY_SLIP", matches[0].DocumentType)
	assert.InDelta(t, 0.93, matches[0].Similarity, 1e-9)
}

func TestUpsertSendsMetadata(t *testing.T) {
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vectors/upsert", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		vectors := req["vectors"].([]any)
		require.Len(t, vectors, 1)
		vec := vectors[0].(map[string]any)
		assert.Equal(t, "doc-1", vec["id"])
		meta := vec["metadata"].(map[string]any)
		assert.Equal(t, "priya@example.com", meta["user_email"])

		w.Write([]byte(`{"upsertedCount": 1}`))
	})

	err := idx.Upsert(context.Background(), []port.VectorUpsert{{
		ID:       "doc-1",
		Values:   []float32{0.1},
		Metadata: map[string]any{"user_email": "priya@example.com"},
	}})

	assert.NoError(t, err)
}

func TestSearchHTTPError(t *testing.T) {
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := idx.Search(context.Background(), []float32{0.1}, "priya@example.com", 3)
	assert.ErrorContains(t, err, "401")
}

func TestUpsertEmptyIsNoop(t *testing.T) {
	called := false
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	assert.NoError(t, idx.Upsert(context.Background(), nil))
	assert.False(t, called)
}
