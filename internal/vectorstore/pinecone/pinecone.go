// Package pinecone implements the vector index against the Pinecone data
// plane REST API.
package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/niharsaraf26/smartdocs/internal/config"
	"github.com/niharsaraf26/smartdocs/internal/domain"
	"github.com/niharsaraf26/smartdocs/internal/port"
)

// Index talks to a single Pinecone index over HTTP.
type Index struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a Pinecone index client. BaseURL is the index host, e.g.
// https://smartdocs-abc123.svc.us-east-1-aws.pinecone.io.
func New(cfg *config.PineconeConfig) (*Index, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("pinecone: api key is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("pinecone: base url is required")
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Index{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

type upsertRequest struct {
	Vectors []upsertVector `json:"vectors"`
}

type upsertVector struct {
	ID       string         `json:"id"`
	Values   []float32      `json:"values"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Upsert writes vectors with their metadata to the index.
func (x *Index) Upsert(ctx context.Context, vectors []port.VectorUpsert) error {
	if len(vectors) == 0 {
		return nil
	}

	req := upsertRequest{Vectors: make([]upsertVector, 0, len(vectors))}
	for _, v := range vectors {
		req.Vectors = append(req.Vectors, upsertVector{
			ID:       v.ID,
			Values:   v.Values,
			Metadata: v.Metadata,
		})
	}

	return x.post(ctx, "/vectors/upsert", req, nil)
}

type queryRequest struct {
	Vector          []float32      `json:"vector"`
	TopK            int            `json:"topK"`
	IncludeMetadata bool           `json:"includeMetadata"`
	IncludeValues   bool           `json:"includeValues"`
	Filter          map[string]any `json:"filter,omitempty"`
}

type queryResponse struct {
	Matches []struct {
		ID       string         `json:"id"`
		Score    float64        `json:"score"`
		Metadata map[string]any `json:"metadata"`
	} `json:"matches"`
}

// Search queries the index for the user's nearest vectors. Matches are
// returned in descending similarity order.
func (x *Index) Search(ctx context.Context, vector []float32, userEmail string, topK int) ([]domain.SimilarDocument, error) {
	req := queryRequest{
		Vector:          vector,
		TopK:            topK,
		IncludeMetadata: true,
		IncludeValues:   false,
		Filter:          map[string]any{"user_email": userEmail},
	}

	var resp queryResponse
	if err := x.post(ctx, "/query", req, &resp); err != nil {
		return nil, err
	}

	matches := make([]domain.SimilarDocument, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		docType, _ := m.Metadata["document_type"].(string)
		matches = append(matches, domain.SimilarDocument{
			DocumentID:   m.ID,
			DocumentType: docType,
			Similarity:   m.Score,
		})
	}
	return matches, nil
}

type deleteRequest struct {
	IDs []string `json:"ids"`
}

// Delete removes vectors by id.
func (x *Index) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return x.post(ctx, "/vectors/delete", deleteRequest{IDs: ids}, nil)
}

func (x *Index) post(ctx context.Context, path string, reqBody, respBody any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("pinecone: marshal %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("pinecone: build %s request: %w", path, err)
	}
	req.Header.Set("Api-Key", x.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.client.Do(req)
	if err != nil {
		return fmt.Errorf("pinecone: call %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("pinecone: read %s response: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pinecone: %s returned status %d", path, resp.StatusCode)
	}

	if respBody != nil {
		if err := json.Unmarshal(body, respBody); err != nil {
			return fmt.Errorf("pinecone: decode %s response: %w", path, err)
		}
	}
	return nil
}
