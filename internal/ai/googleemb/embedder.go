// Package googleemb implements embeddings against the Google Gemini
// embedContent API.
package googleemb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/niharsaraf26/smartdocs/internal/ai"
	"github.com/niharsaraf26/smartdocs/internal/config"
	"github.com/niharsaraf26/smartdocs/internal/port"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

func init() {
	ai.RegisterEmbedder("google", func(cfg config.EmbeddingConfig) (port.Embedder, error) {
		return New(cfg)
	})
}

// Embedder calls the Gemini embedContent endpoint.
type Embedder struct {
	apiKey     string
	baseURL    string
	model      string
	dimensions int
	client     *http.Client
}

// New creates a Google embedder from provider config.
func New(cfg config.EmbeddingConfig) (*Embedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("google embedder: api key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Embedder{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      cfg.Model,
		dimensions: cfg.Dimensions,
		client:     &http.Client{Timeout: timeout},
	}, nil
}

func (e *Embedder) Provider() string { return "google" }

func (e *Embedder) Dimensions() int { return e.dimensions }

type embedRequest struct {
	Content struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"content"`
	OutputDimensionality int `json:"outputDimensionality,omitempty"`
}

type embedResponse struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Embed returns the embedding vector for a single text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	var reqBody embedRequest
	reqBody.Content.Parts = []struct {
		Text string `json:"text"`
	}{{Text: text}}
	reqBody.OutputDimensionality = e.dimensions

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("google embedder: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:embedContent", e.baseURL, e.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("google embedder: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google embedder: call embedContent: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("google embedder: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google embedder: status %d", resp.StatusCode)
	}

	var parsed embedResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("google embedder: decode response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("google embedder: api error: %s", parsed.Error.Message)
	}
	if len(parsed.Embedding.Values) == 0 {
		return nil, fmt.Errorf("google embedder: response contained no values")
	}
	return parsed.Embedding.Values, nil
}
