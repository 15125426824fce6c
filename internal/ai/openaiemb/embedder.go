// Package openaiemb implements embeddings through the official OpenAI API
// client.
package openaiemb

import (
	"context"
	"fmt"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/niharsaraf26/smartdocs/internal/ai"
	"github.com/niharsaraf26/smartdocs/internal/config"
	"github.com/niharsaraf26/smartdocs/internal/port"
)

func init() {
	ai.RegisterEmbedder("openai", func(cfg config.EmbeddingConfig) (port.Embedder, error) {
		return New(cfg)
	})
}

// Embedder calls the OpenAI embeddings endpoint.
type Embedder struct {
	client     *gopenai.Client
	model      string
	dimensions int
}

// New creates an OpenAI embedder from provider config.
func New(cfg config.EmbeddingConfig) (*Embedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai embedder: api key is required")
	}

	clientCfg := gopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = string(gopenai.SmallEmbedding3)
	}

	return &Embedder{
		client:     gopenai.NewClientWithConfig(clientCfg),
		model:      model,
		dimensions: cfg.Dimensions,
	}, nil
}

func (e *Embedder) Provider() string { return "openai" }

func (e *Embedder) Dimensions() int { return e.dimensions }

// Embed returns the embedding vector for a single text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	req := gopenai.EmbeddingRequest{
		Input: []string{text},
		Model: gopenai.EmbeddingModel(e.model),
	}
	if e.dimensions > 0 {
		req.Dimensions = e.dimensions
	}

	resp, err := e.client.CreateEmbeddings(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai embedder: create embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("openai embedder: response contained no embeddings")
	}
	return resp.Data[0].Embedding, nil
}
