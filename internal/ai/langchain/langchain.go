// Package langchain implements text generation through langchaingo against
// any OpenAI-compatible endpoint.
package langchain

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/niharsaraf26/smartdocs/internal/ai"
	"github.com/niharsaraf26/smartdocs/internal/config"
	"github.com/niharsaraf26/smartdocs/internal/port"
)

func init() {
	ai.RegisterGenerator("langchain", func(cfg config.LLMProviderConfig) (port.TextGenerator, error) {
		return New(cfg)
	})
}

// Generator drives an OpenAI-compatible model through langchaingo.
type Generator struct {
	llm         *openai.LLM
	temperature float64
	maxTokens   int
}

// New creates a langchaingo-backed generator from provider config.
func New(cfg config.LLMProviderConfig) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("langchain: api key is required")
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("langchain: init llm: %w", err)
	}

	return &Generator{
		llm:         llm,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

func (g *Generator) Provider() string { return "langchain" }

// Generate runs a single-prompt completion.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	callOpts := []llms.CallOption{llms.WithTemperature(g.temperature)}
	if g.maxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(g.maxTokens))
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, callOpts...)
	if err != nil {
		return "", fmt.Errorf("langchain: generate: %w", err)
	}
	return out, nil
}
