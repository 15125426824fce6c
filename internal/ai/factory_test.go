package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niharsaraf26/smartdocs/internal/config"
	"github.com/niharsaraf26/smartdocs/internal/port"
)

type stubGenerator struct{}

func (stubGenerator) Generate(ctx context.Context, prompt string) (string, error) { return "ok", nil }
func (stubGenerator) Provider() string                                            { return "stub" }

func TestGeneratorRegistry(t *testing.T) {
	RegisterGenerator("stub", func(cfg config.LLMProviderConfig) (port.TextGenerator, error) {
		return stubGenerator{}, nil
	})

	gen, err := NewGenerator(config.LLMProviderConfig{Provider: "stub"})
	require.NoError(t, err)
	assert.Equal(t, "stub", gen.Provider())
}

func TestNewGeneratorUnknownProvider(t *testing.T) {
	_, err := NewGenerator(config.LLMProviderConfig{Provider: "no-such-provider"})
	assert.ErrorContains(t, err, "unknown generation provider")
}

func TestNewEmbedderUnknownProvider(t *testing.T) {
	_, err := NewEmbedder(config.EmbeddingConfig{Provider: "no-such-provider"})
	assert.ErrorContains(t, err, "unknown embedding provider")
}
