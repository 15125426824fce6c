// Package ai selects and constructs LLM and embedding providers.
//
// Provider packages register themselves with the factory registries from
// their init functions; configuration alone then decides which ones run.
package ai

import (
	"fmt"
	"sort"
	"sync"

	"github.com/niharsaraf26/smartdocs/internal/config"
	"github.com/niharsaraf26/smartdocs/internal/port"
)

// GeneratorFactory builds a text generator from its provider config.
type GeneratorFactory func(cfg config.LLMProviderConfig) (port.TextGenerator, error)

// EmbedderFactory builds an embedder from its provider config.
type EmbedderFactory func(cfg config.EmbeddingConfig) (port.Embedder, error)

var (
	mu                 sync.RWMutex
	generatorFactories = make(map[string]GeneratorFactory)
	embedderFactories  = make(map[string]EmbedderFactory)
)

// RegisterGenerator registers a text generation provider by name.
// Called from provider package init functions.
func RegisterGenerator(name string, factory GeneratorFactory) {
	mu.Lock()
	defer mu.Unlock()
	generatorFactories[name] = factory
}

// RegisterEmbedder registers an embedding provider by name.
func RegisterEmbedder(name string, factory EmbedderFactory) {
	mu.Lock()
	defer mu.Unlock()
	embedderFactories[name] = factory
}

// NewGenerator builds the text generator named by cfg.Provider.
func NewGenerator(cfg config.LLMProviderConfig) (port.TextGenerator, error) {
	mu.RLock()
	factory, ok := generatorFactories[cfg.Provider]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown generation provider %q (available: %v)",
			cfg.Provider, registeredNames(generatorFactories))
	}
	return factory(cfg)
}

// NewEmbedder builds the embedder named by cfg.Provider.
func NewEmbedder(cfg config.EmbeddingConfig) (port.Embedder, error) {
	mu.RLock()
	factory, ok := embedderFactories[cfg.Provider]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown embedding provider %q (available: %v)",
			cfg.Provider, registeredNames(embedderFactories))
	}
	return factory(cfg)
}

func registeredNames[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
