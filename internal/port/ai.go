package port

import "context"

// TextGenerator produces a completion for a single prompt. Implementations
// wrap one LLM provider configured with a fixed model, temperature and
// output ceiling.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)

	// Provider returns the provider name for logging.
	Provider() string
}

// Embedder turns text into a dense vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the vector length this embedder produces.
	Dimensions() int

	// Provider returns the provider name for logging.
	Provider() string
}
