// Package providers links every built-in AI provider into the binary.
// Importing it for side effects populates the factory registries.
package providers

import (
	_ "github.com/niharsaraf26/smartdocs/internal/ai/gemini"
	_ "github.com/niharsaraf26/smartdocs/internal/ai/googleemb"
	_ "github.com/niharsaraf26/smartdocs/internal/ai/groq"
	_ "github.com/niharsaraf26/smartdocs/internal/ai/langchain"
	_ "github.com/niharsaraf26/smartdocs/internal/ai/openaiemb"
)
