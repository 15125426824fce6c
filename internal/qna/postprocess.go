package qna

import (
	"context"
	"log"
	"strings"

	"github.com/niharsaraf26/smartdocs/internal/port"
)

// Phrases that mean the model failed to ground an answer in the provided
// context, whether or not it used the sentinel it was asked for.
var notFoundPhrases = []string{
	strings.ToLower(answerNotFoundSentinel),
	"i don't have",
	"cannot find",
}

// generateAnswer runs the prompt through the generator and maps every
// failure mode to a user-facing string. It always returns something
// presentable; callers wrap it in a SUCCESS result.
func generateAnswer(ctx context.Context, generator port.TextGenerator, prompt string) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("qna.generateAnswer: recovered from %s panic: %v", generator.Provider(), r)
			answer = msgGenerationPanicked
		}
	}()

	raw, err := generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("qna.generateAnswer: %s generation failed: %v", generator.Provider(), err)
		return msgGenerationFailed
	}

	return sanitizeAnswer(raw)
}

// sanitizeAnswer trims the model output and replaces any variant of "not in
// the documents" with one consistent message.
func sanitizeAnswer(raw string) string {
	answer := strings.TrimSpace(raw)
	lower := strings.ToLower(answer)
	for _, phrase := range notFoundPhrases {
		if strings.Contains(lower, phrase) {
			return msgAnswerNotInContext
		}
	}
	return answer
}
