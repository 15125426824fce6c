package qna

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/niharsaraf26/smartdocs/mocks"
)

func TestSanitizeAnswer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  The total is 4200.  ", "The total is 4200."},
		{"sentinel alone", "ANSWER_NOT_FOUND", msgAnswerNotInContext},
		{"sentinel buried in prose", "Based on the documents, ANSWER_NOT_FOUND.", msgAnswerNotInContext},
		{"hedging i don't have", "I don't have that information in the documents.", msgAnswerNotInContext},
		{"hedging cannot find", "I cannot find the expiry date anywhere.", msgAnswerNotInContext},
		{"normal answer passes through", "Your PAN is ABCDE1234F.", "Your PAN is ABCDE1234F."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeAnswer(tt.input))
		})
	}
}

func TestGenerateAnswerMapsFailureToApology(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("timeout"))

	got := generateAnswer(context.Background(), gen, "prompt")

	assert.Equal(t, msgGenerationFailed, got)
}

func TestGenerateAnswerRecoversFromPanic(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Panic("nil dereference")

	got := generateAnswer(context.Background(), gen, "prompt")

	assert.Equal(t, msgGenerationPanicked, got)
}
