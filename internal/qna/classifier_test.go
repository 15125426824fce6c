package qna

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/niharsaraf26/smartdocs/internal/domain"
	"github.com/niharsaraf26/smartdocs/mocks"
)

func TestParseRoutingReply(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.RouteDecision
	}{
		{
			name: "plain field lookup",
			raw:  `{"type": "FIELD_LOOKUP", "fields": ["id_number"], "document_types": null}`,
			want: domain.RouteDecision{Route: domain.RouteFieldLookup, FieldHints: []string{"id_number"}},
		},
		{
			name: "markdown fenced reply",
			raw:  "```json\n{\"type\": \"AGGREGATE\", \"fields\": null, \"document_types\": [\"SALARY_SLIP\"]}\n```",
			want: domain.RouteDecision{Route: domain.RouteAggregate, DocumentTypes: []string{"SALARY_SLIP"}},
		},
		{
			name: "lowercase type is accepted",
			raw:  `{"type": "similarity"}`,
			want: domain.RouteDecision{Route: domain.RouteSimilarity},
		},
		{
			name: "fields as bare string",
			raw:  `{"type": "FIELD_LOOKUP", "fields": "date_of_birth"}`,
			want: domain.RouteDecision{Route: domain.RouteFieldLookup, FieldHints: []string{"date_of_birth"}},
		},
		{
			name: "legacy singular field key",
			raw:  `{"type": "FIELD_LOOKUP", "field": "net_salary"}`,
			want: domain.RouteDecision{Route: domain.RouteFieldLookup, FieldHints: []string{"net_salary"}},
		},
		{
			name: "null and empty entries are dropped",
			raw:  `{"type": "FIELD_LOOKUP", "fields": ["", "null", "id_number"]}`,
			want: domain.RouteDecision{Route: domain.RouteFieldLookup, FieldHints: []string{"id_number"}},
		},
		{
			name: "document types are uppercased",
			raw:  `{"type": "AGGREGATE", "document_types": ["salary_slip", "null", ""]}`,
			want: domain.RouteDecision{Route: domain.RouteAggregate, DocumentTypes: []string{"SALARY_SLIP"}},
		},
		{
			name: "unknown type defaults to similarity",
			raw:  `{"type": "KEYWORD", "fields": ["id_number"]}`,
			want: domain.DefaultRouteDecision(),
		},
		{
			name: "garbage defaults to similarity",
			raw:  "I think this is a field lookup question.",
			want: domain.DefaultRouteDecision(),
		},
		{
			name: "empty reply defaults to similarity",
			raw:  "",
			want: domain.DefaultRouteDecision(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRoutingReply(tt.raw))
		})
	}
}

func TestClassifyFallsBackOnGeneratorError(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("rate limited"))

	decision := NewClassifier(gen).Classify(context.Background(), "what is my PAN number?")

	assert.Equal(t, domain.DefaultRouteDecision(), decision)
	gen.AssertExpectations(t)
}

func TestRoutingPromptMentionsRoutesAndTaxonomy(t *testing.T) {
	prompt := buildRoutingPrompt("what is my PAN number?")

	assert.Contains(t, prompt, "FIELD_LOOKUP")
	assert.Contains(t, prompt, "SIMILARITY")
	assert.Contains(t, prompt, "AGGREGATE")
	assert.Contains(t, prompt, "id_number")
	assert.Contains(t, prompt, domain.DocTypeSalary)
	assert.Contains(t, prompt, "what is my PAN number?")
}
