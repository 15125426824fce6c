package qna

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/niharsaraf26/smartdocs/internal/domain"
	"github.com/niharsaraf26/smartdocs/internal/port"
)

// Classifier routes a question to a retrieval strategy with a single LLM
// call. It never fails: any error, timeout or malformed reply falls back to
// the similarity route, which can attempt an answer for any question.
type Classifier struct {
	generator port.TextGenerator
}

// NewClassifier creates a classifier over the routing generator. The
// generator is expected to run at zero temperature with a small output
// ceiling.
func NewClassifier(generator port.TextGenerator) *Classifier {
	return &Classifier{generator: generator}
}

// routingReply mirrors the JSON object the routing prompt asks for.
// Fields is raw because models reply with either a list or a bare string.
type routingReply struct {
	Type          string          `json:"type"`
	Fields        json.RawMessage `json:"fields"`
	Field         string          `json:"field"`
	DocumentTypes []string        `json:"document_types"`
}

// Classify returns the route decision for a question.
func (c *Classifier) Classify(ctx context.Context, question string) domain.RouteDecision {
	raw, err := c.generator.Generate(ctx, buildRoutingPrompt(question))
	if err != nil {
		log.Printf("qna.Classify: routing call failed, defaulting to similarity: %v", err)
		return domain.DefaultRouteDecision()
	}
	return parseRoutingReply(raw)
}

// parseRoutingReply turns the raw model output into a route decision,
// tolerating markdown fences and the reply shapes observed in practice.
func parseRoutingReply(raw string) domain.RouteDecision {
	cleaned := stripCodeFences(raw)

	var reply routingReply
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		log.Printf("qna.parseRoutingReply: unparseable reply %q, defaulting to similarity", truncateForLog(cleaned))
		return domain.DefaultRouteDecision()
	}

	route, ok := domain.ParseRoute(reply.Type)
	if !ok {
		log.Printf("qna.parseRoutingReply: unknown route %q, defaulting to similarity", reply.Type)
		return domain.DefaultRouteDecision()
	}

	fields := parseFieldHints(reply.Fields)
	if len(fields) == 0 && isUsableHint(reply.Field) {
		// Older prompt revisions asked for a singular "field" key and some
		// models still reply with it.
		fields = []string{strings.TrimSpace(reply.Field)}
	}

	var docTypes []string
	for _, dt := range reply.DocumentTypes {
		if isUsableHint(dt) {
			docTypes = append(docTypes, strings.ToUpper(strings.TrimSpace(dt)))
		}
	}

	return domain.RouteDecision{
		Route:         route,
		FieldHints:    fields,
		DocumentTypes: docTypes,
	}
}

// parseFieldHints accepts either a JSON list of strings or a bare string.
func parseFieldHints(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil
		}
		list = []string{single}
	}

	var fields []string
	for _, f := range list {
		if isUsableHint(f) {
			fields = append(fields, strings.TrimSpace(f))
		}
	}
	return fields
}

func isUsableHint(s string) bool {
	trimmed := strings.TrimSpace(s)
	return trimmed != "" && !strings.EqualFold(trimmed, "null")
}

// stripCodeFences removes a surrounding ```json ... ``` block when present.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func truncateForLog(s string) string {
	if len(s) <= 120 {
		return s
	}
	return s[:120] + "..."
}
