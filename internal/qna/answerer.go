// Package qna implements the question answering pipeline: a routing
// classifier, three retrieval strategies, and the shared context and
// post-processing machinery between them.
package qna

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/niharsaraf26/smartdocs/internal/domain"
	"github.com/niharsaraf26/smartdocs/internal/port"
)

// Service answers questions over a user's document corpus.
type Service struct {
	classifier      *Classifier
	generator       port.TextGenerator
	embedder        port.Embedder
	index           port.VectorIndex
	documents       port.DocumentRepository
	metadata        port.MetadataRepository
	topK            int
	maxContextChars int
}

// NewService wires the answering pipeline. generator is the answering model;
// the classifier carries its own smaller one.
func NewService(
	classifier *Classifier,
	generator port.TextGenerator,
	embedder port.Embedder,
	index port.VectorIndex,
	documents port.DocumentRepository,
	metadata port.MetadataRepository,
	topK int,
	maxContextChars int,
) *Service {
	if topK <= 0 {
		topK = 3
	}
	if maxContextChars <= 0 {
		maxContextChars = 8000
	}
	return &Service{
		classifier:      classifier,
		generator:       generator,
		embedder:        embedder,
		index:           index,
		documents:       documents,
		metadata:        metadata,
		topK:            topK,
		maxContextChars: maxContextChars,
	}
}

// Answer classifies the question, runs the chosen retrieval strategy and
// returns exactly one result. It never returns an error: unexpected failures
// become an ERROR result with a generic message.
func (s *Service) Answer(ctx context.Context, userEmail, question string) (result domain.AnswerResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("qna.Answer: recovered from panic: %v", r)
			result = domain.AnswerErrorResult(msgUnexpectedError)
		}
	}()

	decision := s.classifier.Classify(ctx, question)
	log.Printf("qna.Answer: routed %q to %s (fields=%v types=%v)",
		question, decision.Route, decision.FieldHints, decision.DocumentTypes)

	var err error
	switch decision.Route {
	case domain.RouteFieldLookup:
		result, err = s.answerFieldLookup(ctx, userEmail, question, decision.FieldHints)
	case domain.RouteAggregate:
		result, err = s.answerAggregate(ctx, userEmail, question, decision.DocumentTypes)
	default:
		result, err = s.answerSimilarity(ctx, userEmail, question)
	}
	if err != nil {
		log.Printf("qna.Answer: %s route failed: %v", decision.Route, err)
		return domain.AnswerErrorResult(msgUnexpectedError)
	}
	return result
}

var trailingPunct = regexp.MustCompile(`[?!.]`)

// answerFieldLookup reads extracted field values straight from the metadata
// store. No LLM call is made on this path.
func (s *Service) answerFieldLookup(ctx context.Context, userEmail, question string, hints []string) (domain.AnswerResult, error) {
	var records []domain.DocumentMetadata

	for _, hint := range hints {
		exact, err := s.metadata.FindByUserAndFieldName(ctx, userEmail, hint)
		if err != nil {
			return domain.AnswerResult{}, fmt.Errorf("field lookup %q: %w", hint, err)
		}
		if len(exact) > 0 {
			records = append(records, exact...)
			continue
		}

		fuzzy, err := s.metadata.FindByUserAndFieldNameFuzzy(ctx, userEmail, hint)
		if err != nil {
			return domain.AnswerResult{}, fmt.Errorf("fuzzy field lookup %q: %w", hint, err)
		}
		records = append(records, fuzzy...)
	}

	// With nothing matched by name, try the question's last word against
	// field values. "What is my PAN?" often carries the value's own vocabulary
	// rather than a field name.
	if len(records) == 0 {
		if term := lastSearchableWord(question); term != "" {
			byValue, err := s.metadata.SearchByFieldValue(ctx, userEmail, term)
			if err != nil {
				return domain.AnswerResult{}, fmt.Errorf("value search %q: %w", term, err)
			}
			records = byValue
		}
	}

	// Still nothing: the metadata store cannot answer this, but the document
	// text might.
	if len(records) == 0 {
		return s.answerSimilarity(ctx, userEmail, question)
	}

	return domain.AnswerSuccessResult(formatFieldRecords(records), domain.RouteFieldLookup, nil), nil
}

// lastSearchableWord returns the question's final word stripped of
// punctuation, or "" when it is too short to be a useful search term.
func lastSearchableWord(question string) string {
	cleaned := trailingPunct.ReplaceAllString(question, "")
	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return ""
	}
	last := words[len(words)-1]
	if len(last) <= 2 {
		return ""
	}
	return last
}

func formatFieldRecords(records []domain.DocumentMetadata) string {
	if len(records) == 1 {
		return fmt.Sprintf("%s (from %s)", records[0].FieldValue, records[0].DocumentType)
	}
	var b strings.Builder
	for _, rec := range records {
		b.WriteString(fmt.Sprintf("- %s: %s (from %s)\n", rec.FieldName, rec.FieldValue, rec.DocumentType))
	}
	return strings.TrimSpace(b.String())
}

// answerSimilarity embeds the question, pulls the nearest documents from the
// index and answers from their text.
func (s *Service) answerSimilarity(ctx context.Context, userEmail, question string) (domain.AnswerResult, error) {
	matches := s.searchSimilar(ctx, userEmail, question)
	if len(matches) == 0 {
		return domain.AnswerNotFoundResult(msgNoSimilarDocuments), nil
	}

	// Sections keep the match's rank in their label even when earlier
	// matches were skipped.
	sections := make([]Section, 0, len(matches))
	for i := range matches {
		text := s.fetchDocumentText(ctx, userEmail, matches[i].DocumentID)
		if text == "" {
			continue
		}
		matches[i].Text = text
		sections = append(sections, Section{
			Label: fmt.Sprintf("=== Document %d (%s) ===\n", i+1, matches[i].DocumentType),
			Text:  text,
		})
	}

	contextText := BuildContext(sections, s.maxContextChars)
	if contextText == "" {
		return domain.AnswerNoAnswerResult(msgSimilarNoContent), nil
	}

	answer := generateAnswer(ctx, s.generator, buildAnswerPrompt(question, contextText))
	return domain.AnswerSuccessResult(answer, domain.RouteSimilarity, matches), nil
}

// searchSimilar returns the top-K matches for the question. Embedding or
// index failures degrade to an empty result rather than an error; the caller
// reports "no documents" either way.
func (s *Service) searchSimilar(ctx context.Context, userEmail, question string) []domain.SimilarDocument {
	vector, err := s.embedder.Embed(ctx, question)
	if err != nil {
		log.Printf("qna.searchSimilar: embedding failed: %v", err)
		return nil
	}

	matches, err := s.index.Search(ctx, vector, userEmail, s.topK)
	if err != nil {
		log.Printf("qna.searchSimilar: index search failed: %v", err)
		return nil
	}
	return matches
}

// fetchDocumentText loads a matched document's extracted text. Stale index
// entries and fetch failures are logged and skipped.
func (s *Service) fetchDocumentText(ctx context.Context, userEmail, documentID string) string {
	id, err := uuid.Parse(documentID)
	if err != nil {
		log.Printf("qna.fetchDocumentText: bad document id %q in index: %v", documentID, err)
		return ""
	}

	doc, err := s.documents.GetByIDAndUser(ctx, id, userEmail)
	if err != nil {
		log.Printf("qna.fetchDocumentText: fetch %s failed: %v", documentID, err)
		return ""
	}
	return doc.ExtractedText
}

// answerAggregate answers across the user's whole processed corpus,
// optionally narrowed to the classifier's document type hints.
func (s *Service) answerAggregate(ctx context.Context, userEmail, question string, typeHints []string) (domain.AnswerResult, error) {
	var docs []domain.Document
	var err error

	if len(typeHints) > 0 {
		docs, err = s.documents.FindCompletedByUserAndTypes(ctx, userEmail, typeHints)
		if err != nil {
			return domain.AnswerResult{}, fmt.Errorf("aggregate typed fetch: %w", err)
		}
		// Hinted types may not match what the user actually has; widen
		// rather than answer from nothing.
		if len(docs) == 0 {
			docs, err = s.documents.FindCompletedByUser(ctx, userEmail)
			if err != nil {
				return domain.AnswerResult{}, fmt.Errorf("aggregate fallback fetch: %w", err)
			}
		}
	} else {
		docs, err = s.documents.FindCompletedByUser(ctx, userEmail)
		if err != nil {
			return domain.AnswerResult{}, fmt.Errorf("aggregate fetch: %w", err)
		}
	}

	if len(docs) == 0 {
		return domain.AnswerNotFoundResult(msgNoProcessedDocs), nil
	}

	sections := make([]Section, 0, len(docs))
	for _, doc := range docs {
		if strings.TrimSpace(doc.ExtractedText) == "" {
			continue
		}
		docType := doc.DocumentType
		if docType == "" {
			docType = "Unknown"
		}
		sections = append(sections, Section{
			Label: fmt.Sprintf("=== %s (file: %s) ===\n", docType, doc.OriginalFilename),
			Text:  doc.ExtractedText,
		})
	}

	contextText := BuildContext(sections, s.maxContextChars)
	if contextText == "" {
		return domain.AnswerNoAnswerResult(msgAggregateNoContent), nil
	}

	answer := generateAnswer(ctx, s.generator, buildCrossDocPrompt(question, contextText))
	return domain.AnswerSuccessResult(answer, domain.RouteAggregate, nil), nil
}
