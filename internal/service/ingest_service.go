package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/niharsaraf26/smartdocs/internal/domain"
	"github.com/niharsaraf26/smartdocs/internal/port"
	"github.com/niharsaraf26/smartdocs/internal/qna"
)

// ExtractedField is one field reported by the extraction pipeline.
type ExtractedField struct {
	Name       string   `json:"name" binding:"required"`
	Value      string   `json:"value" binding:"required"`
	Type       string   `json:"type"`
	Confidence *float64 `json:"confidence"`
}

// ProcessingResult is everything the extraction pipeline reports for one
// document.
type ProcessingResult struct {
	ExtractedText   string           `json:"extracted_text" binding:"required"`
	DocumentType    string           `json:"document_type"`
	ConfidenceScore *float64         `json:"confidence_score"`
	Fields          []ExtractedField `json:"fields"`
}

// IngestService records extraction results: it completes the document row,
// replaces its metadata fields and refreshes its vector in the index.
type IngestService struct {
	documents port.DocumentRepository
	metadata  port.MetadataRepository
	embedder  port.Embedder
	index     port.VectorIndex
}

// NewIngestService creates the ingestion service.
func NewIngestService(
	documents port.DocumentRepository,
	metadata port.MetadataRepository,
	embedder port.Embedder,
	index port.VectorIndex,
) *IngestService {
	return &IngestService{
		documents: documents,
		metadata:  metadata,
		embedder:  embedder,
		index:     index,
	}
}

// CompleteProcessing applies an extraction result to a document. The vector
// upsert is best-effort: the document stays answerable through the metadata
// and aggregation paths even when the index write fails.
func (s *IngestService) CompleteProcessing(ctx context.Context, userEmail string, documentID uuid.UUID, result ProcessingResult) (*domain.Document, error) {
	doc, err := s.documents.GetByIDAndUser(ctx, documentID, userEmail)
	if err != nil {
		return nil, err
	}
	if doc.ProcessingStatus == domain.ProcessingStatusArchived {
		return nil, domain.ErrDocumentNotReady
	}

	now := time.Now().UTC()
	doc.ProcessingStatus = domain.ProcessingStatusCompleted
	doc.ExtractedText = result.ExtractedText
	doc.DocumentType = domain.NormalizeDocumentType(result.DocumentType)
	doc.ConfidenceScore = result.ConfidenceScore
	doc.ProcessedAt = &now
	doc.UpdatedAt = now

	if err := s.documents.UpdateProcessingResult(ctx, doc); err != nil {
		return nil, fmt.Errorf("complete document %s: %w", documentID, err)
	}

	fields := make([]domain.DocumentMetadata, 0, len(result.Fields))
	for _, f := range result.Fields {
		fields = append(fields, domain.DocumentMetadata{
			ID:           uuid.New(),
			DocumentID:   doc.ID,
			UserEmail:    userEmail,
			DocumentType: doc.DocumentType,
			FieldName:    f.Name,
			FieldValue:   f.Value,
			FieldType:    normalizeFieldType(f.Type),
			Confidence:   f.Confidence,
			CreatedAt:    now,
		})
	}
	if err := s.metadata.ReplaceForDocument(ctx, doc.ID, fields); err != nil {
		return nil, fmt.Errorf("replace metadata for %s: %w", documentID, err)
	}

	s.upsertVector(ctx, doc)

	return doc, nil
}

// MarkFailed records a processing failure for a document.
func (s *IngestService) MarkFailed(ctx context.Context, userEmail string, documentID uuid.UUID) error {
	if _, err := s.documents.GetByIDAndUser(ctx, documentID, userEmail); err != nil {
		return err
	}
	return s.documents.UpdateStatus(ctx, documentID, domain.ProcessingStatusFailed)
}

func (s *IngestService) upsertVector(ctx context.Context, doc *domain.Document) {
	text := qna.NormalizeWhitespace(doc.ExtractedText)
	if text == "" {
		return
	}

	vector, err := s.embedder.Embed(ctx, text)
	if err != nil {
		log.Printf("IngestService.upsertVector: embed %s failed: %v", doc.ID, err)
		return
	}

	metadata := map[string]any{
		"user_email":    doc.UserEmail,
		"document_type": doc.DocumentType,
	}
	if doc.ConfidenceScore != nil {
		metadata["confidence_score"] = *doc.ConfidenceScore
	}

	err = s.index.Upsert(ctx, []port.VectorUpsert{{
		ID:       doc.ID.String(),
		Values:   vector,
		Metadata: metadata,
	}})
	if err != nil {
		log.Printf("IngestService.upsertVector: index upsert %s failed: %v", doc.ID, err)
	}
}

func normalizeFieldType(raw string) domain.FieldType {
	switch domain.FieldType(raw) {
	case domain.FieldTypePerson, domain.FieldTypeDate, domain.FieldTypeIDNumber,
		domain.FieldTypeAmount, domain.FieldTypeOrganization, domain.FieldTypeLocation,
		domain.FieldTypeText:
		return domain.FieldType(raw)
	}
	return domain.FieldTypeText
}
