package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated account. All document and metadata access
// is scoped by the user's email.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Document represents an uploaded file and its AI processing results.
// ExtractedText is filled by the ingestion pipeline once processing completes.
type Document struct {
	ID               uuid.UUID        `db:"id" json:"id"`
	UserEmail        string           `db:"user_email" json:"user_email"`
	OriginalFilename string           `db:"original_filename" json:"original_filename"`
	StoredFilename   string           `db:"stored_filename" json:"stored_filename"`
	FileSize         int64            `db:"file_size" json:"file_size"`
	ContentType      string           `db:"content_type" json:"content_type"`
	StoragePath      string           `db:"storage_path" json:"storage_path"`
	ProcessingStatus ProcessingStatus `db:"processing_status" json:"processing_status"`
	ExtractedText    string           `db:"extracted_text" json:"-"`
	DocumentType     string           `db:"document_type" json:"document_type"`
	ConfidenceScore  *float64         `db:"confidence_score" json:"confidence_score"`
	CreatedAt        time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at" json:"updated_at"`
	ProcessedAt      *time.Time       `db:"processed_at" json:"processed_at"`
}

// DocumentMetadata is one extracted field of a document in
// entity-attribute-value layout. One document produces many rows, which is
// what lets any document type be stored without schema changes.
type DocumentMetadata struct {
	ID           uuid.UUID `db:"id" json:"id"`
	DocumentID   uuid.UUID `db:"document_id" json:"document_id"`
	UserEmail    string    `db:"user_email" json:"user_email"`
	DocumentType string    `db:"document_type" json:"document_type"`
	FieldName    string    `db:"field_name" json:"field_name"`
	FieldValue   string    `db:"field_value" json:"field_value"`
	FieldType    FieldType `db:"field_type" json:"field_type"`
	Confidence   *float64  `db:"confidence" json:"confidence"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// SimilarDocument is one ranked match from the vector index. Text is empty
// as returned by the index and attached later from the documents table.
type SimilarDocument struct {
	DocumentID   string  `json:"document_id"`
	DocumentType string  `json:"document_type"`
	Similarity   float64 `json:"similarity"`
	Text         string  `json:"-"`
}

// RouteDecision is the classifier's verdict for a single question.
// FieldHints matter only for RouteFieldLookup; DocumentTypes only for
// RouteAggregate (nil means no type filter). Hints for the wrong route are
// simply ignored by the orchestrator.
type RouteDecision struct {
	Route         Route
	FieldHints    []string
	DocumentTypes []string
}

// DefaultRouteDecision is the decision used whenever classification fails:
// similarity search can attempt an answer for any question.
func DefaultRouteDecision() RouteDecision {
	return RouteDecision{Route: RouteSimilarity}
}
