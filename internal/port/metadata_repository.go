package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/niharsaraf26/smartdocs/internal/domain"
)

// MetadataRepository defines persistence for extracted document fields.
type MetadataRepository interface {
	// ReplaceForDocument deletes any existing rows for the document and
	// inserts the given ones in a single transaction.
	ReplaceForDocument(ctx context.Context, documentID uuid.UUID, fields []domain.DocumentMetadata) error

	// FindByUserAndFieldName matches field names exactly, case-insensitively.
	FindByUserAndFieldName(ctx context.Context, userEmail, fieldName string) ([]domain.DocumentMetadata, error)

	// FindByUserAndFieldNameFuzzy matches field names containing the given
	// fragment, case-insensitively.
	FindByUserAndFieldNameFuzzy(ctx context.Context, userEmail, fragment string) ([]domain.DocumentMetadata, error)

	// SearchByFieldValue matches field values containing the given fragment,
	// case-insensitively.
	SearchByFieldValue(ctx context.Context, userEmail, fragment string) ([]domain.DocumentMetadata, error)

	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.DocumentMetadata, error)
	DeleteByDocument(ctx context.Context, documentID uuid.UUID) error
}
