package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/niharsaraf26/smartdocs/internal/domain"
)

// DocumentRepository defines document persistence operations.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	GetByIDAndUser(ctx context.Context, id uuid.UUID, userEmail string) (*domain.Document, error)
	ListByUser(ctx context.Context, userEmail string, limit, offset int) ([]domain.Document, error)
	CountByUser(ctx context.Context, userEmail string) (int64, error)

	// FindCompletedByUser returns every COMPLETED document for the user,
	// newest first.
	FindCompletedByUser(ctx context.Context, userEmail string) ([]domain.Document, error)

	// FindCompletedByUserAndTypes restricts FindCompletedByUser to the given
	// document types. An empty types slice returns no rows.
	FindCompletedByUserAndTypes(ctx context.Context, userEmail string, types []string) ([]domain.Document, error)

	// UpdateProcessingResult records the outcome of ingestion: status,
	// extracted text, normalized document type and confidence.
	UpdateProcessingResult(ctx context.Context, doc *domain.Document) error

	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProcessingStatus) error
	Delete(ctx context.Context, id uuid.UUID, userEmail string) error
}
