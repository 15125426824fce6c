package port

import (
	"context"

	"github.com/niharsaraf26/smartdocs/internal/domain"
)

// VectorUpsert is one vector written to the index. Metadata is stored
// alongside the vector and returned with matches.
type VectorUpsert struct {
	ID       string
	Values   []float32
	Metadata map[string]any
}

// VectorIndex defines operations against the external vector database.
// Searches are always scoped to a single user's vectors.
type VectorIndex interface {
	Upsert(ctx context.Context, vectors []VectorUpsert) error
	Search(ctx context.Context, vector []float32, userEmail string, topK int) ([]domain.SimilarDocument, error)
	Delete(ctx context.Context, ids []string) error
}
