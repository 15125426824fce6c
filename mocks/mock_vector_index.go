package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/niharsaraf26/smartdocs/internal/domain"
	"github.com/niharsaraf26/smartdocs/internal/port"
)

// MockVectorIndex is a testify mock for port.VectorIndex.
type MockVectorIndex struct {
	mock.Mock
}

func (m *MockVectorIndex) Upsert(ctx context.Context, vectors []port.VectorUpsert) error {
	args := m.Called(ctx, vectors)
	return args.Error(0)
}

func (m *MockVectorIndex) Search(ctx context.Context, vector []float32, userEmail string, topK int) ([]domain.SimilarDocument, error) {
	args := m.Called(ctx, vector, userEmail, topK)
	if matches := args.Get(0); matches != nil {
		return matches.([]domain.SimilarDocument), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVectorIndex) Delete(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
