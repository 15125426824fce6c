package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/niharsaraf26/smartdocs/internal/domain"
)

// MockDocumentRepo is a testify mock for port.DocumentRepository.
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(ctx context.Context, doc *domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if doc := args.Get(0); doc != nil {
		return doc.(*domain.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepo) GetByIDAndUser(ctx context.Context, id uuid.UUID, userEmail string) (*domain.Document, error) {
	args := m.Called(ctx, id, userEmail)
	if doc := args.Get(0); doc != nil {
		return doc.(*domain.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepo) ListByUser(ctx context.Context, userEmail string, limit, offset int) ([]domain.Document, error) {
	args := m.Called(ctx, userEmail, limit, offset)
	if docs := args.Get(0); docs != nil {
		return docs.([]domain.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepo) CountByUser(ctx context.Context, userEmail string) (int64, error) {
	args := m.Called(ctx, userEmail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentRepo) FindCompletedByUser(ctx context.Context, userEmail string) ([]domain.Document, error) {
	args := m.Called(ctx, userEmail)
	if docs := args.Get(0); docs != nil {
		return docs.([]domain.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepo) FindCompletedByUserAndTypes(ctx context.Context, userEmail string, types []string) ([]domain.Document, error) {
	args := m.Called(ctx, userEmail, types)
	if docs := args.Get(0); docs != nil {
		return docs.([]domain.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepo) UpdateProcessingResult(ctx context.Context, doc *domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProcessingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockDocumentRepo) Delete(ctx context.Context, id uuid.UUID, userEmail string) error {
	args := m.Called(ctx, id, userEmail)
	return args.Error(0)
}
