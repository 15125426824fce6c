package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/niharsaraf26/smartdocs/internal/domain"
)

// MockMetadataRepo is a testify mock for port.MetadataRepository.
type MockMetadataRepo struct {
	mock.Mock
}

func (m *MockMetadataRepo) ReplaceForDocument(ctx context.Context, documentID uuid.UUID, fields []domain.DocumentMetadata) error {
	args := m.Called(ctx, documentID, fields)
	return args.Error(0)
}

func (m *MockMetadataRepo) FindByUserAndFieldName(ctx context.Context, userEmail, fieldName string) ([]domain.DocumentMetadata, error) {
	args := m.Called(ctx, userEmail, fieldName)
	if rows := args.Get(0); rows != nil {
		return rows.([]domain.DocumentMetadata), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMetadataRepo) FindByUserAndFieldNameFuzzy(ctx context.Context, userEmail, fragment string) ([]domain.DocumentMetadata, error) {
	args := m.Called(ctx, userEmail, fragment)
	if rows := args.Get(0); rows != nil {
		return rows.([]domain.DocumentMetadata), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMetadataRepo) SearchByFieldValue(ctx context.Context, userEmail, fragment string) ([]domain.DocumentMetadata, error) {
	args := m.Called(ctx, userEmail, fragment)
	if rows := args.Get(0); rows != nil {
		return rows.([]domain.DocumentMetadata), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMetadataRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.DocumentMetadata, error) {
	args := m.Called(ctx, documentID)
	if rows := args.Get(0); rows != nil {
		return rows.([]domain.DocumentMetadata), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMetadataRepo) DeleteByDocument(ctx context.Context, documentID uuid.UUID) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}
