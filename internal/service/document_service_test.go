package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/niharsaraf26/smartdocs/internal/domain"
	"github.com/niharsaraf26/smartdocs/mocks"
)

func newDocumentFixture() (*DocumentService, *mocks.MockDocumentRepo, *mocks.MockMetadataRepo, *mocks.MockObjectStorage, *mocks.MockVectorIndex) {
	documents := new(mocks.MockDocumentRepo)
	metadata := new(mocks.MockMetadataRepo)
	storage := new(mocks.MockObjectStorage)
	index := new(mocks.MockVectorIndex)
	svc := NewDocumentService(documents, metadata, storage, index, 10, 3600)
	return svc, documents, metadata, storage, index
}

func pdfBytes() []byte {
	return append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("x"), 100)...)
}

func TestUploadHappyPath(t *testing.T) {
	svc, documents, _, storage, _ := newDocumentFixture()

	storage.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return bytes.HasPrefix([]byte(key), []byte("users/priya@example.com/"))
	}), mock.Anything, "application/pdf").Return("users/priya@example.com/some/key.pdf", nil)
	documents.On("Create", mock.Anything, mock.MatchedBy(func(d *domain.Document) bool {
		return d.UserEmail == "priya@example.com" &&
			d.OriginalFilename == "statement.pdf" &&
			d.ProcessingStatus == domain.ProcessingStatusUploaded
	})).Return(nil)

	content := pdfBytes()
	doc, err := svc.Upload(context.Background(), "priya@example.com",
		"statement.pdf", int64(len(content)), bytes.NewReader(content))

	assert.NoError(t, err)
	assert.Equal(t, domain.ProcessingStatusUploaded, doc.ProcessingStatus)
	storage.AssertExpectations(t)
	documents.AssertExpectations(t)
}

func TestUploadRejectsUnknownExtension(t *testing.T) {
	svc, _, _, _, _ := newDocumentFixture()

	_, err := svc.Upload(context.Background(), "priya@example.com",
		"macro.docx", 100, bytes.NewReader([]byte("content")))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc, _, _, _, _ := newDocumentFixture()

	_, err := svc.Upload(context.Background(), "priya@example.com",
		"big.pdf", 11*1024*1024, bytes.NewReader(pdfBytes()))

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestUploadRejectsSpoofedContentType(t *testing.T) {
	svc, _, _, _, _ := newDocumentFixture()

	// A .pdf extension on what is actually plain text.
	_, err := svc.Upload(context.Background(), "priya@example.com",
		"fake.pdf", 100, bytes.NewReader([]byte("just some plain text, not a pdf")))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestDeleteRemovesEverywhere(t *testing.T) {
	svc, documents, metadata, storage, index := newDocumentFixture()

	docID := uuid.New()
	documents.On("GetByIDAndUser", mock.Anything, docID, "priya@example.com").
		Return(&domain.Document{ID: docID, StoragePath: "users/priya@example.com/key.pdf"}, nil)
	index.On("Delete", mock.Anything, []string{docID.String()}).Return(nil)
	metadata.On("DeleteByDocument", mock.Anything, docID).Return(nil)
	storage.On("Delete", mock.Anything, "users/priya@example.com/key.pdf").Return(nil)
	documents.On("Delete", mock.Anything, docID, "priya@example.com").Return(nil)

	err := svc.Delete(context.Background(), "priya@example.com", docID)

	assert.NoError(t, err)
	index.AssertExpectations(t)
	metadata.AssertExpectations(t)
	storage.AssertExpectations(t)
	documents.AssertExpectations(t)
}

func TestListClampsPaging(t *testing.T) {
	svc, documents, _, _, _ := newDocumentFixture()

	documents.On("ListByUser", mock.Anything, "priya@example.com", 20, 0).
		Return([]domain.Document{}, nil)
	documents.On("CountByUser", mock.Anything, "priya@example.com").
		Return(int64(0), nil)

	page, err := svc.List(context.Background(), "priya@example.com", -5, -10)

	assert.NoError(t, err)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 0, page.Offset)
}
