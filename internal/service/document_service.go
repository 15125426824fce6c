package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/niharsaraf26/smartdocs/internal/domain"
	"github.com/niharsaraf26/smartdocs/internal/port"
)

// DocumentService handles upload, listing and deletion of documents.
type DocumentService struct {
	documents     port.DocumentRepository
	metadata      port.MetadataRepository
	storage       port.ObjectStorage
	index         port.VectorIndex
	maxFileSize   int64
	presignExpiry time.Duration
}

// NewDocumentService creates the document service. maxFileSizeMB and
// presignExpirySecs come straight from config.
func NewDocumentService(
	documents port.DocumentRepository,
	metadata port.MetadataRepository,
	storage port.ObjectStorage,
	index port.VectorIndex,
	maxFileSizeMB int64,
	presignExpirySecs int64,
) *DocumentService {
	return &DocumentService{
		documents:     documents,
		metadata:      metadata,
		storage:       storage,
		index:         index,
		maxFileSize:   maxFileSizeMB * 1024 * 1024,
		presignExpiry: time.Duration(presignExpirySecs) * time.Second,
	}
}

// Upload validates the file, stores it and creates the document row in
// UPLOADED state. Extraction happens out of band.
func (s *DocumentService) Upload(ctx context.Context, userEmail, filename string, size int64, file io.ReadSeeker) (*domain.Document, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if size > s.maxFileSize {
		return nil, domain.ErrFileTooLarge
	}

	// Sniff the real content type rather than trusting the extension.
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read file head: %w", err)
	}
	detected := http.DetectContentType(head[:n])
	if _, ok := domain.AllowedContentTypes[detected]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind file: %w", err)
	}

	docID := uuid.New()
	storedFilename := fmt.Sprintf("%s.%s", docID, ext)
	key := fmt.Sprintf("users/%s/%s/%s", userEmail, docID, storedFilename)

	storagePath, err := s.storage.Upload(ctx, key, file, domain.AllowedFileTypes[fileType])
	if err != nil {
		log.Printf("DocumentService.Upload: storage upload failed: %v", err)
		return nil, domain.ErrUploadFailed
	}

	now := time.Now().UTC()
	doc := &domain.Document{
		ID:               docID,
		UserEmail:        userEmail,
		OriginalFilename: filename,
		StoredFilename:   storedFilename,
		FileSize:         size,
		ContentType:      detected,
		StoragePath:      storagePath,
		ProcessingStatus: domain.ProcessingStatusUploaded,
		DocumentType:     domain.DocTypeOther,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("create document row: %w", err)
	}
	return doc, nil
}

// DocumentPage is one page of a user's documents.
type DocumentPage struct {
	Documents []domain.Document `json:"documents"`
	Total     int64             `json:"total"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
}

// List returns a page of the user's documents, newest first.
func (s *DocumentService) List(ctx context.Context, userEmail string, limit, offset int) (*DocumentPage, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	docs, err := s.documents.ListByUser(ctx, userEmail, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.documents.CountByUser(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	return &DocumentPage{Documents: docs, Total: total, Limit: limit, Offset: offset}, nil
}

// Get returns one of the user's documents with its extracted fields.
func (s *DocumentService) Get(ctx context.Context, userEmail string, id uuid.UUID) (*domain.Document, []domain.DocumentMetadata, error) {
	doc, err := s.documents.GetByIDAndUser(ctx, id, userEmail)
	if err != nil {
		return nil, nil, err
	}
	fields, err := s.metadata.ListByDocument(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return doc, fields, nil
}

// GetDownloadURL returns a presigned URL for the stored file.
func (s *DocumentService) GetDownloadURL(ctx context.Context, userEmail string, id uuid.UUID) (string, error) {
	doc, err := s.documents.GetByIDAndUser(ctx, id, userEmail)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, doc.StoragePath, s.presignExpiry)
}

// Delete removes a document everywhere: vector index, metadata, blob
// storage and finally the row. Index and storage failures are logged but do
// not block the delete.
func (s *DocumentService) Delete(ctx context.Context, userEmail string, id uuid.UUID) error {
	doc, err := s.documents.GetByIDAndUser(ctx, id, userEmail)
	if err != nil {
		return err
	}

	if err := s.index.Delete(ctx, []string{id.String()}); err != nil {
		log.Printf("DocumentService.Delete: index delete %s failed: %v", id, err)
	}
	if err := s.metadata.DeleteByDocument(ctx, id); err != nil {
		return fmt.Errorf("delete metadata for %s: %w", id, err)
	}
	if err := s.storage.Delete(ctx, doc.StoragePath); err != nil {
		log.Printf("DocumentService.Delete: storage delete %s failed: %v", doc.StoragePath, err)
	}
	return s.documents.Delete(ctx, id, userEmail)
}
