package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/niharsaraf26/smartdocs/internal/domain"
	"github.com/niharsaraf26/smartdocs/internal/port"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepository creates a PostgreSQL-backed document repository.
func NewDocumentRepository(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	query := `
		INSERT INTO documents (
			id, user_email, original_filename, stored_filename, file_size,
			content_type, storage_path, processing_status, extracted_text,
			document_type, confidence_score, created_at, updated_at, processed_at
		) VALUES (
			:id, :user_email, :original_filename, :stored_filename, :file_size,
			:content_type, :storage_path, :processing_status, :extracted_text,
			:document_type, :confidence_score, :created_at, :updated_at, :processed_at
		)`
	if _, err := r.db.NamedExecContext(ctx, query, doc); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.GetContext(ctx, &doc, `SELECT * FROM documents WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) GetByIDAndUser(ctx context.Context, id uuid.UUID, userEmail string) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.GetContext(ctx, &doc,
		`SELECT * FROM documents WHERE id = $1 AND user_email = $2`, id, userEmail)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document for user: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) ListByUser(ctx context.Context, userEmail string, limit, offset int) ([]domain.Document, error) {
	docs := []domain.Document{}
	err := r.db.SelectContext(ctx, &docs, `
		SELECT * FROM documents
		WHERE user_email = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, userEmail, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (r *documentRepo) CountByUser(ctx context.Context, userEmail string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM documents WHERE user_email = $1`, userEmail)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return count, nil
}

func (r *documentRepo) FindCompletedByUser(ctx context.Context, userEmail string) ([]domain.Document, error) {
	docs := []domain.Document{}
	err := r.db.SelectContext(ctx, &docs, `
		SELECT * FROM documents
		WHERE user_email = $1 AND processing_status = $2
		ORDER BY created_at DESC`, userEmail, domain.ProcessingStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("find completed documents: %w", err)
	}
	return docs, nil
}

func (r *documentRepo) FindCompletedByUserAndTypes(ctx context.Context, userEmail string, types []string) ([]domain.Document, error) {
	if len(types) == 0 {
		return []domain.Document{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT * FROM documents
		WHERE user_email = ? AND processing_status = ? AND document_type IN (?)
		ORDER BY created_at DESC`, userEmail, domain.ProcessingStatusCompleted, types)
	if err != nil {
		return nil, fmt.Errorf("build typed query: %w", err)
	}

	docs := []domain.Document{}
	if err := r.db.SelectContext(ctx, &docs, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("find completed documents by type: %w", err)
	}
	return docs, nil
}

func (r *documentRepo) UpdateProcessingResult(ctx context.Context, doc *domain.Document) error {
	result, err := r.db.NamedExecContext(ctx, `
		UPDATE documents SET
			processing_status = :processing_status,
			extracted_text = :extracted_text,
			document_type = :document_type,
			confidence_score = :confidence_score,
			processed_at = :processed_at,
			updated_at = :updated_at
		WHERE id = :id`, doc)
	if err != nil {
		return fmt.Errorf("update processing result: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update processing result rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *documentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProcessingStatus) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE documents SET processing_status = $1, updated_at = NOW()
		WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update document status rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID, userEmail string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE id = $1 AND user_email = $2`, id, userEmail)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete document rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
