package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/niharsaraf26/smartdocs/internal/domain"
	"github.com/niharsaraf26/smartdocs/internal/port"
)

type metadataRepo struct {
	db *sqlx.DB
}

// NewMetadataRepository creates a PostgreSQL-backed metadata repository.
func NewMetadataRepository(db *sqlx.DB) port.MetadataRepository {
	return &metadataRepo{db: db}
}

func (r *metadataRepo) ReplaceForDocument(ctx context.Context, documentID uuid.UUID, fields []domain.DocumentMetadata) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin metadata tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM document_metadata WHERE document_id = $1`, documentID); err != nil {
		return fmt.Errorf("clear metadata: %w", err)
	}

	for i := range fields {
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO document_metadata (
				id, document_id, user_email, document_type,
				field_name, field_value, field_type, confidence, created_at
			) VALUES (
				:id, :document_id, :user_email, :document_type,
				:field_name, :field_value, :field_type, :confidence, :created_at
			)`, fields[i]); err != nil {
			return fmt.Errorf("insert metadata field %q: %w", fields[i].FieldName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit metadata tx: %w", err)
	}
	return nil
}

func (r *metadataRepo) FindByUserAndFieldName(ctx context.Context, userEmail, fieldName string) ([]domain.DocumentMetadata, error) {
	rows := []domain.DocumentMetadata{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM document_metadata
		WHERE user_email = $1 AND LOWER(field_name) = LOWER($2)
		ORDER BY created_at DESC`, userEmail, fieldName)
	if err != nil {
		return nil, fmt.Errorf("find metadata by field name: %w", err)
	}
	return rows, nil
}

func (r *metadataRepo) FindByUserAndFieldNameFuzzy(ctx context.Context, userEmail, fragment string) ([]domain.DocumentMetadata, error) {
	rows := []domain.DocumentMetadata{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM document_metadata
		WHERE user_email = $1 AND field_name ILIKE '%' || $2 || '%'
		ORDER BY created_at DESC`, userEmail, fragment)
	if err != nil {
		return nil, fmt.Errorf("find metadata by field name fragment: %w", err)
	}
	return rows, nil
}

func (r *metadataRepo) SearchByFieldValue(ctx context.Context, userEmail, fragment string) ([]domain.DocumentMetadata, error) {
	rows := []domain.DocumentMetadata{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM document_metadata
		WHERE user_email = $1 AND field_value ILIKE '%' || $2 || '%'
		ORDER BY created_at DESC`, userEmail, fragment)
	if err != nil {
		return nil, fmt.Errorf("search metadata by value: %w", err)
	}
	return rows, nil
}

func (r *metadataRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.DocumentMetadata, error) {
	rows := []domain.DocumentMetadata{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM document_metadata
		WHERE document_id = $1
		ORDER BY field_name`, documentID)
	if err != nil {
		return nil, fmt.Errorf("list metadata: %w", err)
	}
	return rows, nil
}

func (r *metadataRepo) DeleteByDocument(ctx context.Context, documentID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM document_metadata WHERE document_id = $1`, documentID); err != nil {
		return fmt.Errorf("delete metadata: %w", err)
	}
	return nil
}
