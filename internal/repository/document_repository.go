package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gondola-rental/internal/domain"
)

type DocumentRepository interface {
	ListCertificatesExpiringBetween(ctx context.Context, start, end time.Time) ([]domain.CertificateDocument, error)
	ListByGondola(ctx context.Context, gondolaID uuid.UUID) ([]domain.Document, error)
	ListAll(ctx context.Context) ([]domain.Document, error)
}

type documentRepository struct {
	db *sqlx.DB
}

func NewDocumentRepository(db *sqlx.DB) DocumentRepository {
	return &documentRepository{db: db}
}

const documentColumns = `d.id, d.gondola_id, d.title, d.category, d.type, d.status, d.expiry, d.file_url, d.created_at`

func (r *documentRepository) ListCertificatesExpiringBetween(ctx context.Context, start, end time.Time) ([]domain.CertificateDocument, error) {
	var docs []domain.CertificateDocument
	query := `
		SELECT ` + documentColumns + `, g.serial_number AS gondola_serial
		FROM documents d
		LEFT JOIN gondolas g ON g.id = d.gondola_id
		WHERE d.expiry >= $1 AND d.expiry <= $2
		  AND (d.category ILIKE '%certificate%'
		       OR d.type ILIKE '%certificate%'
		       OR d.title ILIKE '%certificate%')
		ORDER BY d.expiry ASC`

	if err := r.db.SelectContext(ctx, &docs, query, start, end); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) ListByGondola(ctx context.Context, gondolaID uuid.UUID) ([]domain.Document, error) {
	var docs []domain.Document
	query := `
		SELECT ` + documentColumns + `
		FROM documents d
		WHERE d.gondola_id = $1
		ORDER BY d.expiry ASC NULLS LAST`

	if err := r.db.SelectContext(ctx, &docs, query, gondolaID); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) ListAll(ctx context.Context) ([]domain.Document, error) {
	var docs []domain.Document
	query := `SELECT ` + documentColumns + ` FROM documents d ORDER BY d.created_at ASC`

	if err := r.db.SelectContext(ctx, &docs, query); err != nil {
		return nil, err
	}
	return docs, nil
}
