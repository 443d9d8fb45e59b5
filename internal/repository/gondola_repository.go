package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gondola-rental/internal/domain"
)

type GondolaRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Gondola, error)
	ListAll(ctx context.Context) ([]domain.Gondola, error)
}

type gondolaRepository struct {
	db *sqlx.DB
}

func NewGondolaRepository(db *sqlx.DB) GondolaRepository {
	return &gondolaRepository{db: db}
}

const gondolaColumns = `id, serial_number, model, location, status, created_at, updated_at`

func (r *gondolaRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Gondola, error) {
	var gondola domain.Gondola
	query := `SELECT ` + gondolaColumns + ` FROM gondolas WHERE id = $1`

	err := r.db.GetContext(ctx, &gondola, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &gondola, nil
}

func (r *gondolaRepository) ListAll(ctx context.Context) ([]domain.Gondola, error) {
	var gondolas []domain.Gondola
	query := `SELECT ` + gondolaColumns + ` FROM gondolas ORDER BY serial_number ASC`

	if err := r.db.SelectContext(ctx, &gondolas, query); err != nil {
		return nil, err
	}
	return gondolas, nil
}
