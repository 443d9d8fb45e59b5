package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"gondola-rental/internal/domain"
)

type ProjectRepository interface {
	ListEndingBetween(ctx context.Context, start, end time.Time) ([]domain.Project, error)
	ListUpdatedSince(ctx context.Context, since time.Time) ([]domain.Project, error)
	ListAll(ctx context.Context) ([]domain.Project, error)
}

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `id, name, client, site_name, status, start_date, end_date, created_at, updated_at`

func (r *projectRepository) ListEndingBetween(ctx context.Context, start, end time.Time) ([]domain.Project, error) {
	var projects []domain.Project
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE end_date >= $1 AND end_date <= $2
		ORDER BY end_date ASC`

	if err := r.db.SelectContext(ctx, &projects, query, start, end); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) ListUpdatedSince(ctx context.Context, since time.Time) ([]domain.Project, error) {
	var projects []domain.Project
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE updated_at >= $1
		ORDER BY updated_at DESC`

	if err := r.db.SelectContext(ctx, &projects, query, since); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) ListAll(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at ASC`

	if err := r.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, err
	}
	return projects, nil
}
